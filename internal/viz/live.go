package viz

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/curvelab/internal/config"
	"github.com/san-kum/curvelab/internal/export"
	"github.com/san-kum/curvelab/internal/geom"
	"github.com/san-kum/curvelab/internal/rig"
)

const (
	canvasCols      = 80
	canvasRows      = 24
	historyCapacity = 240
	markerRadius    = 2
)

type TickMsg time.Time

// Model is the interactive frame driver: it owns the animation clock,
// the pointer state, and the canvas, and hands the rig a pointer and a
// dt once per tick.
type Model struct {
	cfg    *config.Config
	rig    *rig.Rig
	canvas *Canvas

	pointer   geom.Vec
	autopilot *Autopilot
	attract   bool

	lastTick time.Time
	fps      float64
	dt       float64
	running  bool

	speedHistory []float64

	paramKeys []string
	selected  int

	recording bool
	recorder  *gifRecorder
	showHelp  bool
}

// NewModel builds the interactive model from a config. A non-positive
// FPS falls back to the default before it can reach the tick interval
// or the autopilot spring.
func NewModel(cfg *config.Config) Model {
	if cfg.FPS <= 0 {
		cfg.FPS = config.DefaultFPS
	}

	w, h := cfg.Canvas.Width, cfg.Canvas.Height
	r := rig.NewTuned(w, h, cfg.Spring.Stiffness, cfg.Spring.Damping)

	SetTheme(cfg.Theme)

	return Model{
		cfg:          cfg,
		rig:          r,
		canvas:       NewCanvas(canvasCols, canvasRows, w, h),
		pointer:      r.Center(),
		autopilot:    NewAutopilot(cfg.FPS, w, h, time.Now().UnixNano()),
		attract:      true,
		running:      true,
		speedHistory: make([]float64, 0, historyCapacity),
		paramKeys:    []string{"damping", "stiffness"},
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.cfg.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and advances the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "a":
			m.attract = !m.attract
			if m.attract {
				m.autopilot.Resume(m.pointer)
			}
		case "tab":
			m.selected = (m.selected + 1) % len(m.paramKeys)
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		case "t":
			names := ThemeNames()
			for i, name := range names {
				if name == CurrentTheme.Name {
					SetTheme(names[(i+1)%len(names)])
					break
				}
			}
		case "g":
			if m.recording {
				m.recorder.save("curvelab.gif")
				m.recording = false
				m.recorder = nil
			} else {
				m.recording = true
				m.recorder = newGIFRecorder()
			}
		case "s":
			m.saveSnapshot()
		case "?":
			m.showHelp = !m.showHelp
		}

	case tea.MouseMsg:
		m.pointer = m.mouseToWorld(msg.X, msg.Y)
		m.attract = false

	case TickMsg:
		now := time.Time(msg)
		if m.lastTick.IsZero() {
			m.dt = 1
		} else {
			elapsed := now.Sub(m.lastTick)
			m.dt = rig.FrameScale(elapsed)
			if sec := elapsed.Seconds(); sec > 0 {
				m.fps = m.fps*0.9 + (1/sec)*0.1
			}
		}
		m.lastTick = now

		if m.running {
			if m.attract {
				m.pointer = m.autopilot.Step()
			}
			m.rig.Step(m.pointer, m.dt)
			m.recordSpeed()
		}

		m.draw()
		if m.recording {
			m.recorder.capture(m.canvas)
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) mouseToWorld(col, row int) geom.Vec {
	w, h := m.rig.Size()
	x := float64(col-canvasPadX) / float64(canvasCols) * w
	y := float64(row-canvasPadY) / float64(canvasRows) * h
	if x < 0 {
		x = 0
	}
	if x > w {
		x = w
	}
	if y < 0 {
		y = 0
	}
	if y > h {
		y = h
	}
	return geom.Vec{X: x, Y: y}
}

func (m *Model) reset() {
	w, h := m.rig.Size()
	m.rig = rig.NewTuned(w, h, m.cfg.Spring.Stiffness, m.cfg.Spring.Damping)
	m.pointer = m.rig.Center()
	m.autopilot.Resume(m.pointer)
	m.speedHistory = m.speedHistory[:0]
}

func (m *Model) adjustParam(factor float64) {
	switch m.paramKeys[m.selected] {
	case "stiffness":
		m.rig.C1.Stiffness *= factor
		m.rig.C2.Stiffness *= factor
	case "damping":
		m.rig.C1.Damping *= factor
		m.rig.C2.Damping *= factor
		// Multiplicative damping above 1 diverges.
		if m.rig.C1.Damping > 0.99 {
			m.rig.C1.Damping = 0.99
			m.rig.C2.Damping = 0.99
		}
	}
}

func (m *Model) paramValue(key string) float64 {
	switch key {
	case "stiffness":
		return m.rig.C1.Stiffness
	default:
		return m.rig.C1.Damping
	}
}

func (m *Model) paramDefault(key string) float64 {
	switch key {
	case "stiffness":
		return m.cfg.Spring.Stiffness
	default:
		return m.cfg.Spring.Damping
	}
}

func (m *Model) recordSpeed() {
	m.speedHistory = append(m.speedHistory, m.rig.C1.Speed())
	if len(m.speedHistory) > historyCapacity {
		m.speedHistory = m.speedHistory[1:]
	}
}

// draw renders the current frame: guide lines, path, tangent overlays,
// and markers for handles, endpoints, and pointer.
func (m *Model) draw() {
	m.canvas.Clear()
	drawScene(m.canvas, m.rig, m.cfg)

	// Pointer crosshair.
	px, py := m.canvas.project(m.pointer)
	m.canvas.DrawLine(px-3, py, px+3, py)
	m.canvas.DrawLine(px, py-2, px, py+2)
}

// drawScene rasterizes the curve scene onto a canvas: guide lines,
// path, tangent overlays, and endpoint/handle markers.
func drawScene(c *Canvas, r *rig.Rig, cfg *config.Config) {
	p0, p1, p2, p3 := r.Points()

	c.Dashed(p0, p1, 4, 4)
	c.Dashed(p3, p2, 4, 4)

	c.Stroke(r.Path(cfg.Sampling.Resolution))

	for _, s := range r.Tangents(cfg.Sampling.TangentCount, cfg.Sampling.TangentLength) {
		c.Segment(s.Start, s.End)
	}

	c.Marker(p0, 1)
	c.Marker(p3, 1)
	c.Marker(p1, markerRadius)
	c.Marker(p2, markerRadius)
}

// BrailleSVG rasterizes the rig's current frame onto a fresh Braille
// canvas and renders the dot grid as SVG, a pixel-faithful copy of
// what the terminal shows.
func BrailleSVG(r *rig.Rig, cfg *config.Config) string {
	w, h := r.Size()
	c := NewCanvas(canvasCols, canvasRows, w, h)
	drawScene(c, r, cfg)
	return export.Dots(c.Grid, 8)
}

func (m *Model) saveSnapshot() {
	p0, p1, p2, p3 := m.rig.Points()
	svg := export.CurveWithPalette(export.Scene{
		Width:    m.cfg.Canvas.Width,
		Height:   m.cfg.Canvas.Height,
		Path:     m.rig.Path(m.cfg.Sampling.Resolution),
		Tangents: m.rig.Tangents(m.cfg.Sampling.TangentCount, m.cfg.Sampling.TangentLength),
		Handles:  []geom.Vec{p1, p2},
		Anchors:  []geom.Vec{p0, p3},
	}, CurrentTheme.Palette())
	os.WriteFile("curvelab.svg", []byte(svg), 0644)
}

// View renders the TUI layout with the active theme's colors.
func (m Model) View() string {
	curveView := canvasStyle.Render(
		lipgloss.NewStyle().Foreground(CurrentTheme.Curve).Render(m.canvas.String()))

	header := headerStyle.Foreground(CurrentTheme.Accent)
	label := labelStyle.Foreground(CurrentTheme.Muted)
	value := valueStyle.Foreground(CurrentTheme.Text)
	active := activeParamStyle.Foreground(CurrentTheme.Handle)
	graph := graphStyle.Foreground(CurrentTheme.Accent)
	help := helpStyle.Foreground(CurrentTheme.Muted)

	var s strings.Builder
	s.WriteString(header.Render("CURVELAB") + "\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	if m.attract {
		status += " · ATTRACT"
	}
	if m.recording {
		status += " · REC"
	}
	s.WriteString(status + "\n\n")

	if len(m.speedHistory) > 1 {
		chart := asciigraph.Plot(m.speedHistory,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.Caption("handle speed"),
		)
		s.WriteString(graph.Render(chart) + "\n\n")
	}

	_, c1, c2, _ := m.rig.Points()
	s.WriteString(label.Render("FPS") + value.Render(fmt.Sprintf("%.0f", m.fps)) + "\n")
	s.WriteString(label.Render("dt") + value.Render(fmt.Sprintf("%.2f", m.dt)) + "\n")
	s.WriteString(label.Render("Pointer") + value.Render(fmt.Sprintf("%.0f, %.0f", m.pointer.X, m.pointer.Y)) + "\n")
	s.WriteString(label.Render("P1") + value.Render(fmt.Sprintf("%.0f, %.0f", c1.X, c1.Y)) + "\n")
	s.WriteString(label.Render("P2") + value.Render(fmt.Sprintf("%.0f, %.0f", c2.X, c2.Y)) + "\n")
	s.WriteString(label.Render("Theme") + value.Render(CurrentTheme.Name) + "\n")

	s.WriteString("\nSPRING\n")
	for i, key := range m.paramKeys {
		val := m.paramValue(key)
		initial := m.paramDefault(key)
		barWidth := 10
		ratio := val / (2 * initial)
		if ratio > 1 {
			ratio = 1
		} else if ratio < 0 {
			ratio = 0
		}
		filled := int(ratio * float64(barWidth))
		bar := "[" + strings.Repeat("=", filled) + strings.Repeat("-", barWidth-filled) + "]"
		line := fmt.Sprintf("%-10s %s %.3f", key, bar, val)
		if i == m.selected {
			s.WriteString(active.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + valueStyle.Foreground(CurrentTheme.Muted).Render(line) + "\n")
		}
	}

	s.WriteString(help.Render("\n─────────────────────\nmouse: steer  A: attract\nSP: pause  R: reset  Q: quit\nT: theme  G: record  S: svg\nTAB/↑↓: tune  ?: help"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, curveView, statsView)

	if m.showHelp {
		return `
╔═══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS          ║
╠═══════════════════════════════════════╣
║  Mouse    - Steer the curve           ║
║  A        - Toggle attract mode       ║
║  Space    - Pause/Resume              ║
║  R        - Reset curve               ║
║  Tab      - Select parameter          ║
║  Up/K     - Increase parameter (+5%)  ║
║  Down/J   - Decrease parameter (-5%)  ║
║  T        - Cycle themes              ║
║  G        - Toggle GIF recording      ║
║  S        - Save SVG snapshot         ║
║  ?        - Toggle this help          ║
║  Q        - Quit                      ║
╚═══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// RunInteractive starts the live view with mouse reporting enabled.
func RunInteractive(cfg *config.Config) error {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}
