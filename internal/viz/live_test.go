package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/curvelab/internal/config"
	"github.com/san-kum/curvelab/internal/rig"
)

func TestNewModelSanitizesFPS(t *testing.T) {
	for _, fps := range []int{0, -30} {
		cfg := config.DefaultConfig()
		cfg.FPS = fps

		m := NewModel(cfg)

		if m.cfg.FPS != config.DefaultFPS {
			t.Errorf("fps=%d: expected fallback to %d, got %d", fps, config.DefaultFPS, m.cfg.FPS)
		}
		if m.tick() == nil {
			t.Errorf("fps=%d: expected a tick command", fps)
		}
	}
}

func TestBrailleSVGRendersScene(t *testing.T) {
	cfg := config.DefaultConfig()
	r := rig.New(cfg.Canvas.Width, cfg.Canvas.Height)

	svg := BrailleSVG(r, cfg)

	if !strings.Contains(svg, "<svg") {
		t.Fatal("expected an SVG document")
	}
	if strings.Count(svg, "<circle ") == 0 {
		t.Error("expected dots for the stroked curve")
	}
}

func TestThemePaletteMatchesTheme(t *testing.T) {
	for _, th := range Themes {
		p := th.Palette()

		if p.Background != string(th.Background) || p.Curve != string(th.Curve) ||
			p.Tangent != string(th.Tangent) || p.Handle != string(th.Handle) ||
			p.Anchor != string(th.Guide) {
			t.Errorf("%s: palette does not match theme colors", th.Name)
		}
		if th.Background == "" || th.Text == "" || th.Muted == "" || th.Accent == "" {
			t.Errorf("%s: theme has unset colors", th.Name)
		}
	}
}

func TestViewRendersStatsPanel(t *testing.T) {
	m := NewModel(config.DefaultConfig())
	m.draw()

	out := m.View()
	for _, want := range []string{"CURVELAB", "Pointer", "damping", "stiffness", CurrentTheme.Name} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
