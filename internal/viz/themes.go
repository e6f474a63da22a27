package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/curvelab/internal/export"
)

// Theme defines the color scheme for the curve display. Curve colors
// the canvas, Text/Muted/Accent/Handle style the stats panel, and the
// full set maps onto the SVG snapshot palette.
type Theme struct {
	Name       string
	Background lipgloss.Color
	Curve      lipgloss.Color
	Tangent    lipgloss.Color
	Handle     lipgloss.Color
	Guide      lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
}

// Palette maps the theme onto the SVG export colors, so snapshots come
// out in the scheme that was on screen.
func (t Theme) Palette() export.Palette {
	return export.Palette{
		Background: string(t.Background),
		Curve:      string(t.Curve),
		Tangent:    string(t.Tangent),
		Handle:     string(t.Handle),
		Anchor:     string(t.Guide),
	}
}

var (
	ThemeNeon = Theme{
		Name:       "neon",
		Background: lipgloss.Color("#0a0a0a"),
		Curve:      lipgloss.Color("#00ffff"),
		Tangent:    lipgloss.Color("#ff00ff"),
		Handle:     lipgloss.Color("#ffff00"),
		Guide:      lipgloss.Color("#444444"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
		Accent:     lipgloss.Color("#00ff88"),
	}

	ThemePhosphor = Theme{
		Name:       "phosphor",
		Background: lipgloss.Color("#001100"),
		Curve:      lipgloss.Color("#00ff00"),
		Tangent:    lipgloss.Color("#88ff88"),
		Handle:     lipgloss.Color("#ccffcc"),
		Guide:      lipgloss.Color("#005500"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
		Accent:     lipgloss.Color("#88ff88"),
	}

	ThemePaper = Theme{
		Name:       "paper",
		Background: lipgloss.Color("#fdfdf8"),
		Curve:      lipgloss.Color("#222222"),
		Tangent:    lipgloss.Color("#0066cc"),
		Handle:     lipgloss.Color("#cc3300"),
		Guide:      lipgloss.Color("#bbbbbb"),
		Text:       lipgloss.Color("#222222"),
		Muted:      lipgloss.Color("#888888"),
		Accent:     lipgloss.Color("#0066cc"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Background: lipgloss.Color("#2b1b2d"),
		Curve:      lipgloss.Color("#ff6b6b"),
		Tangent:    lipgloss.Color("#feca57"),
		Handle:     lipgloss.Color("#ff9ff3"),
		Guide:      lipgloss.Color("#8b6b8c"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Accent:     lipgloss.Color("#feca57"),
	}

	CurrentTheme = ThemeNeon

	Themes = []Theme{
		ThemeNeon,
		ThemePhosphor,
		ThemePaper,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to neon.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeNeon
}

// SetTheme changes the current theme.
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// ThemeNames returns the list of available theme names.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
