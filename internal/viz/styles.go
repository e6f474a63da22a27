package viz

import "github.com/charmbracelet/lipgloss"

// Panel padding in terminal cells; mouse coordinates are corrected by
// these before projecting into world space.
const (
	canvasPadX = 2
	canvasPadY = 1
)

// Layout-only styles; foreground colors come from the active theme at
// render time.
var (
	canvasStyle      = lipgloss.NewStyle().Padding(canvasPadY, canvasPadX)
	statsStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	headerStyle      = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle       = lipgloss.NewStyle().Width(11)
	valueStyle       = lipgloss.NewStyle()
	activeParamStyle = lipgloss.NewStyle().Bold(true)
	graphStyle       = lipgloss.NewStyle().Padding(1, 0)
	helpStyle        = lipgloss.NewStyle().MarginTop(2)
)
