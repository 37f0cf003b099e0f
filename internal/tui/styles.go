package tui

import "github.com/charmbracelet/lipgloss"

// palette is a theme's color set. The persisted settings.theme picks one at
// startup and whenever the user flips it.
type palette struct {
	primary   lipgloss.Color
	accent    lipgloss.Color
	muted     lipgloss.Color
	success   lipgloss.Color
	warning   lipgloss.Color
	errColor  lipgloss.Color
	fg        lipgloss.Color
	subtle    lipgloss.Color
	highlight lipgloss.Color
}

var darkPalette = palette{
	primary:   lipgloss.Color("#6C63FF"),
	accent:    lipgloss.Color("#FF6B6B"),
	muted:     lipgloss.Color("#666666"),
	success:   lipgloss.Color("#2ECC71"),
	warning:   lipgloss.Color("#F39C12"),
	errColor:  lipgloss.Color("#E74C3C"),
	fg:        lipgloss.Color("#C0CAF5"),
	subtle:    lipgloss.Color("#414868"),
	highlight: lipgloss.Color("#7AA2F7"),
}

var lightPalette = palette{
	primary:   lipgloss.Color("#5A54D6"),
	accent:    lipgloss.Color("#C0392B"),
	muted:     lipgloss.Color("#8A8A8A"),
	success:   lipgloss.Color("#1E8449"),
	warning:   lipgloss.Color("#B9770E"),
	errColor:  lipgloss.Color("#A93226"),
	fg:        lipgloss.Color("#2C3E50"),
	subtle:    lipgloss.Color("#BFC9D9"),
	highlight: lipgloss.Color("#2E86C1"),
}

// Styles, rebuilt by applyTheme.
var (
	activeTabStyle    lipgloss.Style
	inactiveTabStyle  lipgloss.Style
	panelStyle        lipgloss.Style
	activePanelStyle  lipgloss.Style
	timerStyle        lipgloss.Style
	timerRunningStyle lipgloss.Style
	timerBreakStyle   lipgloss.Style
	titleStyle        lipgloss.Style
	accentStyle       lipgloss.Style
	successStyle      lipgloss.Style
	warningStyle      lipgloss.Style
	errorStyle        lipgloss.Style
	mutedStyle        lipgloss.Style
	highlightStyle    lipgloss.Style
	headerStyle       lipgloss.Style
	footerStyle       lipgloss.Style
	selectedItemStyle lipgloss.Style
	normalItemStyle   lipgloss.Style
	colorPrimary      lipgloss.Color
	colorSubtle       lipgloss.Color
)

func init() {
	applyTheme("dark")
}

func applyTheme(theme string) {
	p := darkPalette
	if theme == "light" {
		p = lightPalette
	}

	colorPrimary = p.primary
	colorSubtle = p.subtle

	activeTabStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.primary).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(p.primary).
		Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
		Foreground(p.muted).
		Padding(0, 2)

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.subtle).
		Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.primary).
		Padding(1, 2)

	timerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.primary).
		Align(lipgloss.Center)

	timerRunningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.success).
		Align(lipgloss.Center)

	timerBreakStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.warning).
		Align(lipgloss.Center)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(p.fg)
	accentStyle = lipgloss.NewStyle().Foreground(p.accent)
	successStyle = lipgloss.NewStyle().Foreground(p.success)
	warningStyle = lipgloss.NewStyle().Foreground(p.warning)
	errorStyle = lipgloss.NewStyle().Foreground(p.errColor)
	mutedStyle = lipgloss.NewStyle().Foreground(p.muted)
	highlightStyle = lipgloss.NewStyle().Foreground(p.highlight)

	headerStyle = lipgloss.NewStyle().Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(p.muted).Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().Foreground(p.primary).Bold(true)
	normalItemStyle = lipgloss.NewStyle().Foreground(p.fg)
}
