package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorSubtext  lipgloss.Color
	colorDim      lipgloss.Color
	colorAccent   lipgloss.Color
	colorLavender lipgloss.Color
	colorYellow   lipgloss.Color

	headerStyle      lipgloss.Style
	headerBrandStyle lipgloss.Style
	statusStyle      lipgloss.Style
	dimStyle         lipgloss.Style
	pausedStyle      lipgloss.Style
)

func applyTheme(t Theme) {
	colorSubtext = t.Subtext
	colorDim = t.Dim
	colorAccent = t.Accent
	colorLavender = t.Lavender
	colorYellow = t.Yellow

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorLavender)

	headerBrandStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorAccent)

	statusStyle = lipgloss.NewStyle().
		Foreground(colorSubtext)

	dimStyle = lipgloss.NewStyle().
		Foreground(colorDim)

	pausedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorYellow)
}
