package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f1f5f9"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	pipStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff"))

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#3b82f6")).
			Padding(0, 3)

	busyButtonStyle = buttonStyle.
			Background(lipgloss.Color("#475569"))

	resetButtonStyle = buttonStyle.
				Background(lipgloss.Color("#10b981"))

	chipStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

func dieStyle(accent string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(accent)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(accent)).
		Padding(1, 3)
}

func bannerStyle(accent string) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(accent))
}
