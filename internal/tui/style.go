package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	consoleStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	// indexed by ui.Color
	colorStyles = [...]lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	}
)
