package ui

import "github.com/charmbracelet/lipgloss"

var (
	inputLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	outputLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	errorLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	lockedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
)
