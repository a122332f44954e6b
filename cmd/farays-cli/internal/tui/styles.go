package tui

import "github.com/charmbracelet/lipgloss"

var (
	amber = lipgloss.Color("#B45309")
	stone = lipgloss.Color("#78716C")
	red   = lipgloss.Color("#DC2626")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(amber).MarginBottom(1)
	headingStyle  = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(amber).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(amber)
	mutedStyle    = lipgloss.NewStyle().Foreground(stone)
	errorStyle    = lipgloss.NewStyle().Foreground(red)
	footerStyle   = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(stone).
			MarginTop(1)
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(amber).
			Padding(1, 2)
)
