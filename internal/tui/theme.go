package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6"))

	styleHelp = lipgloss.NewStyle().
			Faint(true)

	styleStatusInfo = lipgloss.NewStyle().
			Foreground(lipgloss.Color("3"))

	styleStatusError = lipgloss.NewStyle().
				Foreground(lipgloss.Color("1")).
				Bold(true)

	styleSelected = lipgloss.NewStyle().
			Reverse(true)

	styleCompleted = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Strikethrough(true)

	styleDetailBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(1, 2)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("2")).
				Bold(true)
)

// priorityStyle maps a priority level to its row color: urgent tasks in
// red down to very-low in gray.
func priorityStyle(priority int) lipgloss.Style {
	switch priority {
	case 1:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case 2:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	case 3:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	case 4:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	}
}
