package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Good     lipgloss.Style
	Bad      lipgloss.Style
	Prompt   lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Good:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Bad:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
	}
}
