package render

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Optimal  lipgloss.Style
	Card     lipgloss.Style
	Border   lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Header:   lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Cell:     lipgloss.NewStyle().Padding(0, 1),
		Optimal:  lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("42")),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	}
}

// PlainTheme carries no colors or decorations; useful for tests and pipes.
func PlainTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle(),
		Subtitle: lipgloss.NewStyle(),
		Header:   lipgloss.NewStyle().Padding(0, 1),
		Cell:     lipgloss.NewStyle().Padding(0, 1),
		Optimal:  lipgloss.NewStyle().Padding(0, 1),
		Card:     lipgloss.NewStyle(),
		Border:   lipgloss.NewStyle(),
	}
}
