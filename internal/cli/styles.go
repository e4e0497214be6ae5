package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles are bound to the writer they render for, so output that is not a
// terminal stays free of escape codes
type styles struct {
	title    lipgloss.Style
	coords   lipgloss.Style
	hidden   lipgloss.Style
	revealed lipgloss.Style
	human    lipgloss.Style
	bot      lipgloss.Style
	success  lipgloss.Style
	failure  lipgloss.Style
	faint    lipgloss.Style
	banner   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:    r.NewStyle().Bold(true),
		coords:   r.NewStyle().Faint(true),
		hidden:   r.NewStyle().Foreground(lipgloss.Color("8")),
		revealed: r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		human:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		bot:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
		success:  r.NewStyle().Foreground(lipgloss.Color("10")),
		failure:  r.NewStyle().Foreground(lipgloss.Color("9")),
		faint:    r.NewStyle().Faint(true),
		banner:   r.NewStyle().Bold(true).Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}
