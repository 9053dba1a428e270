package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/spinners/internal/theme"
)

// Styles is the lipgloss rendering of a theme.Visuals palette.
type Styles struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Active lipgloss.Style
	Hint   lipgloss.Style
	Trace  lipgloss.Style
	Graph  lipgloss.Style
	Panel  lipgloss.Style
	Focus  lipgloss.Style
}

func NewStyles(v theme.Visuals) Styles {
	text := lipgloss.Color(theme.Hex(v.Text))
	dim := lipgloss.Color(theme.Hex(v.TextDim))
	trace := lipgloss.Color(theme.Hex(v.Trace))
	arrow := lipgloss.Color(theme.Hex(v.Arrow))
	stroke := lipgloss.Color(theme.Hex(v.Stroke))

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(stroke).
		Padding(0, 1)

	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(trace),
		Label:  lipgloss.NewStyle().Foreground(dim),
		Value:  lipgloss.NewStyle().Foreground(text),
		Active: lipgloss.NewStyle().Bold(true).Foreground(trace),
		Hint:   lipgloss.NewStyle().Foreground(dim).Italic(true),
		Trace:  lipgloss.NewStyle().Foreground(trace),
		Graph:  lipgloss.NewStyle().Foreground(arrow),
		Panel:  panel,
		Focus:  panel.BorderForeground(trace),
	}
}
