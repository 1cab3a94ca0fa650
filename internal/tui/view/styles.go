package view

import (
	"brandos/internal/viewmodel"

	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth  = 100
	minTwoColumns = 90
)

// badge renders a tenant status badge in its own colors.
func badge(b viewmodel.Badge) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(b.Foreground)).
		Background(lipgloss.Color(b.Background)).
		Bold(true).
		Padding(0, 1).
		Render(b.Label)
}

func tintStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}
