package view

import (
	"brandos/internal/tui/design"
	"brandos/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

func renderHelpOverlay(m *model.Model, width int) string {
	h := m.Help
	h.ShowAll = true
	h.Width = width - 4
	body := lipgloss.JoinVertical(lipgloss.Left,
		design.OverlayTitleStyle.Render("Keyboard Shortcuts"),
		"",
		h.View(m.Keys),
		"",
		design.TextMutedStyle.Render("h or esc to close"),
	)
	return design.OverlayStyle.Width(width - 2).Render(body)
}

func renderLogOverlay(m *model.Model, width int) string {
	content := m.LogViewport.View()
	if len(m.ActivityLog) == 0 {
		content = design.TextMutedStyle.Render("No activity yet.")
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		design.OverlayTitleStyle.Render("Activity Log"),
		content,
		design.TextMutedStyle.Render("L or esc to close"),
	)
	return design.OverlayStyle.Width(width - 2).Render(body)
}
