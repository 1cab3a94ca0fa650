package view

import (
	"strings"

	"brandos/internal/session"
	"brandos/internal/tui/components"
	"brandos/internal/tui/design"
	"brandos/internal/tui/model"
	"brandos/internal/viewmodel"

	"github.com/charmbracelet/lipgloss"
)

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	if m.CurrentAppMode == model.ModeQuitting {
		return design.TextSecondaryStyle.Render("Closing session...")
	}

	width := m.Width
	if width <= 0 {
		width = defaultWidth
	}
	vm := m.ViewModel()

	switch m.CurrentAppMode {
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m, width)
	case model.ModeLogOverlay:
		return renderLogOverlay(m, width)
	}

	sections := []string{renderHeader(vm, width)}
	switch vm.Mode {
	case session.AgencyDetail:
		sections = append(sections, renderAgencyDetail(vm, width))
	case session.BrandDetail:
		sections = append(sections, renderBrandDetail(vm, width))
	default:
		sections = append(sections, renderOverview(m, vm, width))
	}
	sections = append(sections, renderCoreServices(vm, width), renderStatusBar(m, vm, width))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderHeader(vm viewmodel.ViewModel, width int) string {
	names := make([]string, 0, len(vm.Clients))
	for _, c := range vm.Clients {
		names = append(names, c.Name)
	}
	subtitle := "Session view: " + strings.Join(names, " + ") + "   " + vm.Breadcrumb
	return components.NewHeader("BrandStudios.AI Operating System").
		WithSubtitle(subtitle).
		WithChips(vm.StatusChips...).
		WithWidth(width).
		Render()
}

func renderStatusBar(m *model.Model, vm viewmodel.ViewModel, width int) string {
	left := vm.ModeLabel + " · " + vm.TenantName
	if m.DebugMode {
		left += " · " + m.Session.Mode().String() + " · " + m.ColorMode
	}
	bar := components.NewStatusBar(width).
		WithLeftText(left).
		WithRightText(m.Help.ShortHelpView(m.Keys.ShortHelp()))
	if m.StatusBarMessage != "" {
		bar.WithMessage(m.StatusBarMessage, m.StatusBarMessageType)
	}
	return bar.Render()
}

// columns lays two blocks side by side, or stacks them on narrow terminals.
func columns(width int, left func(int) string, right func(int) string) string {
	if width < minTwoColumns {
		return lipgloss.JoinVertical(lipgloss.Left, left(width), right(width))
	}
	leftWidth := width / 3
	return lipgloss.JoinHorizontal(lipgloss.Top, left(leftWidth), right(width-leftWidth))
}
