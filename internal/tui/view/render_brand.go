package view

import (
	"brandos/internal/viewmodel"

	"github.com/charmbracelet/lipgloss"
)

// renderBrandDetail is the brand-side view: the selected tenant without the
// agency client list.
func renderBrandDetail(vm viewmodel.ViewModel, width int) string {
	return columns(width,
		func(w int) string {
			return stack(renderTenantCard(vm, w), renderParameters(vm, w))
		},
		func(w int) string {
			return stack(renderGovernanceProof(vm, w), renderClientPack(vm, w))
		},
	)
}

func stack(blocks ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}
