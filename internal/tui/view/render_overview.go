package view

import (
	"fmt"
	"strings"

	"brandos/internal/tui/components"
	"brandos/internal/tui/design"
	"brandos/internal/tui/model"
	"brandos/internal/tui/utils"
	"brandos/internal/viewmodel"
)

func renderOverview(m *model.Model, vm viewmodel.ViewModel, width int) string {
	return columns(width,
		func(w int) string { return renderClientList(m, vm, w) },
		func(w int) string { return renderGovernanceProof(vm, w) },
	)
}

func renderClientList(m *model.Model, vm viewmodel.ViewModel, width int) string {
	var b strings.Builder
	for i, c := range vm.Clients {
		marker := " "
		name := design.TextSecondaryStyle.Render(c.Name)
		if i == m.Cursor {
			marker = design.ListItemSelectedStyle.Render(design.IconSelected)
			name = design.TextStyle.Bold(true).Render(c.Name)
		}
		if c.Selected {
			name += design.TextAccentStyle.Render(" " + design.IconDot)
		}
		fmt.Fprintf(&b, "%s %s %s\n", marker, name, badge(c.Badge))
		if c.Description != "" {
			b.WriteString("  " + design.TextMutedStyle.Render(utils.TruncateString(c.Description, width-6)) + "\n")
		}
	}
	b.WriteString(fmt.Sprintf("\n%s %d", design.TextSecondaryStyle.Render("ACTIVE PILOTS"), vm.ActivePilots))
	return components.NewPanel("Client").WithContent(b.String()).WithDimensions(width, 0).Render()
}

func renderGovernanceProof(vm viewmodel.ViewModel, width int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", design.TextSecondaryStyle.Render("Brand Fidelity"), design.HeaderTitleStyle.Render(vm.Fidelity))
	b.WriteString(design.TextSecondaryStyle.Render(vm.TenantName) + "\n\n")
	for _, s := range vm.FidelitySignals {
		icon := design.TextSuccessStyle.Render(design.IconCheck)
		status := design.TextStyle.Render(s.Status)
		if s.Warn {
			icon = design.TextAccentStyle.Render(design.IconWarn)
			status = design.TextAccentStyle.Render(s.Status)
		}
		fmt.Fprintf(&b, "%-20s %s %s\n", s.Label, icon, status)
	}
	b.WriteString("\n" + design.TextMutedStyle.Render("Real-time signal from active pilot data"))
	return components.NewPanel("Governance Proof").
		WithContent(b.String()).
		WithDimensions(width, 0).
		WithAccent(vm.Tint.PrimaryHex).
		Render()
}

func renderCoreServices(vm viewmodel.ViewModel, width int) string {
	var b strings.Builder
	b.WriteString(design.TextAccentStyle.Render(vm.ShipGateLabel) + "\n")
	for _, lane := range vm.Lanes {
		fmt.Fprintf(&b, "%s %s  %s\n",
			design.TextAccentStyle.Render(lane.Step),
			design.TextStyle.Bold(true).Render(strings.ToUpper(lane.Title)),
			design.TextSecondaryStyle.Render(utils.TruncateString(lane.Description, max(width-len(lane.Title)-12, 10))),
		)
	}
	b.WriteString(design.TextMutedStyle.Render("System Status: Nominal · Drift Monitoring: Active"))
	return components.NewPanel("OS Core Services (Always On)").WithContent(b.String()).WithDimensions(width, 0).Render()
}
