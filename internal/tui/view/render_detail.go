package view

import (
	"fmt"
	"strings"

	"brandos/internal/color"
	"brandos/internal/tui/components"
	"brandos/internal/tui/design"
	"brandos/internal/tui/utils"
	"brandos/internal/viewmodel"
)

func renderAgencyDetail(vm viewmodel.ViewModel, width int) string {
	return columns(width,
		func(w int) string {
			return stack(renderTenantCard(vm, w), renderParameters(vm, w))
		},
		func(w int) string {
			return stack(renderClientPack(vm, w), renderAsk(vm, w))
		},
	)
}

func renderTenantCard(vm viewmodel.ViewModel, width int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", design.HeaderTitleStyle.Render(vm.TenantName), badge(vm.Badge))
	if vm.Description != "" {
		b.WriteString(design.TextMutedStyle.Render(vm.Description) + "\n")
	}
	if vm.Campaign != "" {
		fmt.Fprintf(&b, "%s %s\n", design.TextSecondaryStyle.Render("Campaign"), vm.Campaign)
	}
	if vm.Fidelity != "" {
		fmt.Fprintf(&b, "%s %s\n", design.TextSecondaryStyle.Render("Brand Fidelity"), vm.Fidelity)
	}
	b.WriteString(renderDNA(vm))
	return components.NewPanel("Client").
		WithContent(b.String()).
		WithDimensions(width, 0).
		WithAccent(vm.Tint.PrimaryHex).
		SetFocused(true).
		Render()
}

func renderDNA(vm viewmodel.ViewModel) string {
	var b strings.Builder
	var swatches []string
	for _, c := range vm.Colors {
		swatches = append(swatches, color.Swatch(c)+" "+c)
	}
	fmt.Fprintf(&b, "%s %s\n", design.TextSecondaryStyle.Render("DNA"), strings.Join(swatches, "  "))
	if len(vm.Fonts) > 0 {
		fmt.Fprintf(&b, "%s %s\n", design.TextSecondaryStyle.Render("Fonts"), strings.Join(vm.Fonts, ", "))
	}
	if vm.Tone != "" {
		fmt.Fprintf(&b, "%s %s\n", design.TextSecondaryStyle.Render("Tone"), vm.Tone)
	}
	fmt.Fprintf(&b, "%s %s / %s",
		design.TextSecondaryStyle.Render("Tint"),
		tintStyle(vm.Tint.PrimaryHex).Render(vm.Tint.Primary),
		tintStyle(vm.Tint.SecondaryHex).Render(vm.Tint.Secondary),
	)
	return b.String()
}

func renderParameters(vm viewmodel.ViewModel, width int) string {
	auto := design.TextWarningStyle.Render(vm.AutomationLabel)
	if vm.AutomationEnabled {
		auto = design.TextSuccessStyle.Render(vm.AutomationLabel)
	}
	content := strings.Join([]string{
		fmt.Sprintf("%s %s", design.TextSecondaryStyle.Render("Variations"), vm.VariationLabel),
		fmt.Sprintf("%s %.2f", design.TextSecondaryStyle.Render("Consistency floor"), vm.Threshold),
		design.TextAccentStyle.Render(vm.ShipGateLabel),
		auto,
	}, "\n")
	return components.NewPanel("Pipeline").WithContent(content).WithDimensions(width, 0).Render()
}

func renderClientPack(vm viewmodel.ViewModel, width int) string {
	if len(vm.Solutions) == 0 {
		return components.NewPanel("Client Pack (Installed Modules)").
			WithContent(design.TextMutedStyle.Render("No modules installed")).
			WithDimensions(width, 0).
			Render()
	}
	var b strings.Builder
	for _, s := range vm.Solutions {
		fmt.Fprintf(&b, "%s %s\n", tintStyle(vm.Tint.PrimaryHex).Render(design.IconDot), design.TextStyle.Bold(true).Render(s.Title))
		if s.Description != "" {
			b.WriteString("  " + design.TextSecondaryStyle.Render(s.Description) + "\n")
		}
	}
	return components.NewPanel("Client Pack (Installed Modules)").
		WithContent(strings.TrimRight(b.String(), "\n")).
		WithDimensions(width, 0).
		Render()
}

func renderAsk(vm viewmodel.ViewModel, width int) string {
	var b strings.Builder
	for _, ask := range vm.Asks {
		lines := utils.Wrap(ask, max(width-8, 10))
		for i, line := range lines {
			prefix := "  "
			if i == 0 {
				prefix = design.TextSuccessStyle.Render(design.IconCheck) + " "
			}
			b.WriteString(prefix + line + "\n")
		}
	}
	for _, insight := range vm.Insights {
		b.WriteString(design.TextMutedStyle.Render(design.IconDot+" "+insight) + "\n")
	}
	fmt.Fprintf(&b, "\n%s", design.HeaderTitleStyle.Render(vm.TenantName+" Dashboard"))
	if vm.URL != "" {
		fmt.Fprintf(&b, "\n%s %s  %s", design.TextAccentStyle.Render(design.IconLink), vm.URL, design.TextMutedStyle.Render("(y to copy)"))
	}
	return components.NewPanel("The Ask").WithContent(b.String()).WithDimensions(width, 0).Render()
}
