package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"brandos/internal/color"
	"brandos/internal/session"
	"brandos/internal/tui/controller"
	"brandos/internal/tui/model"
	"brandos/internal/viewmodel"
	"brandos/pkg/logging"

	"github.com/charmbracelet/lipgloss"
)

// runCLIMode prints the derived view of the initial state and returns.
func runCLIMode(ctx context.Context, a *Application) error {
	logging.Debug("CLI", "Running in no-TUI mode.")
	out := a.config.Output
	if out == nil {
		out = os.Stdout
	}
	return WriteSummary(out, a.session, a.settings.UI.TintAlpha)
}

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, a *Application) error {
	color.ApplyNoColor()
	color.Initialize(color.ResolveDarkMode(a.settings.UI.Theme))

	// Switch logging to channel-based system for TUI integration
	logChan := logging.InitForTUI(a.logLevel)
	defer logging.CloseTUIChannel()

	logging.Info("TUI-Lifecycle", "Starting dashboard on %s (%s)", a.session.TenantID(), a.session.Mode())

	p := controller.NewProgram(ctx, a.session, model.TUIConfig{
		DebugMode:  a.config.Debug,
		ColorMode:  fmt.Sprintf("%s (Dark: %v)", lipgloss.ColorProfile().Name(), lipgloss.HasDarkBackground()),
		TintAlpha:  a.settings.UI.TintAlpha,
		LogChannel: logChan,
	})

	// Run the TUI until user exits
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running dashboard: %w", err)
	}
	return nil
}

// WriteSummary writes the view model of the session's current state as
// plain text.
func WriteSummary(w io.Writer, sess *session.Session, alpha float64) error {
	vm := viewmodel.Derive(sess.Registry(), sess.Snapshot(), viewmodel.Options{TintAlpha: alpha})

	var b strings.Builder
	fmt.Fprintf(&b, "%s | %s\n", vm.ModeLabel, vm.Breadcrumb)
	fmt.Fprintf(&b, "Tenant:     %s (%s) [%s]\n", vm.TenantName, vm.TenantID, vm.Badge.Label)
	if vm.Campaign != "" {
		fmt.Fprintf(&b, "Campaign:   %s\n", vm.Campaign)
	}
	if vm.Fidelity != "" {
		fmt.Fprintf(&b, "Fidelity:   %s\n", vm.Fidelity)
	}
	fmt.Fprintf(&b, "DNA:        %s\n", strings.Join(vm.Colors, ", "))
	fmt.Fprintf(&b, "Tint:       %s / %s\n", vm.Tint.Primary, vm.Tint.Secondary)
	fmt.Fprintf(&b, "Variations: %s\n", vm.VariationLabel)
	fmt.Fprintf(&b, "%s\n", vm.ShipGateLabel)
	fmt.Fprintf(&b, "%s\n", vm.AutomationLabel)
	if vm.URL != "" {
		fmt.Fprintf(&b, "Dashboard:  %s\n", vm.URL)
	}
	if vm.Mode == session.AgencyOverview {
		b.WriteString("Clients:\n")
		for _, c := range vm.Clients {
			marker := " "
			if c.Selected {
				marker = "*"
			}
			fmt.Fprintf(&b, "  %s %-12s %s\n", marker, c.Name, c.Badge.Label)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
