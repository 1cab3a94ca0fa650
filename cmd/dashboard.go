package cmd

import (
	"brandos/internal/app"
	"brandos/internal/session"

	"github.com/spf13/cobra"
)

// dashboardFlags holds the command line overrides for the dashboard.
type dashboardFlags struct {
	tenant     string
	brand      bool
	variations int
	threshold  float64
	automation bool
	noTUI      bool
	debug      bool
}

func newDashboardCmd() *cobra.Command {
	flags := &dashboardFlags{}

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the brand intelligence console",
		Long: `Opens the brand intelligence console as an interactive TUI.

The console starts on the agency overview with the configured tenant
selected. From there a client can be opened in agency detail, or the whole
console switched to the brand view. Variation count, consistency threshold
and automation can be adjusted from the keyboard; press h for all keys.

With --no-tui the derived view for the initial state is printed and the
command exits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, flags)
		},
	}

	bindDashboardFlags(cmd, flags)
	return cmd
}

func bindDashboardFlags(cmd *cobra.Command, flags *dashboardFlags) {
	cmd.Flags().StringVar(&flags.tenant, "tenant", "", "initial tenant id (unknown ids fall back to the first tenant)")
	cmd.Flags().BoolVar(&flags.brand, "brand", false, "start in the brand view")
	cmd.Flags().IntVar(&flags.variations, "variations", session.DefaultVariations, "variation count (1-24)")
	cmd.Flags().Float64Var(&flags.threshold, "threshold", session.DefaultThreshold, "consistency threshold (0.60-0.95)")
	cmd.Flags().BoolVar(&flags.automation, "automation", true, "enable automation")
	cmd.Flags().BoolVar(&flags.noTUI, "no-tui", false, "print the dashboard summary instead of starting the TUI")
	cmd.Flags().BoolVar(&flags.debug, "debug", false, "enable debug logging and the debug status line")

}

func runDashboard(cmd *cobra.Command, flags *dashboardFlags) error {
	cfg := app.NewConfig(flags.noTUI, flags.debug, configPath)
	cfg.Overrides = flagOverrides(cmd, flags)
	cfg.Output = cmd.OutOrStdout()

	application, err := app.NewApplication(cfg)
	if err != nil {
		return err
	}
	return application.Run(cmd.Context())
}

// flagOverrides turns explicitly set flags into session options. They are
// applied after the configuration and pass through the same resolvers and
// clamps.
func flagOverrides(cmd *cobra.Command, flags *dashboardFlags) []session.Option {
	var opts []session.Option
	changed := cmd.Flags().Changed
	if changed("tenant") {
		opts = append(opts, session.WithTenant(flags.tenant))
	}
	if changed("brand") {
		mode := session.AgencyOverview
		if flags.brand {
			mode = session.BrandDetail
		}
		opts = append(opts, session.WithMode(mode))
	}
	if changed("variations") {
		opts = append(opts, session.WithVariationCount(flags.variations))
	}
	if changed("threshold") {
		opts = append(opts, session.WithThreshold(flags.threshold))
	}
	if changed("automation") {
		opts = append(opts, session.WithAutomation(flags.automation))
	}
	return opts
}
