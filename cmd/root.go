package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// configPath is the value of the --config flag. When empty the layered
// user and project configuration is used.
var configPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "brandos",
	Short: "Terminal console for the BrandStudios brand intelligence demo",
	Long: `brandos renders the BrandStudios brand intelligence console in the
terminal. It walks the agency overview, a single client's detail and the
brand view for a fixed set of demo tenants, deriving tints, badges and
ship-gate labels from the selected tenant.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid config files)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "brandos version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ~/.config/brandos/config.yaml then ./.brandos/config.yaml)")

	rootCmd.AddCommand(newDashboardCmd())
	rootCmd.AddCommand(newTenantsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
