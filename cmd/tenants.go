package cmd

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"brandos/internal/tenant"
	"brandos/internal/tint"
	"brandos/internal/viewmodel"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputTable = "table"
	outputYAML  = "yaml"
)

func newTenantsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "tenants",
		Short: "List the demo tenants",
		Long:  `Lists the tenants compiled into brandos, in registry order.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listTenants(cmd.OutOrStdout(), tenant.Builtin(), output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format (table|yaml)")

	cmd.AddCommand(newTenantsShowCmd())
	return cmd
}

func newTenantsShowCmd() *cobra.Command {
	var alpha float64

	cmd := &cobra.Command{
		Use:   "show <tenant-id>",
		Short: "Show one tenant and its derived tint",
		Long: `Shows one tenant with its badge and derived tint. Unknown ids resolve to
the first tenant, the same way the dashboard does.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showTenant(cmd.OutOrStdout(), tenant.Builtin(), args[0], alpha)
		},
	}
	cmd.Flags().Float64Var(&alpha, "alpha", viewmodel.DefaultTintAlpha, "tint alpha")
	return cmd
}

func listTenants(w io.Writer, reg *tenant.Registry, output string) error {
	switch output {
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reg.Records()); err != nil {
			return fmt.Errorf("failed to encode tenants: %w", err)
		}
		return enc.Close()
	case outputTable, "":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tSTATUS\tPRIMARY\tURL")
		for _, rec := range reg.Records() {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", rec.ID, rec.Name, rec.Status, rec.PrimaryColor(), orDash(rec.URL))
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", output, outputTable, outputYAML)
	}
}

func showTenant(w io.Writer, reg *tenant.Registry, id string, alpha float64) error {
	if alpha < 0 || alpha > 1 || math.IsNaN(alpha) {
		return fmt.Errorf("invalid --alpha %v: must be within [0, 1]", alpha)
	}
	rec := reg.Resolve(id)
	if rec.ID != id {
		fmt.Fprintf(w, "Unknown tenant %q, showing %s\n", id, rec.ID)
	}
	t := tint.Derive(rec, alpha)
	badge := viewmodel.BadgeFor(rec.Status)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", rec.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", rec.Name)
	fmt.Fprintf(tw, "Status:\t%s (%s on %s)\n", badge.Label, badge.Foreground, badge.Background)
	fmt.Fprintf(tw, "Colors:\t%s\n", strings.Join(rec.DNA.Colors, ", "))
	fmt.Fprintf(tw, "Primary tint:\t%s\t%s\n", t.PrimaryHex, t.Primary)
	fmt.Fprintf(tw, "Secondary tint:\t%s\t%s\n", t.SecondaryHex, t.Secondary)
	if rec.Campaign != "" {
		fmt.Fprintf(tw, "Campaign:\t%s\n", rec.Campaign)
	}
	fmt.Fprintf(tw, "URL:\t%s\n", orDash(rec.URL))
	return tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
