package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"brandos/internal/app"
	"brandos/internal/config"
	"brandos/internal/session"
	"brandos/internal/tenant"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlaggedCmd(t *testing.T, args ...string) (*cobra.Command, *dashboardFlags) {
	t.Helper()
	cmd := &cobra.Command{Use: "dashboard"}
	flags := &dashboardFlags{}
	bindDashboardFlags(cmd, flags)
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd, flags
}

func TestFlagOverridesOnlyChangedFlags(t *testing.T) {
	cmd, flags := newFlaggedCmd(t)
	assert.Empty(t, flagOverrides(cmd, flags))
}

func TestFlagOverridesWinOverConfig(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Dashboard.InitialTenant = "cylndr"
	cfg.Dashboard.ViewMode = "brand"

	cmd, flags := newFlaggedCmd(t,
		"--tenant", "bazooka",
		"--brand=false",
		"--variations", "3",
		"--threshold", "0.99",
		"--automation=false",
	)
	opts := append(app.SessionOptions(cfg), flagOverrides(cmd, flags)...)
	st := session.New(tenant.Builtin(), opts...).Snapshot()

	assert.Equal(t, "bazooka", st.TenantID)
	assert.Equal(t, session.AgencyOverview, st.Mode)
	assert.Equal(t, 3, st.VariationCount)
	assert.Equal(t, session.MaxThreshold, st.ConsistencyThreshold)
	assert.False(t, st.AutomationEnabled)
}

func TestRunDashboardNoTUI(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dashboard:\n  viewMode: detail\n  consistencyThreshold: 0.8\n"), 0o644))

	original := configPath
	configPath = path
	defer func() { configPath = original }()

	cmd, flags := newFlaggedCmd(t, "--no-tui", "--tenant", "bazooka")
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	require.NoError(t, runDashboard(cmd, flags))

	out := buf.String()
	assert.Contains(t, out, "Agency Detail")
	assert.Contains(t, out, "Bazooka (bazooka) [Attention]")
	assert.Contains(t, out, "Ship-Gate: auto-pass ≥ 80%")
	assert.Contains(t, out, "Automation: On")
	assert.NotContains(t, out, "Dashboard:")
}

func TestRunDashboardBadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  theme: neon\n"), 0o644))

	original := configPath
	configPath = path
	defer func() { configPath = original }()

	cmd, flags := newFlaggedCmd(t, "--no-tui")
	assert.Error(t, runDashboard(cmd, flags))
}
