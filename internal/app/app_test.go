package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"brandos/internal/config"
	"brandos/internal/session"
	"brandos/internal/tenant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSessionOptionsFromConfig(t *testing.T) {
	cfg := config.GetDefaultConfig()
	off := false
	cfg.Dashboard.InitialTenant = "cylndr"
	cfg.Dashboard.ViewMode = "brand"
	cfg.Dashboard.VariationCount = 40
	cfg.Dashboard.ConsistencyThreshold = 0.5
	cfg.Dashboard.Automation = &off

	st := session.New(tenant.Builtin(), SessionOptions(cfg)...).Snapshot()

	assert.Equal(t, "cylndr", st.TenantID)
	assert.Equal(t, session.BrandDetail, st.Mode)
	assert.Equal(t, session.MaxVariationCount, st.VariationCount)
	assert.Equal(t, session.MinThreshold, st.ConsistencyThreshold)
	assert.False(t, st.AutomationEnabled)
}

func TestSessionOptionsDefaults(t *testing.T) {
	st := session.New(tenant.Builtin(), SessionOptions(config.GetDefaultConfig())...).Snapshot()

	assert.Equal(t, "jenni-kayne", st.TenantID)
	assert.Equal(t, session.AgencyOverview, st.Mode)
	assert.Equal(t, session.DefaultVariations, st.VariationCount)
	assert.Equal(t, session.DefaultThreshold, st.ConsistencyThreshold)
	assert.True(t, st.AutomationEnabled)
}

func TestNewApplicationOverridesWin(t *testing.T) {
	cfg := NewConfig(true, false, writeConfig(t, "dashboard:\n  initialTenant: cylndr\n"))
	cfg.Overrides = []session.Option{session.WithTenant("bazooka")}

	a, err := NewApplication(cfg)
	require.NoError(t, err)

	assert.Equal(t, "bazooka", a.Session().TenantID())
	assert.Equal(t, "info", a.Settings().Logging.Level)
}

func TestNewApplicationRejectsInvalidConfig(t *testing.T) {
	_, err := NewApplication(NewConfig(true, false, writeConfig(t, "logging:\n  level: loud\n")))
	assert.Error(t, err)

	_, err = NewApplication(NewConfig(true, false, filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, err)
}

func TestRunCLIModeWritesSummary(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfig(true, false, writeConfig(t, "ui:\n  tintAlpha: 0.5\n"))
	cfg.Output = &buf

	a, err := NewApplication(cfg)
	require.NoError(t, err)
	require.NoError(t, a.Run(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "Agency Overview | Agency / Clients")
	assert.Contains(t, out, "* Jenni Kayne")
	assert.Contains(t, out, "CYLNDR")
	assert.Contains(t, out, "rgba(200,184,166,0.5)")
	assert.Contains(t, out, "Dashboard:  https://jkbrandstudiosai-vis.vercel.app")
}

func TestWriteSummaryBrandView(t *testing.T) {
	var buf bytes.Buffer
	sess := session.New(tenant.Builtin(), session.WithTenant("cylndr"), session.WithMode(session.BrandDetail))

	require.NoError(t, WriteSummary(&buf, sess, 0.12))

	out := buf.String()
	assert.Contains(t, out, "Brand View | Brand / CYLNDR")
	assert.NotContains(t, out, "Clients:")
}
