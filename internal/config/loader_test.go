package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes raw YAML into dir/filename, creating dir.
func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, configFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// withConfigPaths points the user and project lookups at the given files.
func withConfigPaths(t *testing.T, userPath, projectPath string) {
	t.Helper()
	originalUser := getUserConfigPath
	originalProject := getProjectConfigPath
	t.Cleanup(func() {
		getUserConfigPath = originalUser
		getProjectConfigPath = originalProject
	})
	getUserConfigPath = func() (string, error) { return userPath, nil }
	getProjectConfigPath = func() (string, error) { return projectPath, nil }
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	tempDir := t.TempDir()
	withConfigPaths(t,
		filepath.Join(tempDir, "non-existent-user-config.yaml"),
		filepath.Join(tempDir, "non-existent-project-config.yaml"),
	)

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loaded)
	assert.True(t, loaded.AutomationEnabled())
}

func TestLoadConfig_UserThenProjectOverride(t *testing.T) {
	tempDir := t.TempDir()
	userPath := writeConfig(t, filepath.Join(tempDir, "home", userConfigDir), `
dashboard:
  initialTenant: cylndr
  variationCount: 6
ui:
  theme: dark
`)
	projectPath := writeConfig(t, filepath.Join(tempDir, "project", projectConfigDir), `
dashboard:
  initialTenant: bazooka
  automation: false
logging:
  level: debug
`)
	withConfigPaths(t, userPath, projectPath)

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "bazooka", loaded.Dashboard.InitialTenant)
	assert.Equal(t, 6, loaded.Dashboard.VariationCount)
	assert.Equal(t, 0.90, loaded.Dashboard.ConsistencyThreshold)
	assert.False(t, loaded.AutomationEnabled())
	assert.Equal(t, ThemeDark, loaded.UI.Theme)
	assert.Equal(t, "debug", loaded.Logging.Level)
}

func TestLoadConfig_OutOfRangeDashboardValuesAreKept(t *testing.T) {
	tempDir := t.TempDir()
	projectPath := writeConfig(t, filepath.Join(tempDir, projectConfigDir), `
dashboard:
  variationCount: 99
  consistencyThreshold: 1.2
`)
	withConfigPaths(t, filepath.Join(tempDir, "missing.yaml"), projectPath)

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 99, loaded.Dashboard.VariationCount)
	assert.Equal(t, 1.2, loaded.Dashboard.ConsistencyThreshold)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	userPath := writeConfig(t, tempDir, "dashboard: [unclosed")
	withConfigPaths(t, userPath, filepath.Join(tempDir, "missing.yaml"))

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading user config")
}

func TestLoadConfig_InvalidTheme(t *testing.T) {
	tempDir := t.TempDir()
	projectPath := writeConfig(t, tempDir, "ui:\n  theme: neon\n")
	withConfigPaths(t, filepath.Join(tempDir, "missing.yaml"), projectPath)

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ui.theme")
}

func TestLoadConfigFromPath(t *testing.T) {
	tempDir := t.TempDir()
	path := writeConfig(t, tempDir, "ui:\n  tintAlpha: 0.4\n")

	loaded, err := LoadConfigFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 0.4, loaded.UI.TintAlpha)
	assert.Equal(t, "agency", loaded.Dashboard.ViewMode)

	_, err = LoadConfigFromPath(filepath.Join(tempDir, "nope.yaml"))
	assert.Error(t, err)
}

func TestGetUserConfigDir(t *testing.T) {
	original := osUserHomeDir
	defer func() { osUserHomeDir = original }()
	osUserHomeDir = func() (string, error) { return "/home/test", nil }

	dir, err := GetUserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/test", userConfigDir), dir)
}
