package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/brandos"
	projectConfigDir = ".brandos"
	configFileName   = "config.yaml"
)

// LoadConfig loads the configuration by layering default, user, and project settings.
func LoadConfig() (BrandosConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// user config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else {
		config, err = overlayFile(config, userConfigPath)
		if err != nil {
			return BrandosConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else {
		config, err = overlayFile(config, projectConfigPath)
		if err != nil {
			return BrandosConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
	}

	if err := validate(config); err != nil {
		return BrandosConfig{}, err
	}
	return config, nil
}

// LoadConfigFromPath loads the defaults overlaid with a single explicit file.
func LoadConfigFromPath(path string) (BrandosConfig, error) {
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return BrandosConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	config := mergeConfigs(GetDefaultConfig(), overlay)
	if err := validate(config); err != nil {
		return BrandosConfig{}, err
	}
	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

func overlayFile(base BrandosConfig, path string) (BrandosConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return BrandosConfig{}, err
	}
	return mergeConfigs(base, overlay), nil
}

// loadConfigFromFile loads a BrandosConfig from a YAML file.
func loadConfigFromFile(filePath string) (BrandosConfig, error) {
	var config BrandosConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return BrandosConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return BrandosConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in
// the overlay leave the base untouched.
func mergeConfigs(base, overlay BrandosConfig) BrandosConfig {
	merged := base

	if overlay.Dashboard.InitialTenant != "" {
		merged.Dashboard.InitialTenant = overlay.Dashboard.InitialTenant
	}
	if overlay.Dashboard.ViewMode != "" {
		merged.Dashboard.ViewMode = overlay.Dashboard.ViewMode
	}
	if overlay.Dashboard.VariationCount != 0 {
		merged.Dashboard.VariationCount = overlay.Dashboard.VariationCount
	}
	if overlay.Dashboard.ConsistencyThreshold != 0 {
		merged.Dashboard.ConsistencyThreshold = overlay.Dashboard.ConsistencyThreshold
	}
	if overlay.Dashboard.Automation != nil {
		v := *overlay.Dashboard.Automation
		merged.Dashboard.Automation = &v
	}

	if overlay.UI.Theme != "" {
		merged.UI.Theme = overlay.UI.Theme
	}
	if overlay.UI.TintAlpha != 0 {
		merged.UI.TintAlpha = overlay.UI.TintAlpha
	}

	if overlay.Logging.Level != "" {
		merged.Logging.Level = overlay.Logging.Level
	}

	return merged
}

func validate(config BrandosConfig) error {
	switch strings.ToLower(config.UI.Theme) {
	case ThemeAuto, ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("invalid ui.theme %q: must be one of auto, dark, light", config.UI.Theme)
	}
	if config.UI.TintAlpha < 0 || config.UI.TintAlpha > 1 {
		return fmt.Errorf("invalid ui.tintAlpha %v: must be within [0, 1]", config.UI.TintAlpha)
	}
	return nil
}

// AutomationEnabled reports the effective automation flag.
func (c BrandosConfig) AutomationEnabled() bool {
	return c.Dashboard.Automation == nil || *c.Dashboard.Automation
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
