package config

// BrandosConfig is the top-level configuration structure for brandos.
type BrandosConfig struct {
	Dashboard DashboardSettings `yaml:"dashboard"`
	UI        UISettings        `yaml:"ui"`
	Logging   LoggingSettings   `yaml:"logging"`
}

// DashboardSettings seeds the initial session state.
type DashboardSettings struct {
	InitialTenant        string  `yaml:"initialTenant,omitempty"`
	ViewMode             string  `yaml:"viewMode,omitempty"`
	VariationCount       int     `yaml:"variationCount,omitempty"`
	ConsistencyThreshold float64 `yaml:"consistencyThreshold,omitempty"`
	// Automation is a pointer so an overlay can switch it off.
	Automation *bool `yaml:"automation,omitempty"`
}

// UISettings holds terminal presentation preferences.
type UISettings struct {
	Theme     string  `yaml:"theme,omitempty"`
	TintAlpha float64 `yaml:"tintAlpha,omitempty"`
}

// LoggingSettings holds logging preferences.
type LoggingSettings struct {
	Level string `yaml:"level,omitempty"`
}

// Theme values accepted in UISettings.Theme.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)
