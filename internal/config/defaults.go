package config

// GetDefaultConfig returns the compiled-in configuration.
func GetDefaultConfig() BrandosConfig {
	automation := true
	return BrandosConfig{
		Dashboard: DashboardSettings{
			ViewMode:             "agency",
			VariationCount:       12,
			ConsistencyThreshold: 0.90,
			Automation:           &automation,
		},
		UI: UISettings{
			Theme:     ThemeAuto,
			TintAlpha: 0.12,
		},
		Logging: LoggingSettings{
			Level: "info",
		},
	}
}
