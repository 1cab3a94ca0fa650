// Package config provides configuration management for brandos.
//
// Configuration is loaded from YAML files and merged in order, with later
// sources overriding earlier ones:
//
//  1. Default configuration (compiled in)
//  2. User configuration (~/.config/brandos/config.yaml)
//  3. Project configuration (./.brandos/config.yaml)
//
// Command-line flags are applied on top by the cmd package.
//
// # Configuration Structure
//
//	dashboard:
//	  initialTenant: "cylndr"
//	  viewMode: "agency"          # or "brand"
//	  variationCount: 12          # clamped to [1, 24]
//	  consistencyThreshold: 0.9   # clamped to [0.60, 0.95]
//	  automation: true
//	ui:
//	  theme: "auto"               # "auto", "dark" or "light"
//	  tintAlpha: 0.12
//	logging:
//	  level: "info"
//
// Out-of-range dashboard values are not an error; the session clamps them
// when it is created.
package config
