package app

import (
	"context"
	"fmt"
	"os"

	"brandos/internal/config"
	"brandos/internal/session"
	"brandos/internal/tenant"
	"brandos/pkg/logging"
)

// Application is the main application structure that bootstraps and runs brandos
type Application struct {
	config   *Config
	settings config.BrandosConfig
	logLevel logging.LogLevel
	session  *session.Session
}

// NewApplication loads configuration and builds the dashboard session.
func NewApplication(cfg *Config) (*Application, error) {
	var (
		settings config.BrandosConfig
		err      error
	)
	if cfg.ConfigPath != "" {
		settings, err = config.LoadConfigFromPath(cfg.ConfigPath)
	} else {
		settings, err = config.LoadConfig()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load brandos configuration: %w", err)
	}

	level, err := logging.ParseLevel(settings.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid logging level: %w", err)
	}
	if cfg.Debug {
		level = logging.LevelDebug
	}

	// Initialize logging for CLI output (replaced for TUI mode)
	logging.InitForCLI(level, os.Stderr)
	if cfg.ConfigPath != "" {
		logging.Debug("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
	}

	opts := append(SessionOptions(settings), cfg.Overrides...)
	sess := session.New(tenant.Builtin(), opts...)
	logging.Debug("Bootstrap", "Session starts on %s in %s", sess.TenantID(), sess.Mode())

	return &Application{
		config:   cfg,
		settings: settings,
		logLevel: level,
		session:  sess,
	}, nil
}

// Session returns the dashboard session built from configuration.
func (a *Application) Session() *session.Session {
	return a.session
}

// Settings returns the loaded configuration.
func (a *Application) Settings() config.BrandosConfig {
	return a.settings
}

// Run executes the application in the appropriate mode
func (a *Application) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if a.config.NoTUI {
		return runCLIMode(ctx, a)
	}
	return runTUIMode(ctx, a)
}

// SessionOptions maps the dashboard section of the configuration onto
// session options. Zero values leave the session defaults in place.
func SessionOptions(cfg config.BrandosConfig) []session.Option {
	d := cfg.Dashboard
	opts := []session.Option{
		session.WithMode(session.ParseViewMode(d.ViewMode)),
		session.WithAutomation(cfg.AutomationEnabled()),
	}
	if d.InitialTenant != "" {
		opts = append(opts, session.WithTenant(d.InitialTenant))
	}
	if d.VariationCount != 0 {
		opts = append(opts, session.WithVariationCount(d.VariationCount))
	}
	if d.ConsistencyThreshold != 0 {
		opts = append(opts, session.WithThreshold(d.ConsistencyThreshold))
	}
	return opts
}
