package controller

import (
	"brandos/internal/tui/model"
	"brandos/pkg/logging"
)

const controllerSubsystem = "Controller"

// LogInfo logs through pkg/logging; in TUI mode the entry comes back as a
// NewLogEntryMsg and lands in the log overlay.
func LogInfo(m *model.Model, format string, args ...interface{}) {
	logging.Info(controllerSubsystem, format, args...)
}

// LogDebug logs only when the TUI runs in debug mode.
func LogDebug(m *model.Model, format string, args ...interface{}) {
	if m.DebugMode {
		logging.Debug(controllerSubsystem, format, args...)
	}
}

// LogError logs err through pkg/logging.
func LogError(m *model.Model, err error, format string, args ...interface{}) {
	logging.Error(controllerSubsystem, err, format, args...)
}
