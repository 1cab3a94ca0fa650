package model

import (
	"brandos/internal/session"
	"brandos/internal/tenant"
	"brandos/internal/tui/components"
	"brandos/internal/viewmodel"
	"brandos/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
)

// AppMode is the TUI's overlay state. The dashboard's own view mode lives
// in the session.
type AppMode int

const (
	ModeDashboard AppMode = iota
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeDashboard:
		return "Dashboard"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// Constants for UI
const (
	MaxActivityLogLines = 500
	ThresholdStep       = 0.01
)

// TUIConfig carries what the program needs beyond the session.
type TUIConfig struct {
	DebugMode  bool
	ColorMode  string
	TintAlpha  float64
	LogChannel <-chan logging.LogEntry
	// Clipboard writes text to the system clipboard. Tests replace it.
	Clipboard func(string) error
}

// Model is the state of the dashboard TUI.
type Model struct {
	Width  int
	Height int

	CurrentAppMode AppMode
	DebugMode      bool
	ColorMode      string
	QuitApp        bool

	Session *session.Session
	// Cursor is the highlighted row of the overview client list.
	Cursor int

	TintAlpha float64

	StatusBarMessage     string
	StatusBarMessageType components.MessageType
	// statusSeq identifies the current status message so stale clear
	// timers do not wipe a newer one.
	statusSeq int

	ActivityLog      []string
	ActivityLogDirty bool
	LogViewport      viewport.Model
	LogChannel       <-chan logging.LogEntry

	Keys      KeyMap
	Help      help.Model
	Clipboard func(string) error
}

// Registry returns the tenant registry of the session.
func (m *Model) Registry() *tenant.Registry {
	return m.Session.Registry()
}

// ViewModel derives the current frame's display values.
func (m *Model) ViewModel() viewmodel.ViewModel {
	return viewmodel.Derive(m.Registry(), m.Session.Snapshot(), viewmodel.Options{TintAlpha: m.TintAlpha})
}

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	Up              key.Binding
	Down            key.Binding
	NextTenant      key.Binding
	PrevTenant      key.Binding
	Enter           key.Binding
	Back            key.Binding
	ToggleBrand     key.Binding
	MoreVariations  key.Binding
	FewerVariations key.Binding
	RaiseThreshold  key.Binding
	LowerThreshold  key.Binding
	ToggleAuto      key.Binding
	CopyURL         key.Binding
	ToggleLog       key.Binding
	ToggleDark      key.Binding
	ToggleDebug     key.Binding
	Help            key.Binding
	Quit            key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Back, k.ToggleBrand, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTenant, k.PrevTenant, k.Enter, k.Back},
		{k.ToggleBrand, k.MoreVariations, k.FewerVariations, k.RaiseThreshold, k.LowerThreshold, k.ToggleAuto},
		{k.CopyURL, k.ToggleLog, k.ToggleDark, k.ToggleDebug, k.Help, k.Quit},
	}
}
