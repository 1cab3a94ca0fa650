package model

import (
	"brandos/internal/session"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "previous client"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "next client"),
		),
		NextTenant: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next tenant"),
		),
		PrevTenant: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("shift+tab/←", "previous tenant"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open client"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back to overview"),
		),
		ToggleBrand: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "agency/brand view"),
		),
		MoreVariations: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more variations"),
		),
		FewerVariations: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "fewer variations"),
		),
		RaiseThreshold: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "raise threshold"),
		),
		LowerThreshold: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "lower threshold"),
		),
		ToggleAuto: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "toggle automation"),
		),
		CopyURL: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy dashboard url"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log overlay"),
		),
		ToggleDark: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "toggle dark/light mode"),
		),
		ToggleDebug: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "toggle debug info"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
	}
}

// InitialModel constructs the model around an existing session.
func InitialModel(sess *session.Session, cfg TUIConfig) *Model {
	clip := cfg.Clipboard
	if clip == nil {
		clip = clipboard.WriteAll
	}

	m := &Model{
		CurrentAppMode: ModeDashboard,
		DebugMode:      cfg.DebugMode,
		ColorMode:      cfg.ColorMode,
		Session:        sess,
		TintAlpha:      cfg.TintAlpha,
		ActivityLog:    make([]string, 0),
		LogViewport:    viewport.New(0, 0),
		LogChannel:     cfg.LogChannel,
		Keys:           DefaultKeyMap(),
		Help:           help.New(),
		Clipboard:      clip,
	}
	m.Cursor = m.Registry().Index(sess.TenantID())
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	return m
}

// Init implements tea.Model and starts draining the log channel.
func (m *Model) Init() tea.Cmd {
	return ListenForLogs(m.LogChannel)
}
