package model

import (
	"time"

	"brandos/internal/tui/components"
	"brandos/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// ListenForLogs returns a command that waits for the next log entry.
// The controller re-issues it after each NewLogEntryMsg.
func ListenForLogs(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return LogChannelClosedMsg{}
		}
		return NewLogEntryMsg{Entry: entry}
	}
}

// SetStatusMessage shows msg in the status bar and returns a command that
// clears it after clearAfter.
func (m *Model) SetStatusMessage(msg string, msgType components.MessageType, clearAfter time.Duration) tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	m.StatusBarMessage = msg
	m.StatusBarMessageType = msgType
	return tea.Tick(clearAfter, func(time.Time) tea.Msg {
		return ClearStatusBarMsg{Seq: seq}
	})
}

// ClearStatusMessage clears the status bar if seq is still current.
func (m *Model) ClearStatusMessage(seq int) {
	if seq == m.statusSeq {
		m.StatusBarMessage = ""
	}
}

// CopyToClipboardCmd writes text to the clipboard off the update loop.
func (m *Model) CopyToClipboardCmd(what, text string) tea.Cmd {
	write := m.Clipboard
	return func() tea.Msg {
		return CopyResultMsg{What: what, Err: write(text)}
	}
}
