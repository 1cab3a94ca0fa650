package controller

import (
	"fmt"
	"strings"
	"time"

	"brandos/internal/tui/components"
	"brandos/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

const statusMessageTTL = 3 * time.Second

// Update is the central message routing function of the TUI. It applies
// msg to m and returns the commands to run next.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return handleKeyMsgGlobal(m, msg)

	case tea.WindowSizeMsg:
		return handleWindowSizeMsg(m, msg)

	case model.NewLogEntryMsg:
		model.AddRawLineToActivityLog(m, msg.Entry.String())
		if m.CurrentAppMode == model.ModeLogOverlay {
			refreshLogViewport(m)
		}
		return m, model.ListenForLogs(m.LogChannel)

	case model.LogChannelClosedMsg:
		m.LogChannel = nil
		return m, nil

	case model.ClearStatusBarMsg:
		m.ClearStatusMessage(msg.Seq)
		return m, nil

	case model.CopyResultMsg:
		if msg.Err != nil {
			LogError(m, msg.Err, "Failed to copy %s", msg.What)
			return m, m.SetStatusMessage(fmt.Sprintf("Copy %s failed", msg.What), components.MessageError, statusMessageTTL)
		}
		return m, m.SetStatusMessage(fmt.Sprintf("%s copied to clipboard", msg.What), components.MessageSuccess, statusMessageTTL)
	}

	return m, nil
}

func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Help.Width = msg.Width
	m.LogViewport.Width = max(msg.Width-8, 10)
	m.LogViewport.Height = max(msg.Height-8, 3)
	refreshLogViewport(m)
	return m, nil
}

func refreshLogViewport(m *model.Model) {
	m.LogViewport.SetContent(strings.Join(m.ActivityLog, "\n"))
	m.LogViewport.GotoBottom()
	m.ActivityLogDirty = false
}
