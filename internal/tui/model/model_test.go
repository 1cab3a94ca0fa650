package model_test

import (
	"fmt"
	"testing"
	"time"

	"brandos/internal/session"
	"brandos/internal/tenant"
	"brandos/internal/tui/components"
	"brandos/internal/tui/model"
	"brandos/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(opts ...session.Option) *model.Model {
	sess := session.New(tenant.Builtin(), opts...)
	return model.InitialModel(sess, model.TUIConfig{Clipboard: func(string) error { return nil }})
}

func TestInitialModel_CursorFollowsSelectedTenant(t *testing.T) {
	m := newModel(session.WithTenant("bazooka"))
	assert.Equal(t, 2, m.Cursor)
	assert.Equal(t, model.ModeDashboard, m.CurrentAppMode)
	assert.Equal(t, "bazooka", m.ViewModel().TenantID)
}

func TestSetStatusMessage_StaleClearIsIgnored(t *testing.T) {
	m := newModel()

	cmd1 := m.SetStatusMessage("First message", components.MessageSuccess, time.Millisecond)
	require.NotNil(t, cmd1)
	first := cmd1().(model.ClearStatusBarMsg)

	cmd2 := m.SetStatusMessage("Second message", components.MessageError, time.Millisecond)
	second := cmd2().(model.ClearStatusBarMsg)
	assert.Equal(t, components.MessageError, m.StatusBarMessageType)

	m.ClearStatusMessage(first.Seq)
	assert.Equal(t, "Second message", m.StatusBarMessage)

	m.ClearStatusMessage(second.Seq)
	assert.Empty(t, m.StatusBarMessage)
}

func TestAddRawLineToActivityLog_Caps(t *testing.T) {
	m := newModel()
	for i := 0; i < model.MaxActivityLogLines+5; i++ {
		model.AddRawLineToActivityLog(m, fmt.Sprintf("line %d", i))
	}
	assert.Len(t, m.ActivityLog, model.MaxActivityLogLines)
	assert.Equal(t, "line 5", m.ActivityLog[0])
	assert.True(t, m.ActivityLogDirty)
}

func TestListenForLogs(t *testing.T) {
	assert.Nil(t, model.ListenForLogs(nil))

	ch := make(chan logging.LogEntry, 1)
	ch <- logging.LogEntry{Subsystem: "Test", Message: "hello"}
	msg := model.ListenForLogs(ch)()
	entry, ok := msg.(model.NewLogEntryMsg)
	require.True(t, ok)
	assert.Equal(t, "hello", entry.Entry.Message)

	close(ch)
	assert.IsType(t, model.LogChannelClosedMsg{}, model.ListenForLogs(ch)())
}

func TestCopyToClipboardCmd(t *testing.T) {
	var copied string
	sess := session.New(tenant.Builtin())
	m := model.InitialModel(sess, model.TUIConfig{Clipboard: func(s string) error {
		copied = s
		return nil
	}})

	msg := m.CopyToClipboardCmd("URL", "https://example.test")().(model.CopyResultMsg)
	assert.NoError(t, msg.Err)
	assert.Equal(t, "URL", msg.What)
	assert.Equal(t, "https://example.test", copied)
}
