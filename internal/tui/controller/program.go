package controller

import (
	"context"

	"brandos/internal/session"
	"brandos/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program for a dashboard session. The
// program stops when ctx is cancelled.
func NewProgram(ctx context.Context, sess *session.Session, cfg model.TUIConfig) *tea.Program {
	m := model.InitialModel(sess, cfg)
	return tea.NewProgram(NewAppModel(m), tea.WithAltScreen(), tea.WithContext(ctx))
}
