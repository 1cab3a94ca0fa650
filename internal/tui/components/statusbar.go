package components

import (
	"strings"

	"brandos/internal/tui/design"
	"brandos/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// MessageType selects the status bar style.
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageError
	MessageWarning
)

// StatusBar represents the bottom status bar
type StatusBar struct {
	Width       int
	Message     string
	MessageType MessageType
	LeftText    string
	RightText   string
}

// NewStatusBar creates a new status bar
func NewStatusBar(width int) *StatusBar {
	return &StatusBar{Width: width}
}

// WithMessage sets a transient status message, which replaces the left text.
func (s *StatusBar) WithMessage(message string, msgType MessageType) *StatusBar {
	s.Message = message
	s.MessageType = msgType
	return s
}

// WithLeftText sets the left side text
func (s *StatusBar) WithLeftText(text string) *StatusBar {
	s.LeftText = text
	return s
}

// WithRightText sets the right side text
func (s *StatusBar) WithRightText(text string) *StatusBar {
	s.RightText = text
	return s
}

// Render returns the styled status bar
func (s *StatusBar) Render() string {
	style := s.getStyle()
	available := s.Width - style.GetHorizontalFrameSize()
	if available < 1 {
		available = 1
	}

	left := s.LeftText
	if s.Message != "" {
		left = s.Message
	}

	content := utils.TruncateString(left, available)
	if s.RightText != "" {
		padding := available - lipgloss.Width(left) - lipgloss.Width(s.RightText)
		if padding > 0 {
			content = left + strings.Repeat(" ", padding) + s.RightText
		}
	}
	return style.Render(content)
}

func (s *StatusBar) getStyle() lipgloss.Style {
	if s.Message == "" {
		return design.StatusBarStyle
	}
	switch s.MessageType {
	case MessageSuccess:
		return design.StatusBarSuccessStyle
	case MessageError:
		return design.StatusBarErrorStyle
	case MessageWarning:
		return design.StatusBarWarningStyle
	default:
		return design.StatusBarStyle
	}
}
