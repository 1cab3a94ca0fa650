package model

import "brandos/pkg/logging"

// NewLogEntryMsg carries one entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}

// LogChannelClosedMsg is sent once the logging channel is closed.
type LogChannelClosedMsg struct{}

// ClearStatusBarMsg clears the status message with the matching sequence.
type ClearStatusBarMsg struct {
	Seq int
}

// CopyResultMsg reports the outcome of a clipboard write.
type CopyResultMsg struct {
	What string
	Err  error
}
