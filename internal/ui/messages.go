package ui

import "time"

// EventMsg wraps a notification forwarded from the application bus.
type EventMsg struct {
	Name    string
	Payload any
}

// tickMsg is sent on a timer to advance the live series
type tickMsg time.Time

// logPagerMsg contains the result of a log pager command
type logPagerMsg struct {
	err error
}

// clearStatusMsg clears the transient status bar message
type clearStatusMsg struct{}
