package ui

import (
	"fmt"
	"strings"
	"time"
)

// LogEntry is one observed notification.
type LogEntry struct {
	At     time.Time
	Name   string
	Detail string
}

// EventLog keeps the most recent notifications for the side panel and the
// pager. It is confined to the UI goroutine: every append happens inside
// the model's Update, either directly or from a handler a mutation there
// triggered synchronously.
type EventLog struct {
	entries []LogEntry
	max     int
}

// NewEventLog creates a log that retains at most max entries.
func NewEventLog(max int) *EventLog {
	if max <= 0 {
		max = 100
	}
	return &EventLog{max: max}
}

// Append records a notification, dropping the oldest entry when full.
func (l *EventLog) Append(name, detail string) {
	l.entries = append(l.entries, LogEntry{At: time.Now(), Name: name, Detail: detail})
	if len(l.entries) > l.max {
		l.entries = l.entries[len(l.entries)-l.max:]
	}
}

// Len returns the number of retained entries.
func (l *EventLog) Len() int { return len(l.entries) }

// Tail returns the most recent n entries formatted one per line, newest
// last.
func (l *EventLog) Tail(n int) []string {
	start := len(l.entries) - n
	if start < 0 {
		start = 0
	}
	lines := make([]string, 0, len(l.entries)-start)
	for _, e := range l.entries[start:] {
		lines = append(lines, formatEntry(e))
	}
	return lines
}

// Dump returns every retained entry as one string for the pager.
func (l *EventLog) Dump() string {
	var b strings.Builder
	for _, e := range l.entries {
		b.WriteString(formatEntry(e))
		b.WriteString("\n")
	}
	return b.String()
}

func formatEntry(e LogEntry) string {
	if e.Detail == "" {
		return fmt.Sprintf("%s  %s", e.At.Format("15:04:05"), e.Name)
	}
	return fmt.Sprintf("%s  %-18s %s", e.At.Format("15:04:05"), e.Name, e.Detail)
}
