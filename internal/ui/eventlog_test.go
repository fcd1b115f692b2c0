package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventLogAppendAndTail(t *testing.T) {
	l := NewEventLog(10)
	l.Append("selection:add", "cpu")
	l.Append("resize", "")

	lines := l.Tail(10)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "selection:add")
	assert.Contains(t, lines[0], "cpu")
	assert.Contains(t, lines[1], "resize")
}

func TestEventLogDropsOldestBeyondMax(t *testing.T) {
	l := NewEventLog(3)
	for _, name := range []string{"one", "two", "three", "four"} {
		l.Append(name, "")
	}

	require.Equal(t, 3, l.Len())
	lines := l.Tail(3)
	assert.Contains(t, lines[0], "two")
	assert.Contains(t, lines[2], "four")
}

func TestEventLogTailShorterThanRequested(t *testing.T) {
	l := NewEventLog(10)
	l.Append("only", "")

	assert.Len(t, l.Tail(5), 1)
}

func TestEventLogDump(t *testing.T) {
	l := NewEventLog(10)
	l.Append("first", "a")
	l.Append("second", "b")

	dump := l.Dump()
	lines := strings.Split(strings.TrimRight(dump, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "first")
	assert.Contains(t, lines[1], "second")
}

func TestEventLogZeroMaxGetsDefault(t *testing.T) {
	l := NewEventLog(0)
	for i := 0; i < 150; i++ {
		l.Append("e", "")
	}
	assert.Equal(t, 100, l.Len())
}
