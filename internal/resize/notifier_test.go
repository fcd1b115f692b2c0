package resize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termviz/internal/events"
)

func TestNotifierInstallsItselfOnSource(t *testing.T) {
	hook := NewHook()
	n := NewNotifier(hook)

	var names []string
	var payloads []any
	n.Subscribe(EventResize, func(payload any) {
		names = append(names, EventResize)
		payloads = append(payloads, payload)
	})

	hook.Fire()
	hook.Fire()

	require.Equal(t, []string{"resize", "resize"}, names)
	assert.Equal(t, []any{nil, nil}, payloads)
}

func TestNotifierEmitsOncePerSignal(t *testing.T) {
	hook := NewHook()
	n := NewNotifier(hook)

	count := 0
	n.Subscribe(EventResize, func(any) { count++ })

	for range 5 {
		hook.Fire()
	}
	assert.Equal(t, 5, count)
}

func TestSecondNotifierReplacesFirst(t *testing.T) {
	hook := NewHook()

	first := 0
	n1 := NewNotifier(hook)
	n1.Subscribe(EventResize, func(any) { first++ })

	second := 0
	n2 := NewNotifier(hook)
	n2.Subscribe(EventResize, func(any) { second++ })

	hook.Fire()

	assert.Zero(t, first, "replaced notifier must not receive signals")
	assert.Equal(t, 1, second)
}

func TestNewNotifierWithEvents(t *testing.T) {
	hook := NewHook()

	got := 0
	NewNotifierWithEvents(hook, events.SubscriptionMap{
		EventResize: func(any) { got++ },
	})

	hook.Fire()
	assert.Equal(t, 1, got)
}

func TestNotifierUnsubscribe(t *testing.T) {
	hook := NewHook()
	n := NewNotifier(hook)

	count := 0
	off := n.Subscribe(EventResize, func(any) { count++ })

	hook.Fire()
	off()
	hook.Fire()

	assert.Equal(t, 1, count)
}

func TestResizeDirectCall(t *testing.T) {
	n := NewNotifier(NewHook())

	count := 0
	n.Subscribe(EventResize, func(any) { count++ })

	n.Resize()
	assert.Equal(t, 1, count)
}

func TestHookWithoutHandlerIsSafe(t *testing.T) {
	var hook Hook
	assert.NotPanics(t, func() { hook.Fire() })
}

func TestHookLastWriterWins(t *testing.T) {
	hook := NewHook()

	a, b := 0, 0
	hook.SetHandler(func() { a++ })
	hook.SetHandler(func() { b++ })

	hook.Fire()

	assert.Zero(t, a)
	assert.Equal(t, 1, b)
}
