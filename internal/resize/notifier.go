package resize

import (
	"termviz/internal/events"
)

// EventResize is the notification name emitted once per host resize signal.
const EventResize = "resize"

// Source is the host environment's resize hook. A source drives at most
// one handler: installing a new handler replaces the previous one, last
// writer wins.
type Source interface {
	SetHandler(fn func())
}

// Hook is a manually driven Source for hosts that already observe resizes
// themselves, such as a Bubble Tea program translating tea.WindowSizeMsg.
// The zero value is ready to use.
type Hook struct {
	fn func()
}

// NewHook creates an empty hook.
func NewHook() *Hook { return &Hook{} }

// SetHandler installs fn as the sole handler, replacing any previous one.
func (h *Hook) SetHandler(fn func()) { h.fn = fn }

// Fire invokes the installed handler, if any.
func (h *Hook) Fire() {
	if h.fn != nil {
		h.fn()
	}
}

// Notifier bridges the host environment's resize signal into the
// notification system, so components can subscribe to viewport changes
// without coupling to the host's event model.
//
// Construct exactly one per host window, at startup, and pass it by
// reference to consumers; constructing a second notifier on the same
// source silently replaces the first.
type Notifier struct {
	bus events.Observable
}

// NewNotifier creates a notifier and installs it as the source's handler.
func NewNotifier(src Source) *Notifier {
	n := &Notifier{bus: events.NewBus()}
	src.SetHandler(n.Resize)
	return n
}

// NewNotifierWithEvents creates a notifier with the given handlers already
// subscribed, then installs it as the source's handler.
func NewNotifierWithEvents(src Source, subs events.SubscriptionMap) *Notifier {
	n := &Notifier{bus: events.NewBusWithSubscriptions(subs)}
	src.SetHandler(n.Resize)
	return n
}

// Subscribe registers a handler for the resize notification and returns a
// function that cancels the registration.
func (n *Notifier) Subscribe(name string, h events.Handler) func() {
	return n.bus.Subscribe(name, h)
}

// Resize republishes one host resize signal as exactly one resize
// notification with no payload. The source invokes it on every signal;
// embedding hosts may also call it directly.
func (n *Notifier) Resize() {
	n.bus.Trigger(EventResize, nil)
}
