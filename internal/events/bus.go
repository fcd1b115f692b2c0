package events

import (
	"runtime/debug"
	"sync"

	"github.com/rs/zerolog/log"
)

// Handler processes the payload of a notification it subscribed to.
type Handler func(payload any)

// SubscriptionMap maps event names to handlers for bulk subscription
// at construction time.
type SubscriptionMap map[string]Handler

// Observable is the publish/subscribe capability that components compose.
// Delivery is synchronous: Trigger invokes every handler registered for
// the event name before it returns.
type Observable interface {
	// Subscribe registers a handler for an event name and returns a
	// function that cancels the registration.
	Subscribe(name string, h Handler) func()
	// Trigger notifies every handler registered for the event name,
	// in subscription order.
	Trigger(name string, payload any)
}

// subscription pairs a handler with a token so it can be removed later.
type subscription struct {
	id uint64
	h  Handler
}

// Bus is the concrete Observable. Registration and delivery are safe for
// concurrent use; handlers run on the goroutine that calls Trigger.
type Bus struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers map[string][]subscription
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[string][]subscription),
	}
}

// NewBusWithSubscriptions creates a bus with the given handlers already
// registered, so no notification can be missed between construction and
// the first Trigger.
func NewBusWithSubscriptions(subs SubscriptionMap) *Bus {
	b := NewBus()
	for name, h := range subs {
		b.Subscribe(name, h)
	}
	return b
}

// Subscribe registers a handler for an event name. The returned function
// removes the registration and is safe to call more than once.
func (b *Bus) Subscribe(name string, h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[name] = append(b.handlers[name], subscription{id: id, h: h})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[name]
		for i, s := range subs {
			if s.id == id {
				b.handlers[name] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Trigger notifies every handler registered for the event name, in
// subscription order, before returning. The handler list is copied out of
// the lock first, so a handler may subscribe or unsubscribe re-entrantly;
// such changes take effect from the next Trigger. A panicking handler is
// recovered and logged, and the remaining handlers still run.
func (b *Bus) Trigger(name string, payload any) {
	b.mu.RLock()
	subs := b.handlers[name]
	handlers := make([]Handler, len(subs))
	for i, s := range subs {
		handlers[i] = s.h
	}
	b.mu.RUnlock()

	log.Debug().Str("event", name).Int("handlers", len(handlers)).Msg("trigger")

	for _, h := range handlers {
		invoke(name, h, payload)
	}
}

// invoke runs a single handler, containing any panic.
func invoke(name string, h Handler, payload any) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("event", name).
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("event handler panicked")
		}
	}()
	h(payload)
}

// NullBus is a no-op Observable for wiring and tests.
type NullBus struct{}

func (n *NullBus) Subscribe(name string, h Handler) func() { return func() {} }
func (n *NullBus) Trigger(name string, payload any)        {}
