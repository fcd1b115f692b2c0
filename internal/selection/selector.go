// Package selection tracks which items a user has chosen and announces
// every change through a composed publish/subscribe notifier, so widgets
// can react without knowing who mutated the selection.
package selection

import (
	"fmt"

	"termviz/internal/events"
)

// Event names emitted by a Selector.
const (
	EventAdd    = "selection:add"
	EventRemove = "selection:remove"
	EventEmpty  = "selection:empty"
)

// Mode governs how many items a Selector holds at once.
type Mode int

const (
	// Single keeps at most one selected item; selecting replaces it.
	Single Mode = iota
	// Multiple keeps an ordered sequence; duplicates are permitted.
	Multiple
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Single:
		return "single"
	case Multiple:
		return "multiple"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode maps a mode name onto a Mode, defaulting to Multiple for
// unknown values.
func ParseMode(name string) Mode {
	if name == "single" {
		return Single
	}
	return Multiple
}

// Selector holds the current selection of items and notifies observers on
// change. Items are compared with ==, so selecting pointers gives the
// usual reference-identity semantics. Inputs are trusted: any value of T,
// including the zero value, is selectable.
//
// A Selector owns its notifier and delegates subscription to it; it is not
// itself safe for concurrent use and is expected to live on a single
// goroutine, typically the UI loop.
type Selector[T comparable] struct {
	itemType string
	mode     Mode
	items    []T
	bus      events.Observable
}

// New creates an empty selector for the described kind of item.
func New[T comparable](itemType string, mode Mode) *Selector[T] {
	return &Selector[T]{
		itemType: itemType,
		mode:     mode,
		bus:      events.NewBus(),
	}
}

// NewWithEvents creates an empty selector with the given handlers already
// subscribed, so they observe every mutation from the first one on.
func NewWithEvents[T comparable](itemType string, mode Mode, subs events.SubscriptionMap) *Selector[T] {
	return &Selector[T]{
		itemType: itemType,
		mode:     mode,
		bus:      events.NewBusWithSubscriptions(subs),
	}
}

// Subscribe registers a handler for one of the selection event names and
// returns a function that cancels the registration.
func (s *Selector[T]) Subscribe(name string, h events.Handler) func() {
	return s.bus.Subscribe(name, h)
}

// ItemType returns the label describing what kind of item this selector
// manages.
func (s *Selector[T]) ItemType() string { return s.itemType }

// Mode returns the selection cardinality policy.
func (s *Selector[T]) Mode() Mode { return s.mode }

// Select adds an item to the selection. In Single mode it replaces any
// previous selection; in Multiple mode it appends unconditionally, so the
// same item may appear more than once. Emits selection:add with the item.
func (s *Selector[T]) Select(item T) {
	if s.mode == Single {
		s.items = s.items[:0]
	}
	s.items = append(s.items, item)
	s.bus.Trigger(EventAdd, item)
}

// Unselect removes an item from the selection and reports whether there
// was anything to remove.
//
// In Single mode the selection is cleared unconditionally, even when item
// is not the one selected, and the result is always true. In Multiple mode
// every element equal to item is removed in one call; when nothing
// matches, the selection is untouched, no event fires, and the result is
// false. On success it emits selection:remove with the item.
func (s *Selector[T]) Unselect(item T) bool {
	if s.mode == Single {
		s.items = s.items[:0]
		s.bus.Trigger(EventRemove, item)
		return true
	}

	kept := s.items[:0]
	for _, it := range s.items {
		if it != item {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(s.items) {
		return false
	}
	s.items = kept
	s.bus.Trigger(EventRemove, item)
	return true
}

// Empty clears the selection unconditionally and emits selection:empty,
// with no payload, exactly once regardless of prior state.
func (s *Selector[T]) Empty() {
	s.items = s.items[:0]
	s.bus.Trigger(EventEmpty, nil)
}

// IsEmpty reports whether nothing is selected.
func (s *Selector[T]) IsEmpty() bool { return len(s.items) == 0 }

// Selection returns a copy of the selected items in order. Mutating the
// returned slice never affects the selector.
func (s *Selector[T]) Selection() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Count returns the number of selected items, duplicates included.
func (s *Selector[T]) Count() int { return len(s.items) }

// Contains reports whether at least one selected element equals item.
func (s *Selector[T]) Contains(item T) bool {
	for _, it := range s.items {
		if it == item {
			return true
		}
	}
	return false
}

// Toggle flips the presence of an item.
//
// In Multiple mode it unselects the item, selecting it instead when it was
// not present. In Single mode selecting the already-selected item removes
// it, while anything else replaces the current selection.
func (s *Selector[T]) Toggle(item T) {
	if s.mode == Multiple {
		if !s.Unselect(item) {
			s.Select(item)
		}
		return
	}

	if len(s.items) == 0 || s.items[0] != item {
		s.Select(item)
		return
	}
	s.Unselect(item)
}

// String describes the selector for logs.
func (s *Selector[T]) String() string {
	return fmt.Sprintf("%s(%s): %d selected", s.itemType, s.mode, len(s.items))
}
