//go:build windows

package resize

import "context"

// SignalSource is a no-op on Windows, where the console has no SIGWINCH
// equivalent; resize notifications have to come from a TUI runtime via
// Hook instead.
type SignalSource struct {
	fn func()
}

// NewSignalSource creates a signal source that never fires.
func NewSignalSource() *SignalSource { return &SignalSource{} }

// SetHandler installs fn as the sole handler, replacing any previous one.
func (s *SignalSource) SetHandler(fn func()) { s.fn = fn }

// Start is a no-op on Windows.
func (s *SignalSource) Start(ctx context.Context) {}
