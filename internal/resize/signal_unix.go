//go:build !windows

package resize

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

// SignalSource is a Source backed by the terminal's SIGWINCH signal, for
// processes that own the terminal directly rather than through a TUI
// runtime. Every delivered signal invokes the handler once.
//
// Install the handler before calling Start.
type SignalSource struct {
	fn func()
}

// NewSignalSource creates a signal source that is not yet watching.
func NewSignalSource() *SignalSource { return &SignalSource{} }

// SetHandler installs fn as the sole handler, replacing any previous one.
func (s *SignalSource) SetHandler(fn func()) { s.fn = fn }

// Start watches SIGWINCH on a background goroutine until ctx is done.
func (s *SignalSource) Start(ctx context.Context) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGWINCH)

	go func() {
		defer signal.Stop(ch)
		for {
			select {
			case <-ch:
				log.Debug().Msg("SIGWINCH received")
				if s.fn != nil {
					s.fn()
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}
