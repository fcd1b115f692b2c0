package dataset

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"termviz/internal/config"
	"termviz/internal/events"
)

// Event names published by the loader.
const (
	EventLoadStarted   = "dataset:load-started"
	EventSeriesAdded   = "dataset:series-added"
	EventLoadCompleted = "dataset:load-completed"
)

// LoadStartedEvent is the payload of dataset:load-started.
type LoadStartedEvent struct {
	Specs int
}

// SeriesAddedEvent is the payload of dataset:series-added.
type SeriesAddedEvent struct {
	Series *Series
}

// LoadCompletedEvent is the payload of dataset:load-completed.
type LoadCompletedEvent struct {
	Count int
}

// Loader materializes configured series specs into Series values,
// announcing each one on the bus as it becomes available.
type Loader interface {
	StartLoad(ctx context.Context, specs []config.SeriesSpec) error
	StopLoad()
}

type loader struct {
	bus        events.Observable
	mu         sync.Mutex
	isLoading  bool
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// NewLoader creates a loader that publishes on bus.
func NewLoader(bus events.Observable) Loader {
	return &loader{bus: bus}
}

// StartLoad generates the series on a background goroutine. Subscribers
// receive dataset:series-added per series and dataset:load-completed at
// the end, on that goroutine.
func (l *loader) StartLoad(ctx context.Context, specs []config.SeriesSpec) error {
	l.mu.Lock()
	if l.isLoading {
		l.mu.Unlock()
		return fmt.Errorf("load already in progress")
	}
	l.isLoading = true

	loadCtx, cancel := context.WithCancel(ctx)
	l.cancelFunc = cancel
	l.mu.Unlock()

	l.bus.Trigger(EventLoadStarted, LoadStartedEvent{Specs: len(specs)})

	count := 0

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer func() {
			l.mu.Lock()
			l.isLoading = false
			l.cancelFunc = nil
			l.mu.Unlock()

			l.bus.Trigger(EventLoadCompleted, LoadCompletedEvent{Count: count})
		}()

		for _, spec := range specs {
			select {
			case <-loadCtx.Done():
				return
			default:
			}

			s := &Series{
				ID:     uuid.New(),
				Name:   spec.Name,
				Unit:   spec.Unit,
				Points: Walk(spec.Seed, spec.Points, spec.Start, spec.Step),
			}
			log.Debug().Str("series", s.Name).Int("points", len(s.Points)).Msg("series generated")

			l.bus.Trigger(EventSeriesAdded, SeriesAddedEvent{Series: s})
			count++
		}
	}()

	return nil
}

// StopLoad cancels any ongoing load and waits for it to finish.
func (l *loader) StopLoad() {
	l.mu.Lock()
	if l.cancelFunc != nil {
		l.cancelFunc()
	}
	l.mu.Unlock()

	l.wg.Wait()
}
