package dataset

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termviz/internal/config"
	"termviz/internal/events"
)

func TestLoaderPublishesSeriesThenCompletion(t *testing.T) {
	bus := events.NewBus()

	var order []string
	var got []*Series
	bus.Subscribe(EventLoadStarted, func(any) {
		order = append(order, "started")
	})
	bus.Subscribe(EventSeriesAdded, func(payload any) {
		order = append(order, "series")
		got = append(got, payload.(SeriesAddedEvent).Series)
	})
	done := make(chan LoadCompletedEvent, 1)
	bus.Subscribe(EventLoadCompleted, func(payload any) {
		order = append(order, "completed")
		done <- payload.(LoadCompletedEvent)
	})

	specs := []config.SeriesSpec{
		{Name: "cpu", Unit: "%", Seed: 1, Start: 50, Step: 5, Points: 30},
		{Name: "mem", Unit: "MiB", Seed: 2, Start: 512, Step: 16, Points: 45},
	}
	require.NoError(t, NewLoader(bus).StartLoad(context.Background(), specs))

	select {
	case ev := <-done:
		assert.Equal(t, 2, ev.Count)
	case <-time.After(2 * time.Second):
		t.Fatal("load did not complete")
	}

	assert.Equal(t, []string{"started", "series", "series", "completed"}, order)

	require.Len(t, got, 2)
	assert.Equal(t, "cpu", got[0].Name)
	assert.Equal(t, "%", got[0].Unit)
	assert.Len(t, got[0].Points, 30)
	assert.Equal(t, "mem", got[1].Name)
	assert.Len(t, got[1].Points, 45)
	assert.NotEqual(t, uuid.Nil, got[0].ID)
	assert.NotEqual(t, got[0].ID, got[1].ID)
}

func TestLoaderCancelSkipsRemainingSpecs(t *testing.T) {
	bus := events.NewBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	added := 0
	bus.Subscribe(EventSeriesAdded, func(any) {
		added++
		cancel() // handlers run on the load goroutine, so this lands before the next spec
	})
	done := make(chan LoadCompletedEvent, 1)
	bus.Subscribe(EventLoadCompleted, func(payload any) {
		done <- payload.(LoadCompletedEvent)
	})

	specs := []config.SeriesSpec{
		{Name: "a", Seed: 1, Points: 8, Step: 1},
		{Name: "b", Seed: 2, Points: 8, Step: 1},
	}
	require.NoError(t, NewLoader(bus).StartLoad(ctx, specs))

	select {
	case ev := <-done:
		assert.Equal(t, 1, ev.Count)
	case <-time.After(2 * time.Second):
		t.Fatal("load did not complete")
	}
	assert.Equal(t, 1, added)
}

func TestLoaderRejectsConcurrentLoad(t *testing.T) {
	l := NewLoader(&events.NullBus{}).(*loader)
	l.isLoading = true

	err := l.StartLoad(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already in progress")
}

func TestStopLoadWhenIdle(t *testing.T) {
	assert.NotPanics(t, func() { NewLoader(&events.NullBus{}).StopLoad() })
}
