package queries_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"fleetflow/internal/core/application/usecases/queries"
	"fleetflow/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCache_EmptyCacheMisses(t *testing.T) {
	cache := queries.NewMetricsCache()

	_, ok := cache.Get()

	assert.False(t, ok)
}

func TestMetricsCache_StoreThenGet(t *testing.T) {
	cache := queries.NewMetricsCache()
	snapshot := queries.GetFleetMetricsQueryResponse{
		UtilizationRate: 50,
		ComplianceRate:  75,
		NetProfit:       1200.5,
	}

	stored := cache.SetIfGeneration(snapshot, cache.Generation())
	got, ok := cache.Get()

	assert.True(t, stored)
	require.True(t, ok)
	assert.Equal(t, snapshot, got)
}

func TestMetricsCache_InvalidateDropsSnapshot(t *testing.T) {
	cache := queries.NewMetricsCache()
	cache.SetIfGeneration(queries.GetFleetMetricsQueryResponse{NetProfit: 100}, cache.Generation())

	cache.Invalidate()
	_, ok := cache.Get()

	assert.False(t, ok)
}

func TestMetricsCache_InvalidationDuringComputeDiscardsResult(t *testing.T) {
	cache := queries.NewMetricsCache()

	// A reader misses, records the generation, and starts computing.
	_, ok := cache.Get()
	require.False(t, ok)
	gen := cache.Generation()

	// A command commits before the computation finishes.
	cache.Invalidate()

	// The now-stale result must not be stored; the cache keeps reporting a
	// miss instead of serving pre-commit data.
	stored := cache.SetIfGeneration(queries.GetFleetMetricsQueryResponse{NetProfit: 100}, gen)
	assert.False(t, stored)

	_, ok = cache.Get()
	assert.False(t, ok)
}

type stubChangeFeed struct {
	events chan ports.ChangeEvent
}

func (f *stubChangeFeed) Subscribe(_ context.Context) (<-chan ports.ChangeEvent, error) {
	return f.events, nil
}

func TestMetricsCache_WatchInvalidatesOnEvent(t *testing.T) {
	cache := queries.NewMetricsCache()
	cache.SetIfGeneration(queries.GetFleetMetricsQueryResponse{NetProfit: 100}, cache.Generation())

	feed := &stubChangeFeed{events: make(chan ports.ChangeEvent)}
	done := make(chan error, 1)
	go func() {
		done <- cache.Watch(t.Context(), feed, slog.Default())
	}()

	feed.events <- ports.ChangeEvent{Kind: "trips"}
	close(feed.events)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watch did not return after feed closed")
	}

	_, ok := cache.Get()
	assert.False(t, ok)
}
