package queries

import (
	"context"
	"log/slog"
	"sync"

	"fleetflow/internal/core/ports"
)

// MetricsCache holds the last computed fleet metrics snapshot. The metrics
// query aggregates over every table, so recomputing it on each request gets
// expensive as the fleet grows; the cache serves repeat reads until a command
// commits.
//
// Stores are guarded by a generation counter. A computation starts from the
// generation observed at its cache miss; if an invalidation lands before the
// result is stored, the generations no longer match and the stale result is
// discarded instead of resurrecting pre-commit data.
//
// Safe for concurrent use.
type MetricsCache struct {
	mu         sync.RWMutex
	snapshot   *GetFleetMetricsQueryResponse
	generation uint64
}

// NewMetricsCache creates an empty metrics cache.
func NewMetricsCache() *MetricsCache {
	return &MetricsCache{}
}

// Get returns the cached snapshot and whether one is present.
func (c *MetricsCache) Get() (GetFleetMetricsQueryResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.snapshot == nil {
		return GetFleetMetricsQueryResponse{}, false
	}
	return *c.snapshot, true
}

// Generation returns the current invalidation generation. Callers record it
// before computing a snapshot and pass it to SetIfGeneration.
func (c *MetricsCache) Generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.generation
}

// SetIfGeneration stores a computed snapshot, but only when no invalidation has
// happened since gen was read. Reports whether the snapshot was stored.
func (c *MetricsCache) SetIfGeneration(snapshot GetFleetMetricsQueryResponse, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation != gen {
		return false
	}
	c.snapshot = &snapshot
	return true
}

// Invalidate drops the cached snapshot and advances the generation. The next
// Get reports a miss, and in-flight computations started before the
// invalidation can no longer store their results.
func (c *MetricsCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshot = nil
	c.generation++
}

// Watch subscribes to the change feed and invalidates the cache on every
// committed change. Every entity kind feeds into at least one metric, so no
// filtering by kind is done. Blocks until the context is cancelled or the feed
// closes.
func (c *MetricsCache) Watch(ctx context.Context, feed ports.ChangeFeed, logger *slog.Logger) error {
	events, err := feed.Subscribe(ctx)
	if err != nil {
		return err
	}

	for event := range events {
		logger.Debug("invalidating metrics cache", "kind", event.Kind)
		c.Invalidate()
	}

	return nil
}
