package source

import (
	"context"
	"log/slog"
	"sync"

	"marquee/internal/logging"
	"marquee/internal/media"
)

// Caching wraps a backend Source with a bounded FIFO memoization layer.
//
// The whole check-miss-insert-evict sequence runs under a single lock, so the
// capacity bound holds under concurrent Open calls and concurrent misses for
// the same ID hit the backend only once.
type Caching struct {
	backend  Source
	capacity int
	logger   *slog.Logger

	mu      sync.Mutex
	entries map[string]media.Record
	order   []string // insertion order, oldest first
}

// NewCaching builds a caching wrapper around backend. A capacity below one is
// clamped to a single slot so the wrapper degrades to evict-then-insert
// instead of failing.
func NewCaching(backend Source, capacity int, logger *slog.Logger) *Caching {
	if capacity < 1 {
		capacity = 1
	}
	return &Caching{
		backend:  backend,
		capacity: capacity,
		logger:   logging.NewComponentLogger(logger, "cache"),
		entries:  make(map[string]media.Record, capacity),
	}
}

// Open returns the cached record for id, or delegates to the backend on a
// miss. Backend failures propagate unchanged and are never cached; a later
// successful open for the same ID is cached normally.
func (c *Caching) Open(ctx context.Context, id string) (media.Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if rec, ok := c.entries[id]; ok {
		c.logger.Debug("cache hit", logging.String(logging.FieldMediaID, id))
		return rec, nil
	}

	c.logger.Debug("cache miss", logging.String(logging.FieldMediaID, id))
	rec, err := c.backend.Open(ctx, id)
	if err != nil {
		return media.Record{}, err
	}

	if len(c.entries) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
		c.logger.Debug("cache evicted oldest entry",
			logging.String(logging.FieldMediaID, oldest),
			logging.Int("capacity", c.capacity))
	}
	c.entries[id] = rec
	c.order = append(c.order, id)

	return rec, nil
}

// CacheSize returns the current number of cached entries.
func (c *Caching) CacheSize() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// IsCached reports whether id is currently cached. It has no side effects and
// does not change eviction order.
func (c *Caching) IsCached(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[id]
	return ok
}

// ClearCache empties the cache without touching the backend.
func (c *Caching) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]media.Record, c.capacity)
	c.order = nil
	c.logger.Debug("cache cleared")
}
