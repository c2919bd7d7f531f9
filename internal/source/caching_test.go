package source

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"marquee/internal/media"
)

// countingSource records every Open call and can be told to fail per ID.
type countingSource struct {
	calls    map[string]int
	failWith map[string]error
}

func newCountingSource() *countingSource {
	return &countingSource{
		calls:    make(map[string]int),
		failWith: make(map[string]error),
	}
}

func (s *countingSource) Open(_ context.Context, id string) (media.Record, error) {
	s.calls[id]++
	if err := s.failWith[id]; err != nil {
		return media.Record{}, err
	}
	return media.Record{ID: id, Locator: "/library/" + id}, nil
}

func (s *countingSource) total() int {
	sum := 0
	for _, n := range s.calls {
		sum += n
	}
	return sum
}

func TestCachingHitSkipsBackend(t *testing.T) {
	backend := newCountingSource()
	cache := NewCaching(backend, 8, nil)
	ctx := context.Background()

	ids := []string{"a", "b", "c"}
	for _, id := range ids {
		for range 2 {
			rec, err := cache.Open(ctx, id)
			if err != nil {
				t.Fatalf("Open(%q) failed: %v", id, err)
			}
			if rec.ID != id {
				t.Errorf("Open(%q) returned record %q", id, rec.ID)
			}
		}
	}

	if got := backend.total(); got != len(ids) {
		t.Errorf("backend invoked %d times, want %d (one per distinct id)", got, len(ids))
	}
}

func TestCachingBoundHolds(t *testing.T) {
	const capacity = 3
	backend := newCountingSource()
	cache := NewCaching(backend, capacity, nil)
	ctx := context.Background()

	for i := range 10 {
		if _, err := cache.Open(ctx, fmt.Sprintf("item-%d", i)); err != nil {
			t.Fatalf("Open failed: %v", err)
		}
		if size := cache.CacheSize(); size > capacity {
			t.Fatalf("cache size %d exceeds capacity %d after open %d", size, capacity, i)
		}
	}
}

func TestCachingFIFOEviction(t *testing.T) {
	const capacity = 3
	backend := newCountingSource()
	cache := NewCaching(backend, capacity, nil)
	ctx := context.Background()

	ids := []string{"id1", "id2", "id3", "id4"}
	for _, id := range ids {
		if _, err := cache.Open(ctx, id); err != nil {
			t.Fatalf("Open(%q) failed: %v", id, err)
		}
	}

	if cache.IsCached("id1") {
		t.Error("oldest entry id1 should have been evicted")
	}
	for _, id := range ids[1:] {
		if !cache.IsCached(id) {
			t.Errorf("%q should still be cached", id)
		}
	}
}

func TestCachingHitDoesNotPromote(t *testing.T) {
	backend := newCountingSource()
	cache := NewCaching(backend, 2, nil)
	ctx := context.Background()

	cache.Open(ctx, "first")
	cache.Open(ctx, "second")
	// Re-open "first": in an LRU cache this would protect it from eviction.
	cache.Open(ctx, "first")
	cache.Open(ctx, "third")

	if cache.IsCached("first") {
		t.Error("FIFO eviction must ignore access order: \"first\" should be evicted")
	}
	if !cache.IsCached("second") || !cache.IsCached("third") {
		t.Error("newer entries should survive")
	}
}

func TestCachingNoNegativeCaching(t *testing.T) {
	backend := newCountingSource()
	backend.failWith["flaky"] = fmt.Errorf("%w: backend offline", ErrUnavailable)
	cache := NewCaching(backend, 4, nil)
	ctx := context.Background()

	if _, err := cache.Open(ctx, "flaky"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if cache.IsCached("flaky") {
		t.Error("failed open must not be cached")
	}

	// Every retry hits the backend again.
	cache.Open(ctx, "flaky")
	if backend.calls["flaky"] != 2 {
		t.Errorf("backend called %d times for failing id, want 2", backend.calls["flaky"])
	}

	// Once the backend recovers, the result is cached normally.
	delete(backend.failWith, "flaky")
	if _, err := cache.Open(ctx, "flaky"); err != nil {
		t.Fatalf("Open after recovery failed: %v", err)
	}
	if !cache.IsCached("flaky") {
		t.Error("successful open after failure should be cached")
	}
	cache.Open(ctx, "flaky")
	if backend.calls["flaky"] != 3 {
		t.Errorf("backend called %d times, want 3 (hit after recovery)", backend.calls["flaky"])
	}
}

func TestCachingErrorPropagatesUnchanged(t *testing.T) {
	backend := newCountingSource()
	wantErr := fmt.Errorf("%w: %q", ErrNotFound, "ghost")
	backend.failWith["ghost"] = wantErr
	cache := NewCaching(backend, 4, nil)

	_, err := cache.Open(context.Background(), "ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err.Error() != wantErr.Error() {
		t.Errorf("error was rewrapped: got %q, want %q", err, wantErr)
	}
}

func TestCachingClampsTinyCapacity(t *testing.T) {
	for _, capacity := range []int{-5, 0, 1} {
		t.Run(fmt.Sprintf("capacity_%d", capacity), func(t *testing.T) {
			backend := newCountingSource()
			cache := NewCaching(backend, capacity, nil)
			ctx := context.Background()

			for _, id := range []string{"a", "b", "c"} {
				if _, err := cache.Open(ctx, id); err != nil {
					t.Fatalf("Open(%q) failed: %v", id, err)
				}
			}
			if size := cache.CacheSize(); size != 1 {
				t.Errorf("single-slot cache holds %d entries", size)
			}
			if !cache.IsCached("c") {
				t.Error("most recent insert should occupy the single slot")
			}
		})
	}
}

func TestCachingClearCache(t *testing.T) {
	backend := newCountingSource()
	cache := NewCaching(backend, 4, nil)
	ctx := context.Background()

	cache.Open(ctx, "a")
	cache.Open(ctx, "b")
	cache.ClearCache()

	if cache.CacheSize() != 0 {
		t.Errorf("size after clear = %d", cache.CacheSize())
	}
	if cache.IsCached("a") || cache.IsCached("b") {
		t.Error("entries survived ClearCache")
	}

	// Cache keeps working after a clear: next opens are misses, then hits.
	cache.Open(ctx, "a")
	cache.Open(ctx, "a")
	if backend.calls["a"] != 2 {
		t.Errorf("backend called %d times for a, want 2", backend.calls["a"])
	}
}
