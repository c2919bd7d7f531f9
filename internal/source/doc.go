// Package source defines the media retrieval capability and its backends.
//
// A Source maps an identifier to a media.Record. Concrete backends resolve
// against the local library directory, a remote HTTP API, a streaming
// endpoint, or the SQLite catalog. Caching wraps any backend with a bounded
// FIFO memoization layer: hits never touch the backend, misses delegate and
// cache successful results, and backend failures are never cached.
//
// Eviction is strictly insertion-ordered (FIFO, not LRU): a cache hit does not
// refresh an entry's position, so the oldest-inserted entry is always the one
// evicted when the cache is full.
package source
