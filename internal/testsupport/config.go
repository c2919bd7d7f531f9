// Package testsupport provides helpers for wiring configs and stores in tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"marquee/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LibraryDir = filepath.Join(base, "library")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.CatalogPath = filepath.Join(base, "catalog.db")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithCacheCapacity overrides the cache capacity on the test config.
func WithCacheCapacity(capacity int) ConfigOption {
	return func(c *config.Config) {
		c.Cache.Capacity = capacity
	}
}

// WithBackend overrides the source backend on the test config.
func WithBackend(backend string) ConfigOption {
	return func(c *config.Config) {
		c.Source.Backend = backend
	}
}
