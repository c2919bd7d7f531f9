package testsupport

import (
	"context"
	"testing"

	"marquee/internal/catalog"
	"marquee/internal/config"
	"marquee/internal/media"
)

// MustOpenCatalog opens a catalog.Store for tests and registers cleanup.
func MustOpenCatalog(t testing.TB, cfg *config.Config) *catalog.Store {
	t.Helper()

	store, err := catalog.Open(cfg, nil)
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// AddRecord stores a record in the catalog for tests.
func AddRecord(t testing.TB, store *catalog.Store, id, locator, title string) media.Record {
	t.Helper()

	rec, err := media.NewRecord(id, locator, title)
	if err != nil {
		t.Fatalf("media.NewRecord: %v", err)
	}
	if err := store.Add(context.Background(), rec); err != nil {
		t.Fatalf("store.Add: %v", err)
	}
	return rec
}
