package source

import (
	"context"
	"fmt"

	"marquee/internal/catalog"
	"marquee/internal/media"
)

// Catalog serves Open calls from the SQLite catalog store.
type Catalog struct {
	store *catalog.Store
}

// NewCatalog builds a backend over an open catalog store. The caller retains
// ownership of the store and is responsible for closing it.
func NewCatalog(store *catalog.Store) *Catalog {
	return &Catalog{store: store}
}

// Open looks up id in the catalog.
func (c *Catalog) Open(ctx context.Context, id string) (media.Record, error) {
	rec, found, err := c.store.Get(ctx, id)
	if err != nil {
		return media.Record{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if !found {
		return media.Record{}, fmt.Errorf("%w: %q in catalog", ErrNotFound, id)
	}
	return rec, nil
}
