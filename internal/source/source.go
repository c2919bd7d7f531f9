package source

import (
	"context"
	"errors"

	"marquee/internal/media"
)

// Source maps a media identifier to a Record.
type Source interface {
	Open(ctx context.Context, id string) (media.Record, error)
}

var (
	// ErrNotFound indicates the backend has no record for the requested ID.
	ErrNotFound = errors.New("media not found")
	// ErrUnavailable indicates the backend could not be reached or opened.
	ErrUnavailable = errors.New("media backend unavailable")
)
