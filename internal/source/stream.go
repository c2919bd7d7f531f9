package source

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"marquee/internal/logging"
	"marquee/internal/media"
)

// Streaming synthesizes records whose locator points at a streaming endpoint.
// No connection is made here; the locator is handed to whatever renders it.
type Streaming struct {
	baseURL string
	logger  *slog.Logger
}

// NewStreaming builds a streaming backend for the given base URL.
func NewStreaming(baseURL string, logger *slog.Logger) *Streaming {
	return &Streaming{
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logging.NewComponentLogger(logger, "source.stream"),
	}
}

// Open builds a stream locator for id.
func (s *Streaming) Open(ctx context.Context, id string) (media.Record, error) {
	if err := ctx.Err(); err != nil {
		return media.Record{}, err
	}
	if strings.TrimSpace(id) == "" {
		return media.Record{}, fmt.Errorf("%w: empty id", ErrNotFound)
	}
	if s.baseURL == "" {
		return media.Record{}, fmt.Errorf("%w: stream base URL not configured", ErrUnavailable)
	}

	locator := s.baseURL + "/stream/" + url.PathEscape(id)
	s.logger.Debug("resolved stream media",
		logging.String(logging.FieldMediaID, id),
		logging.String("locator", locator))
	return media.NewRecord(id, locator, "")
}
