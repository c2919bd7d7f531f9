package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"marquee/internal/logging"
	"marquee/internal/media"
)

// Remote resolves identifiers through an HTTP catalog API. The endpoint is
// expected to serve GET {base}/media/{id} with a JSON body of id, locator,
// and title fields.
type Remote struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewRemote builds a remote backend for the given base URL.
func NewRemote(baseURL string, timeout time.Duration, logger *slog.Logger) *Remote {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Remote{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logging.NewComponentLogger(logger, "source.remote"),
	}
}

type remoteRecord struct {
	ID      string `json:"id"`
	Locator string `json:"locator"`
	Title   string `json:"title"`
}

// Open fetches the record for id from the remote API.
func (r *Remote) Open(ctx context.Context, id string) (media.Record, error) {
	endpoint := r.baseURL + "/media/" + url.PathEscape(id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return media.Record{}, fmt.Errorf("%w: build request: %w", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return media.Record{}, fmt.Errorf("%w: %s: %w", ErrUnavailable, endpoint, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return media.Record{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	default:
		return media.Record{}, fmt.Errorf("%w: %s returned status %d", ErrUnavailable, endpoint, resp.StatusCode)
	}

	var payload remoteRecord
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return media.Record{}, fmt.Errorf("%w: decode response: %w", ErrUnavailable, err)
	}
	if payload.ID == "" {
		payload.ID = id
	}

	r.logger.Debug("resolved remote media",
		logging.String(logging.FieldMediaID, payload.ID),
		logging.String("locator", payload.Locator))
	return media.NewRecord(payload.ID, payload.Locator, payload.Title)
}
