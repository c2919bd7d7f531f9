package source

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"marquee/internal/logging"
	"marquee/internal/media"
)

// Local resolves identifiers against a library directory. An identifier
// matches a regular file whose name without extension equals the ID.
type Local struct {
	dir    string
	logger *slog.Logger
}

// NewLocal builds a local library backend rooted at dir.
func NewLocal(dir string, logger *slog.Logger) *Local {
	return &Local{
		dir:    dir,
		logger: logging.NewComponentLogger(logger, "source.local"),
	}
}

// Open scans the library directory for a file matching id.
func (l *Local) Open(ctx context.Context, id string) (media.Record, error) {
	if err := ctx.Err(); err != nil {
		return media.Record{}, err
	}

	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return media.Record{}, fmt.Errorf("%w: read library %s: %w", ErrUnavailable, l.dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.TrimSuffix(name, filepath.Ext(name)) != id {
			continue
		}
		locator := filepath.Join(l.dir, name)
		l.logger.Debug("resolved local media",
			logging.String(logging.FieldMediaID, id),
			logging.String("locator", locator))
		return media.NewRecord(id, locator, "")
	}

	return media.Record{}, fmt.Errorf("%w: %q in library %s", ErrNotFound, id, l.dir)
}
