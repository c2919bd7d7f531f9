package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"marquee/internal/config"
	"marquee/internal/logging"
	"marquee/internal/media"
)

// Store manages catalog persistence backed by SQLite.
type Store struct {
	db     *sql.DB
	path   string
	lock   *flock.Flock
	logger *slog.Logger
}

const (
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
)

// Open initializes or connects to the catalog database at the configured path.
// A sidecar lock file guards against concurrent writers from other processes.
func Open(cfg *config.Config, logger *slog.Logger) (*Store, error) {
	if cfg == nil {
		return nil, errors.New("catalog requires config")
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	logger = logging.NewComponentLogger(logger, "catalog")

	dbPath := cfg.Paths.CatalogPath
	lock := flock.New(dbPath + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire catalog lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("catalog %s is in use by another marquee process", dbPath)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, lock: lock, logger: logger}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}

	logger.Debug("catalog opened", logging.String("path", dbPath))
	return store, nil
}

// Close closes the database connection and releases the catalog lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var closeErr error
	if s.db != nil {
		closeErr = s.db.Close()
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil && closeErr == nil {
			closeErr = fmt.Errorf("release catalog lock: %w", err)
		}
		_ = os.Remove(s.lock.Path())
	}
	return closeErr
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Add inserts or replaces a record keyed by its ID.
func (s *Store) Add(ctx context.Context, rec media.Record) error {
	if strings.TrimSpace(rec.ID) == "" {
		return media.ErrEmptyID
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	err := s.execWithRetry(ctx,
		`INSERT INTO media_records (id, locator, title, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?)
         ON CONFLICT(id) DO UPDATE SET locator=excluded.locator, title=excluded.title, updated_at=excluded.updated_at`,
		rec.ID, rec.Locator, rec.Title, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	s.logger.Debug("record stored",
		logging.String(logging.FieldMediaID, rec.ID),
		logging.String("locator", rec.Locator))
	return nil
}

// Get returns the record for the given ID. The second return value reports
// whether the record exists.
func (s *Store) Get(ctx context.Context, id string) (media.Record, bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return media.Record{}, false, nil
	}
	var rec media.Record
	err := s.db.QueryRowContext(ctx,
		"SELECT id, locator, title FROM media_records WHERE id = ?", id,
	).Scan(&rec.ID, &rec.Locator, &rec.Title)
	if errors.Is(err, sql.ErrNoRows) {
		return media.Record{}, false, nil
	}
	if err != nil {
		return media.Record{}, false, fmt.Errorf("query record: %w", err)
	}
	return rec, true, nil
}

// List returns all records ordered by ID.
func (s *Store) List(ctx context.Context) ([]media.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, locator, title FROM media_records ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var records []media.Record
	for rows.Next() {
		var rec media.Record
		if err := rows.Scan(&rec.ID, &rec.Locator, &rec.Title); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

// Remove deletes the record with the given ID. Removing an unknown ID is an error.
func (s *Store) Remove(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return media.ErrEmptyID
	}
	res, err := s.db.ExecContext(ctx, "DELETE FROM media_records WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("record %q not found in catalog", id)
	}
	s.logger.Debug("record removed", logging.String(logging.FieldMediaID, id))
	return nil
}

// Count returns the number of records in the catalog.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM media_records").Scan(&count); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return count, nil
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func (s *Store) execWithRetry(ctx context.Context, query string, args ...any) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		_, lastErr = s.db.ExecContext(ctx, query, args...)
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}
