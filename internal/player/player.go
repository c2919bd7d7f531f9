package player

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"marquee/internal/logging"
	"marquee/internal/render"
	"marquee/internal/source"
)

// Player plays media items by resolving them through a Source and handing the
// result to a render pipeline.
type Player struct {
	source source.Source
	logger *slog.Logger

	mu   sync.RWMutex
	head render.Stage
}

// New constructs a player with initialized dependencies.
func New(src source.Source, head render.Stage, logger *slog.Logger) (*Player, error) {
	if src == nil || head == nil {
		return nil, errors.New("player requires a source and a render pipeline")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Player{
		source: src,
		logger: logging.NewComponentLogger(logger, "player"),
		head:   head,
	}, nil
}

// SetPipeline replaces the render pipeline. Plays already in flight keep the
// pipeline they started with.
func (p *Player) SetPipeline(head render.Stage) error {
	if head == nil {
		return errors.New("render pipeline cannot be nil")
	}
	p.mu.Lock()
	p.head = head
	p.mu.Unlock()
	return nil
}

// Accelerated reports whether the current pipeline can use hardware
// acceleration end to end.
func (p *Player) Accelerated() bool {
	p.mu.RLock()
	head := p.head
	p.mu.RUnlock()
	return head.SupportsAcceleration()
}

// Play resolves a media identifier through the source and renders it through
// the current pipeline. Retrieval failures surface before any stage runs.
func (p *Player) Play(ctx context.Context, id string) error {
	sessionID := uuid.NewString()
	logger := p.logger.With(
		logging.String(logging.FieldSession, sessionID),
		logging.String(logging.FieldMediaID, id),
	)

	p.mu.RLock()
	head := p.head
	p.mu.RUnlock()

	started := time.Now()
	rec, err := p.source.Open(ctx, id)
	if err != nil {
		logger.Error("media retrieval failed", logging.Error(err))
		return fmt.Errorf("open %q: %w", id, err)
	}

	logger.Info("playback starting",
		logging.String("title", rec.DisplayTitle()),
		logging.Bool("accelerated", head.SupportsAcceleration()))

	if err := head.Render(ctx, rec); err != nil {
		logger.Error("playback failed", logging.Error(err))
		return err
	}

	logger.Info("playback finished", logging.Duration("elapsed", time.Since(started)))
	return nil
}
