package render

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"marquee/internal/logging"
	"marquee/internal/media"
)

// Equalizer applies per-band gain around the delegate's render. Band levels
// are adjustable at runtime; the stage guards its own mutable state so a
// chain can be shared across concurrent render calls.
type Equalizer struct {
	next   Stage
	logger *slog.Logger

	mu    sync.RWMutex
	bands []float64
}

// WithEqualizer returns a wrapper that applies the given per-band gains (dB).
// Levels outside [-12, 12] are rejected by SetBands; the initial bands are
// clamped into range instead so construction cannot fail.
func WithEqualizer(bands []float64, logger *slog.Logger) Wrapper {
	clamped := make([]float64, len(bands))
	for i, band := range bands {
		clamped[i] = min(12, max(-12, band))
	}
	return func(next Stage) Stage {
		return &Equalizer{
			next:   next,
			bands:  clamped,
			logger: logging.NewComponentLogger(logger, "render.equalizer"),
		}
	}
}

// SetBands replaces the per-band gains. Each level must be within [-12, 12] dB.
func (e *Equalizer) SetBands(bands []float64) error {
	for i, band := range bands {
		if band < -12 || band > 12 {
			return StageErr("equalizer", "set bands",
				fmt.Errorf("band %d gain %v outside [-12, 12] dB", i, band))
		}
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.bands = append([]float64(nil), bands...)
	return nil
}

// Bands returns a copy of the current per-band gains.
func (e *Equalizer) Bands() []float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]float64(nil), e.bands...)
}

func (e *Equalizer) Render(ctx context.Context, rec media.Record) error {
	e.mu.RLock()
	bands := append([]float64(nil), e.bands...)
	e.mu.RUnlock()

	e.logger.Debug("applying equalizer levels",
		logging.String(logging.FieldMediaID, rec.ID),
		logging.Any("bands", bands))

	if err := e.next.Render(ctx, rec); err != nil {
		return err
	}

	e.logger.Debug("restoring flat equalizer response",
		logging.String(logging.FieldMediaID, rec.ID))
	return nil
}

func (e *Equalizer) SupportsAcceleration() bool { return e.next.SupportsAcceleration() }
