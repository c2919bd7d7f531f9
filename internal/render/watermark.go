package render

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"marquee/internal/logging"
	"marquee/internal/media"
)

var errEmptyWatermark = errors.New("watermark text is empty")

// watermarkPositions lists the placements the stage accepts.
var watermarkPositions = []string{"top-left", "top-right", "bottom-left", "bottom-right", "center"}

// Watermark overlays text at a fixed position while the delegate renders.
type Watermark struct {
	next     Stage
	text     string
	position string
	logger   *slog.Logger
}

// WithWatermark returns a wrapper that overlays text at position. An empty or
// unknown position falls back to "bottom-right".
func WithWatermark(text, position string, logger *slog.Logger) Wrapper {
	position = strings.ToLower(strings.TrimSpace(position))
	if !slices.Contains(watermarkPositions, position) {
		position = "bottom-right"
	}
	return func(next Stage) Stage {
		return &Watermark{
			next:     next,
			text:     text,
			position: position,
			logger:   logging.NewComponentLogger(logger, "render.watermark"),
		}
	}
}

func (w *Watermark) Render(ctx context.Context, rec media.Record) error {
	if strings.TrimSpace(w.text) == "" {
		return StageErr("watermark", "apply overlay", errEmptyWatermark)
	}

	w.logger.Debug("applying watermark",
		logging.String(logging.FieldMediaID, rec.ID),
		logging.String("text", w.text),
		logging.String("position", w.position))

	if err := w.next.Render(ctx, rec); err != nil {
		return err
	}

	w.logger.Debug("watermark processing complete",
		logging.String(logging.FieldMediaID, rec.ID))
	return nil
}

func (w *Watermark) SupportsAcceleration() bool { return w.next.SupportsAcceleration() }
