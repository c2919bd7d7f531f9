package render

import (
	"context"
	"log/slog"

	"marquee/internal/logging"
	"marquee/internal/media"
)

// Software is the terminal renderer that decodes on the CPU. It is always
// available and reports no acceleration.
type Software struct {
	logger *slog.Logger
}

// NewSoftware builds the software terminal renderer.
func NewSoftware(logger *slog.Logger) *Software {
	return &Software{logger: logging.NewComponentLogger(logger, "render.software")}
}

func (s *Software) Render(ctx context.Context, rec media.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.logger.Info("rendering via software path",
		logging.String(logging.FieldMediaID, rec.ID),
		logging.String("locator", rec.Locator))
	return nil
}

func (s *Software) SupportsAcceleration() bool { return false }

// Hardware is the terminal renderer backed by a GPU decode path.
type Hardware struct {
	logger *slog.Logger
}

// NewHardware builds the hardware terminal renderer.
func NewHardware(logger *slog.Logger) *Hardware {
	return &Hardware{logger: logging.NewComponentLogger(logger, "render.hardware")}
}

func (h *Hardware) Render(ctx context.Context, rec media.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	h.logger.Info("rendering via hardware path",
		logging.String(logging.FieldMediaID, rec.ID),
		logging.String("locator", rec.Locator))
	return nil
}

func (h *Hardware) SupportsAcceleration() bool { return true }
