package render

import (
	"context"
	"log/slog"
	"strings"

	"marquee/internal/logging"
	"marquee/internal/media"
)

// Subtitle wraps a stage with subtitle track handling: the track is prepared
// before the delegate renders and credits are displayed after it returns.
type Subtitle struct {
	next     Stage
	language string
	logger   *slog.Logger
}

// WithSubtitles returns a wrapper that adds a subtitle stage for language.
// An empty language falls back to "en".
func WithSubtitles(language string, logger *slog.Logger) Wrapper {
	language = strings.TrimSpace(language)
	if language == "" {
		language = "en"
	}
	return func(next Stage) Stage {
		return &Subtitle{
			next:     next,
			language: language,
			logger:   logging.NewComponentLogger(logger, "render.subtitle"),
		}
	}
}

func (s *Subtitle) Render(ctx context.Context, rec media.Record) error {
	s.logger.Debug("preparing subtitle track",
		logging.String(logging.FieldMediaID, rec.ID),
		logging.String("language", s.language))

	if err := s.next.Render(ctx, rec); err != nil {
		return err
	}

	s.logger.Debug("displaying subtitle credits",
		logging.String(logging.FieldMediaID, rec.ID))
	return nil
}

func (s *Subtitle) SupportsAcceleration() bool { return s.next.SupportsAcceleration() }
