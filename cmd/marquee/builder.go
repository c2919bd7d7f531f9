package main

import (
	"fmt"
	"log/slog"
	"time"

	"marquee/internal/catalog"
	"marquee/internal/config"
	"marquee/internal/player"
	"marquee/internal/render"
	"marquee/internal/source"
)

// withPlayer builds a player from the loaded configuration, runs fn against
// it, and releases backend resources afterwards.
func (c *commandContext) withPlayer(fn func(*player.Player) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return err
	}

	src, closeSource, err := buildSource(cfg, logger)
	if err != nil {
		return err
	}
	defer closeSource()

	p, err := player.New(src, buildPipeline(cfg, logger), logger)
	if err != nil {
		return err
	}
	return fn(p)
}

// withCatalog opens the catalog store, runs fn, and closes it afterwards.
func (c *commandContext) withCatalog(fn func(*catalog.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return err
	}

	store, err := catalog.Open(cfg, logger)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer store.Close()
	return fn(store)
}

// buildSource constructs the configured retrieval backend, wrapped in a
// bounded cache when caching is enabled. The returned closer releases backend
// resources and is safe to call even for backends that hold none.
func buildSource(cfg *config.Config, logger *slog.Logger) (source.Source, func() error, error) {
	var (
		backend source.Source
		closer  = func() error { return nil }
	)

	switch cfg.Source.Backend {
	case "catalog":
		store, err := catalog.Open(cfg, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("open catalog: %w", err)
		}
		backend = source.NewCatalog(store)
		closer = store.Close
	case "local":
		backend = source.NewLocal(cfg.Paths.LibraryDir, logger)
	case "remote":
		timeout := time.Duration(cfg.Source.RemoteTimeout) * time.Second
		backend = source.NewRemote(cfg.Source.RemoteBaseURL, timeout, logger)
	case "stream":
		backend = source.NewStreaming(cfg.Source.StreamBaseURL, logger)
	default:
		return nil, nil, fmt.Errorf("unknown source backend %q", cfg.Source.Backend)
	}

	if cfg.Cache.Enabled {
		backend = source.NewCaching(backend, cfg.Cache.Capacity, logger)
	}
	return backend, closer, nil
}

// buildPipeline assembles the render pipeline from configuration. Wrappers
// are listed outermost first: subtitles bracket everything, the watermark
// sits inside them, and the equalizer runs closest to the terminal renderer.
func buildPipeline(cfg *config.Config, logger *slog.Logger) render.Stage {
	var terminal render.Stage
	if cfg.Render.Accelerated {
		terminal = render.NewHardware(logger)
	} else {
		terminal = render.NewSoftware(logger)
	}

	var wrappers []render.Wrapper
	if cfg.Render.Subtitles {
		wrappers = append(wrappers, render.WithSubtitles(cfg.Render.SubtitleLanguage, logger))
	}
	if cfg.Render.WatermarkText != "" {
		wrappers = append(wrappers, render.WithWatermark(cfg.Render.WatermarkText, cfg.Render.WatermarkPosition, logger))
	}
	if cfg.Render.Equalizer {
		wrappers = append(wrappers, render.WithEqualizer(cfg.Render.EqualizerBands, logger))
	}

	return render.Chain(terminal, wrappers...)
}
