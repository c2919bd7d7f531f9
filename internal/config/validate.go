package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCache(); err != nil {
		return err
	}
	if err := c.validateSource(); err != nil {
		return err
	}
	if err := c.validateRender(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.Enabled && c.Cache.Capacity < 0 {
		return errors.New("cache.capacity must not be negative")
	}
	return nil
}

func (c *Config) validateSource() error {
	if !slices.Contains(SourceBackends, c.Source.Backend) {
		return fmt.Errorf("source.backend must be one of %v, got %q", SourceBackends, c.Source.Backend)
	}
	if c.Source.Backend == "remote" {
		if c.Source.RemoteBaseURL == "" {
			return errors.New("source.remote_base_url is required when source.backend is \"remote\"")
		}
		if _, err := url.ParseRequestURI(c.Source.RemoteBaseURL); err != nil {
			return fmt.Errorf("source.remote_base_url is not a valid URL: %w", err)
		}
	}
	if c.Source.Backend == "stream" && c.Source.StreamBaseURL == "" {
		return errors.New("source.stream_base_url is required when source.backend is \"stream\"")
	}
	return nil
}

func (c *Config) validateRender() error {
	if !slices.Contains(WatermarkPositions, c.Render.WatermarkPosition) {
		return fmt.Errorf("render.watermark_position must be one of %v, got %q", WatermarkPositions, c.Render.WatermarkPosition)
	}
	for i, band := range c.Render.EqualizerBands {
		if band < -12 || band > 12 {
			return fmt.Errorf("render.equalizer_bands[%d] must be within [-12, 12] dB, got %v", i, band)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}
