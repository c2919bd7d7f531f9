package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, path, exists, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if path == "" {
		t.Error("expected resolved path for missing file")
	}
	if cfg.Source.Backend != "catalog" {
		t.Errorf("default backend = %q, want catalog", cfg.Source.Backend)
	}
	if !cfg.Cache.Enabled || cfg.Cache.Capacity != 16 {
		t.Errorf("default cache = %+v", cfg.Cache)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Errorf("default logging = %+v", cfg.Logging)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
library_dir = "` + filepath.Join(dir, "lib") + `"
log_dir = "` + filepath.Join(dir, "logs") + `"

[cache]
capacity = 4

[source]
backend = "Remote"
remote_base_url = "http://catalog.example/api/"

[render]
watermark_text = "demo build"
watermark_position = "Top-Left"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	if cfg.Source.Backend != "remote" {
		t.Errorf("backend not lowercased: %q", cfg.Source.Backend)
	}
	if cfg.Source.RemoteBaseURL != "http://catalog.example/api" {
		t.Errorf("base url not trimmed: %q", cfg.Source.RemoteBaseURL)
	}
	if cfg.Render.WatermarkPosition != "top-left" {
		t.Errorf("watermark position not normalized: %q", cfg.Render.WatermarkPosition)
	}
	if cfg.Cache.Capacity != 4 {
		t.Errorf("cache capacity = %d, want 4", cfg.Cache.Capacity)
	}
	if !filepath.IsAbs(cfg.Paths.CatalogPath) {
		t.Errorf("catalog path not absolute: %q", cfg.Paths.CatalogPath)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantSub string
	}{
		{"unknown backend", func(c *Config) { c.Source.Backend = "carousel" }, "source.backend"},
		{"remote without url", func(c *Config) { c.Source.Backend = "remote" }, "remote_base_url"},
		{"stream without url", func(c *Config) { c.Source.Backend = "stream" }, "stream_base_url"},
		{"bad watermark position", func(c *Config) { c.Render.WatermarkPosition = "middle" }, "watermark_position"},
		{"equalizer band out of range", func(c *Config) { c.Render.EqualizerBands = []float64{0, 13} }, "equalizer_bands"},
		{"negative cache capacity", func(c *Config) { c.Cache.Capacity = -1 }, "cache.capacity"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			if err := cfg.normalize(); err != nil {
				t.Fatalf("normalize: %v", err)
			}
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	if _, _, exists, err := Load(path); err != nil {
		t.Fatalf("sample config does not load: %v", err)
	} else if !exists {
		t.Fatal("sample config not detected")
	}
}
