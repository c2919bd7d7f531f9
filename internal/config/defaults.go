package config

const (
	defaultLibraryDir        = "~/library"
	defaultLogDir            = "~/.local/share/marquee/logs"
	defaultCatalogPath       = "~/.local/share/marquee/catalog.db"
	defaultCacheCapacity     = 16
	defaultSourceBackend     = "catalog"
	defaultRemoteTimeout     = 10
	defaultSubtitleLanguage  = "en"
	defaultWatermarkPosition = "bottom-right"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// WatermarkPositions lists the placements the watermark stage accepts.
var WatermarkPositions = []string{"top-left", "top-right", "bottom-left", "bottom-right", "center"}

// SourceBackends lists the retrieval backends the CLI can construct.
var SourceBackends = []string{"catalog", "local", "remote", "stream"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LibraryDir:  defaultLibraryDir,
			LogDir:      defaultLogDir,
			CatalogPath: defaultCatalogPath,
		},
		Cache: Cache{
			Enabled:  true,
			Capacity: defaultCacheCapacity,
		},
		Source: Source{
			Backend:       defaultSourceBackend,
			RemoteTimeout: defaultRemoteTimeout,
		},
		Render: Render{
			SubtitleLanguage:  defaultSubtitleLanguage,
			WatermarkPosition: defaultWatermarkPosition,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
