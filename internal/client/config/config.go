package config

// Config holds runtime settings for the storefront CLI.
//
// Fields:
//   - ServerBaseURL: base address of the backend, e.g. "http://localhost:8000".
//     All API paths are resolved under {base}/api.
//   - DatabasePath: path of the local SQLite file holding the persisted
//     credential.
//   - Debug: enables verbose logging.
type Config struct {
	ServerBaseURL string
	DatabasePath  string
	Debug         bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000"
	c.DatabasePath = "storefront.db"
	c.Debug = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
