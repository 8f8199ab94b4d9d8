package config

import "time"

// Config holds runtime settings for the gophblog CLI.
//
// Fields:
//   - ServerURL: base URL of the blogging HTTP API.
//   - StoragePath: SQLite file holding the persisted session.
//   - RequestTimeout: per-request HTTP timeout.
//   - LogLevel: debug, info, warn or error.
//   - InsecureTLS: skip certificate verification (local dev certificates).
type Config struct {
	ServerURL      string
	StoragePath    string
	RequestTimeout time.Duration
	LogLevel       string
	InsecureTLS    bool
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "https://localhost:7147"
	c.StoragePath = "blog.db"
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "info"
	c.InsecureTLS = false
}

// LoadConfig constructs a Config from defaults, then overlays the optional
// JSON file, GB_* environment variables and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
