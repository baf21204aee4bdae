package config

import "time"

// Config holds runtime settings for the chainmarket CLI.
//
// Fields:
//   - APIBaseURL: base URL of the marketplace HTTP API.
//   - RequestTimeout: per-request deadline for API calls.
//   - StateDBPath: path to the local SQLite session state database.
//   - LogLevel: minimum log level (debug, info, warn, error).
//
// Units: RequestTimeout is a time.Duration (e.g., 10*time.Second).
type Config struct {
	APIBaseURL     string
	StateDBPath    string
	LogLevel       string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080/api"
	c.RequestTimeout = 10 * time.Second
	c.StateDBPath = "chainmarket.db"
	c.LogLevel = "info"
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
