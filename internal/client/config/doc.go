// Package config loads runtime configuration for the chainmarket CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-u string   base URL of the marketplace HTTP API
//	-t int      request timeout (seconds)
//	-d string   path to the local session state database
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "10s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://127.0.0.1:8080/api",
//	  "request_timeout": "10s",
//	  "state_db_path": "chainmarket.db",
//	  "log_level": "info"
//	}
//
// Primary API
//
//   - type Config                     — holds APIBaseURL, RequestTimeout, StateDBPath, LogLevel
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
