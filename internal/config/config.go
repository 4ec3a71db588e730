// Package config loads runtime settings for the assignment-nudge CLI.
// Values come from three layers: built-in defaults, an optional JSON file
// (-c/-config), and command-line flags. Later layers win.
package config

import "time"

// Config holds runtime settings for the CLI.
//
// Fields:
//   - DatabasePath: location of the local SQLite database file.
//   - ExportDir: directory for CSV/ICS/helper-page artifacts.
//   - CodeTTL: how long a confirmation code stays valid.
//   - SessionTTL: how long a persisted login session stays valid.
type Config struct {
	DatabasePath string
	ExportDir    string
	CodeTTL      time.Duration
	SessionTTL   time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "assignments.db"
	c.ExportDir = "exports"
	c.CodeTTL = 10 * time.Minute
	c.SessionTTL = 30 * 24 * time.Hour
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
