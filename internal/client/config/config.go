package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the hrdesk client.
//
// Fields:
//   - DatabasePath: SQLite file backing the key-value store.
//   - SecretKey: HMAC secret for session tokens (HS256).
//   - SessionTTL: how long a stored session survives restarts.
//   - LogLevel / LogFormat: slog level and handler ("text" or "json").
type Config struct {
	DatabasePath string
	SecretKey    string
	SessionTTL   time.Duration
	LogLevel     string
	LogFormat    string
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "hrdesk.db"
	c.SecretKey = "hrdesk-demo-secret"
	c.SessionTTL = 7 * 24 * time.Hour
	c.LogLevel = "warn"
	c.LogFormat = "text"
}

// LoadConfig applies defaults, then the optional config file, then flags
// taken from os.Args.
func LoadConfig() *Config {
	return Load(os.Args[1:])
}

// Load is LoadConfig over an explicit argument list.
func Load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
