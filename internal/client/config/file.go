package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/flagx"
	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/timex"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the config file. Zero values leave the
// corresponding Config field untouched.
type FileConfig struct {
	DatabasePath string         `json:"database_path" yaml:"database_path"`
	SecretKey    string         `json:"secret_key" yaml:"secret_key"`
	SessionTTL   timex.Duration `json:"session_ttl" yaml:"session_ttl"`
	LogLevel     string         `json:"log_level" yaml:"log_level"`
	LogFormat    string         `json:"log_format" yaml:"log_format"`
}

// parseFile overlays cfg with the file named by -c/-config. It panics when
// the file cannot be read or decoded.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(jsonc.ToJSON(data), &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc FileConfig) apply(cfg *Config) {
	if fc.DatabasePath != "" {
		cfg.DatabasePath = fc.DatabasePath
	}
	if fc.SecretKey != "" {
		cfg.SecretKey = fc.SecretKey
	}
	if fc.SessionTTL.Duration > 0 {
		cfg.SessionTTL = fc.SessionTTL.Duration
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.LogFormat != "" {
		cfg.LogFormat = fc.LogFormat
	}
}
