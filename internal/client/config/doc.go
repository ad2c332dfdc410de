// Package config loads runtime configuration for the hrdesk client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are read as YAML; anything else as JSON, which may
//     contain // and /* */ comments and trailing commas.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string   path to the SQLite database file (":memory:" for a throwaway store)
//	-k string   secret used to sign session tokens
//	-t int      session lifetime in hours
//	-l string   log level: debug, info, warn, error
//
// # File schema
//
// Durations use timex.Duration, so they can be strings like "168h" or
// integer nanoseconds:
//
//	{
//	  "database_path": "hrdesk.db",
//	  "secret_key": "change-me",
//	  "session_ttl": "168h",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
package config
