package config

import (
	"flag"
	"io"
	"time"

	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/flagx"
)

// parseFlags overlays cfg with -d, -k, -t and -l. Other arguments are
// filtered out first so the config-file flag does not trip the parser.
// Invalid values panic.
func parseFlags(cfg *Config, args []string) {
	filtered := flagx.FilterArgs(args, []string{"-d", "-k", "-t", "-l"})

	fs := flag.NewFlagSet("hrdesk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the SQLite database")
	fs.StringVar(&cfg.SecretKey, "k", cfg.SecretKey, "session token signing secret")
	ttl := fs.Int("t", int(cfg.SessionTTL.Hours()), "session lifetime (in hours)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(filtered); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.SessionTTL = time.Duration(*ttl) * time.Hour
		}
	})
}
