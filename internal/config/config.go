// Package config handles bankapp settings: defaults, an optional JSON file
// (-c / -config) and command-line flags, applied in that order.
package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/bankapp/internal/numbers"
)

// Config holds runtime settings shared by the server and the CLI.
//
// Fields:
//   - DatabaseDriver: "sqlite" (embedded, default) or "pgx" (PostgreSQL).
//   - DatabaseDSN: file path for SQLite, connection URL for PostgreSQL.
//   - HTTPAddr: bind address of the JSON API (server only).
//   - LogLevel / LogFormat: slog level name and "text" or "json".
//   - ShutdownTimeout: grace period for in-flight HTTP requests.
//   - NumberAttempts: bound on account/card number generation attempts.
type Config struct {
	DatabaseDriver  string
	DatabaseDSN     string
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
	NumberAttempts  int
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "bank.db"
	c.HTTPAddr = ":8080"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.ShutdownTimeout = 5 * time.Second
	c.NumberAttempts = numbers.DefaultAttempts
}

// LoadConfig builds a Config from defaults, the JSON file and the flags of
// the current process. Later sources take precedence over earlier ones.
// It panics on an unreadable config file or malformed flags.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
