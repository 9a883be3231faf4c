package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/bankapp/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-r string   database driver ("sqlite" or "pgx")
//	-d string   database DSN
//	-a string   HTTP bind address
//	-l string   log level
//	-f string   log format ("text" or "json")
//	-t int      shutdown timeout, seconds
//	-n int      number generation attempts
//
// Arguments of other flag sets (such as -c) are filtered out first.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-r", "-d", "-a", "-l", "-f", "-t", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDriver, "r", config.DatabaseDriver, "database driver (sqlite or pgx)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "address and port to run the HTTP API")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format (text or json)")
	shutdownTimeout := fs.Int("t", int(config.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")
	fs.IntVar(&config.NumberAttempts, "n", config.NumberAttempts, "number generation attempts")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.ShutdownTimeout = time.Duration(*shutdownTimeout) * time.Second
}
