package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/bankapp/internal/flagx"
	"github.com/dmitrijs2005/bankapp/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept both
// "5s" strings and integer nanoseconds.
type JsonConfig struct {
	DatabaseDriver  string         `json:"database_driver"`
	DatabaseDSN     string         `json:"database_dsn"`
	HTTPAddr        string         `json:"http_addr"`
	LogLevel        string         `json:"log_level"`
	LogFormat       string         `json:"log_format"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout"`
	NumberAttempts  int            `json:"number_attempts"`
}

// parseJson overlays the file named by -c/-config onto config. Keys missing
// from the file keep their current values. A missing flag means no file.
func parseJson(config *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.DatabaseDriver, c.DatabaseDriver)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.HTTPAddr, c.HTTPAddr)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogFormat, c.LogFormat)
	if c.ShutdownTimeout.Duration > 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.NumberAttempts > 0 {
		config.NumberAttempts = c.NumberAttempts
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
