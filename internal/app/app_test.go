package app

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/bankapp/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	c := &config.Config{}
	c.LoadDefaults()
	c.DatabaseDSN = filepath.Join(t.TempDir(), "bank.db")
	c.HTTPAddr = "127.0.0.1:0"
	c.ShutdownTimeout = time.Second
	return c
}

func TestNewApp(t *testing.T) {
	var logs bytes.Buffer
	app, err := NewApp(context.Background(), testConfig(t), &logs)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	assert.Contains(t, logs.String(), "store ready")
	assert.Contains(t, logs.String(), "demo user ready")
}

func TestNewApp_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"bad log level", func(c *config.Config) { c.LogLevel = "loud" }, "logger init error"},
		{"bad log format", func(c *config.Config) { c.LogFormat = "xml" }, "logger init error"},
		{"unknown driver", func(c *config.Config) { c.DatabaseDriver = "oracle" }, "db init error"},
		{"invalid attempts", func(c *config.Config) { c.NumberAttempts = -1 }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testConfig(t)
			tt.mutate(c)
			app, err := NewApp(context.Background(), c, io.Discard)
			if tt.want == "" {
				// a non-positive bound falls back to the default
				require.NoError(t, err)
				_ = app.Close()
				return
			}
			require.ErrorContains(t, err, tt.want)
		})
	}
}

func TestApp_RunServerStopsWithContext(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig(t), io.Discard)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	require.NoError(t, app.RunServer(ctx))
}

func TestApp_RunCLI(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig(t), io.Discard)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	var out bytes.Buffer
	app.runCLI(context.Background(), strings.NewReader("support\nexit\n"), &out)
	assert.Contains(t, out.String(), "helpline")
}
