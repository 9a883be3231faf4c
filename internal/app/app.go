// Package app wires configuration, logging, the credential store and the
// auth service, and runs one of the front ends.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/bankapp/internal/cli"
	"github.com/dmitrijs2005/bankapp/internal/config"
	"github.com/dmitrijs2005/bankapp/internal/httpapi"
	"github.com/dmitrijs2005/bankapp/internal/logging"
	"github.com/dmitrijs2005/bankapp/internal/numbers"
	"github.com/dmitrijs2005/bankapp/internal/repositories/repomanager"
	"github.com/dmitrijs2005/bankapp/internal/services"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	authService *services.AuthService
}

// NewApp opens the store and bootstraps it (schema and demo customer).
// Logs go to logOut.
func NewApp(ctx context.Context, c *config.Config, logOut io.Writer) (*App, error) {
	logger, err := logging.New(logOut, c.LogLevel, c.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	db, m, err := repomanager.Open(ctx, c.DatabaseDriver, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	as := services.NewAuthService(db, m, numbers.NewGenerator(nil, c.NumberAttempts), logger)
	if err := as.Bootstrap(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bootstrap error: %w", err)
	}

	logger.Info(ctx, "store ready", "driver", c.DatabaseDriver)

	return &App{config: c, logger: logger, db: db, authService: as}, nil
}

// Close releases the store.
func (app *App) Close() error {
	return app.db.Close()
}

// RunServer serves the HTTP API until SIGINT, SIGTERM, SIGQUIT or ctx ends.
func (app *App) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "Starting app...")

	s := httpapi.NewServer(app.config.HTTPAddr, app.authService, app.logger, app.config.ShutdownTimeout)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "http server failed", "error", err)
		return err
	}
	return nil
}

// RunCLI runs the interactive REPL on stdin and stdout.
func (app *App) RunCLI(ctx context.Context) {
	app.runCLI(ctx, os.Stdin, os.Stdout)
}

func (app *App) runCLI(ctx context.Context, in io.Reader, out io.Writer) {
	cli.NewApp(app.authService, in, out, app.logger).Run(ctx)
}
