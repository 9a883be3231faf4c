package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

// Supported values of the database driver setting.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// gooseUp is a seam for testing migration failures.
var gooseUp = func(ctx context.Context, p *goose.Provider) error {
	_, err := p.Up(ctx)
	return err
}

func runMigrations(ctx context.Context, dialect goose.Dialect, db *sql.DB, fsys fs.FS) error {
	p, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	if err := gooseUp(ctx, p); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Open connects to the store selected by driver and returns the pool with
// the matching RepositoryManager. Migrations are not run here.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, RepositoryManager, error) {
	var (
		db  *sql.DB
		m   RepositoryManager
		err error
	)

	switch driver {
	case DriverSQLite, "":
		db, err = openSQLite(dsn)
		m = NewSQLiteRepositoryManager()
	case DriverPostgres, "postgres":
		db, err = openPostgres(dsn)
		m = NewPostgresRepositoryManager()
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("db open error: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("db ping error: %w", err)
	}

	return db, m, nil
}
