package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/bankapp/internal/dbx"
	"github.com/dmitrijs2005/bankapp/internal/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager serves a PostgreSQL store reached through pgx.
type PostgresRepositoryManager struct {
	sqlManager
}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{sqlManager{dialect: dbx.Postgres}}
}

// TxOptions runs registrations serializable so that check-then-insert of a
// generated number cannot interleave with a concurrent insert.
func (m *PostgresRepositoryManager) TxOptions() *sql.TxOptions {
	return &sql.TxOptions{Isolation: sql.LevelSerializable}
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, goose.DialectPostgres, db, migrations.Postgres())
}

func openPostgres(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}
