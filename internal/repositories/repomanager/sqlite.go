package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/bankapp/internal/dbx"
	"github.com/dmitrijs2005/bankapp/internal/filex"
	"github.com/dmitrijs2005/bankapp/internal/migrations"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// SQLiteRepositoryManager serves the embedded single-file store.
type SQLiteRepositoryManager struct {
	sqlManager
}

func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{sqlManager{dialect: dbx.SQLite}}
}

// TxOptions is nil: the SQLite pool holds one connection, so every
// transaction is already serialized.
func (m *SQLiteRepositoryManager) TxOptions() *sql.TxOptions {
	return nil
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return runMigrations(ctx, goose.DialectSQLite3, db, migrations.SQLite())
}

// sqliteDSN appends the pragmas every connection needs: enforced foreign
// keys (for ON DELETE CASCADE) and a busy timeout.
func sqliteDSN(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dsn, sep)
}

// isFilePath reports whether dsn is a plain file path rather than a
// ":memory:" or "file:" URI.
func isFilePath(dsn string) bool {
	return dsn != "" && dsn != ":memory:" && !strings.HasPrefix(dsn, "file:")
}

func openSQLite(dsn string) (*sql.DB, error) {
	if isFilePath(dsn) {
		if _, err := filex.EnsureParentDir(dsn); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", sqliteDSN(dsn))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
