// Package repomanager vends the credential-store repositories for a backend
// and owns its schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/bankapp/internal/dbx"
	"github.com/dmitrijs2005/bankapp/internal/repositories/accounts"
	"github.com/dmitrijs2005/bankapp/internal/repositories/cards"
	"github.com/dmitrijs2005/bankapp/internal/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	// TxOptions returns the options registration transactions run with.
	TxOptions() *sql.TxOptions
	Users(db dbx.DBTX) users.Repository
	Accounts(db dbx.DBTX) accounts.Repository
	Cards(db dbx.DBTX) cards.Repository
}

// sqlManager is shared by the backends; they differ in dialect, migrations
// and transaction options.
type sqlManager struct {
	dialect dbx.Dialect
}

func (m *sqlManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLRepository(db, m.dialect)
}

func (m *sqlManager) Accounts(db dbx.DBTX) accounts.Repository {
	return accounts.NewSQLRepository(db, m.dialect)
}

func (m *sqlManager) Cards(db dbx.DBTX) cards.Repository {
	return cards.NewSQLRepository(db, m.dialect)
}
