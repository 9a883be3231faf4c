package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bankapp/internal/dbx"
	"github.com/dmitrijs2005/bankapp/internal/models"
	"github.com/google/uuid"
)

type SQLRepository struct {
	db      dbx.DBTX
	dialect dbx.Dialect
}

func NewSQLRepository(db dbx.DBTX, dialect dbx.Dialect) *SQLRepository {
	return &SQLRepository{db: db, dialect: dialect}
}

func (r *SQLRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	if account.ID == "" {
		account.ID = uuid.NewString()
	}

	query := r.dialect.Rebind(`INSERT INTO accounts (id, user_id, account_number) VALUES (?, ?, ?)`)

	if _, err := r.db.ExecContext(ctx, query, account.ID, account.UserID, account.Number); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return account, nil
}

func (r *SQLRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	query := r.dialect.Rebind(`SELECT 1 FROM accounts WHERE account_number = ? LIMIT 1`)

	var one int
	err := r.db.QueryRowContext(ctx, query, number).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return true, nil
}

func (r *SQLRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
