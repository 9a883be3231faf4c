package cards

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

func (r *SQLRepository) Create(ctx context.Context, card *models.Card) (*models.Card, error) {
	if card.ID == "" {
		card.ID = uuid.NewString()
	}

	query := r.dialect.Rebind(`INSERT INTO cards (id, account_id, card_number) VALUES (?, ?, ?)`)

	if _, err := r.db.ExecContext(ctx, query, card.ID, card.AccountID, card.Number); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return card, nil
}

func (r *SQLRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	query := r.dialect.Rebind(`SELECT 1 FROM cards WHERE card_number = ? LIMIT 1`)

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
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cards`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
