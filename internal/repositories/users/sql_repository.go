package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bankapp/internal/common"
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

// Create inserts user, assigning a new ID when none is set. A duplicate
// login surfaces as a driver unique-violation error wrapped with %w.
func (r *SQLRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	query := r.dialect.Rebind(
		`INSERT INTO users (id, login, first_name, last_name, password_hash, registered_at)
		 VALUES (?, ?, ?, ?, ?, ?)`)

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Login, user.FirstName, user.LastName, user.PasswordHash, user.RegisteredAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *SQLRepository) ExistsByLogin(ctx context.Context, login string) (bool, error) {
	query := r.dialect.Rebind(`SELECT 1 FROM users WHERE login = ? LIMIT 1`)

	var one int
	err := r.db.QueryRowContext(ctx, query, login).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return true, nil
}

// FindCredentials loads the user with the exact login together with its
// account and card. It returns common.ErrorNotFound when no row matches.
func (r *SQLRepository) FindCredentials(ctx context.Context, login string) (*models.Credentials, error) {
	query := r.dialect.Rebind(
		`SELECT u.id, u.first_name, u.last_name, u.password_hash, a.account_number, c.card_number
		 FROM users u
		 JOIN accounts a ON a.user_id = u.id
		 JOIN cards c ON c.account_id = a.id
		 WHERE u.login = ?`)

	cr := &models.Credentials{}
	err := r.db.QueryRowContext(ctx, query, login).Scan(
		&cr.UserID, &cr.FirstName, &cr.LastName, &cr.PasswordHash, &cr.AccountNumber, &cr.CardNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return cr, nil
}

func (r *SQLRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
