// Package accounts persists personal accounts, one per user.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/bankapp/internal/models"
)

type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	ExistsByNumber(ctx context.Context, number string) (bool, error)
	Count(ctx context.Context) (int, error)
}
