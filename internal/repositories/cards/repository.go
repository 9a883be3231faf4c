// Package cards persists payment cards, one per account.
package cards

import (
	"context"

	"github.com/dmitrijs2005/bankapp/internal/models"
)

type Repository interface {
	Create(ctx context.Context, card *models.Card) (*models.Card, error)
	ExistsByNumber(ctx context.Context, number string) (bool, error)
	Count(ctx context.Context) (int, error)
}
