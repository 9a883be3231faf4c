// Package users persists bank customers and resolves their credentials.
package users

import (
	"context"

	"github.com/dmitrijs2005/bankapp/internal/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	ExistsByLogin(ctx context.Context, login string) (bool, error)
	FindCredentials(ctx context.Context, login string) (*models.Credentials, error)
	Count(ctx context.Context) (int, error)
}
