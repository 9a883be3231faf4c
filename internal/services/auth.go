// Package services contains the business logic of bankapp. This file
// implements AuthService, which provisions customers (user, account and card
// in one transaction) and checks their credentials.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/bankapp/internal/common"
	"github.com/dmitrijs2005/bankapp/internal/cryptox"
	"github.com/dmitrijs2005/bankapp/internal/dbx"
	"github.com/dmitrijs2005/bankapp/internal/logging"
	"github.com/dmitrijs2005/bankapp/internal/models"
	"github.com/dmitrijs2005/bankapp/internal/numbers"
	"github.com/dmitrijs2005/bankapp/internal/repositories/repomanager"
)

// RegisterRequest carries the registration form fields.
type RegisterRequest struct {
	Login     string
	FirstName string
	LastName  string
	Password  string
}

func (r RegisterRequest) normalized() RegisterRequest {
	return RegisterRequest{
		Login:     strings.TrimSpace(r.Login),
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		Password:  strings.TrimSpace(r.Password),
	}
}

// Validate fails with common.ErrValidation naming the first empty field.
func (r RegisterRequest) Validate() error {
	for _, f := range []struct{ name, value string }{
		{"login", r.Login},
		{"first name", r.FirstName},
		{"last name", r.LastName},
		{"password", r.Password},
	} {
		if f.value == "" {
			return fmt.Errorf("%w: %s is empty", common.ErrValidation, f.name)
		}
	}
	return nil
}

// AuthService provides the credential operations:
// - Bootstrap: create the schema and seed the demo customer
// - Register: provision a user with an account and a card
// - Authenticate: verify a password and return the display profile
type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	numbers     *numbers.Generator
	logger      logging.Logger
	now         func() time.Time
}

// NewAuthService constructs an AuthService over an opened store.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, g *numbers.Generator, l logging.Logger) *AuthService {
	return &AuthService{
		db:          db,
		repomanager: m,
		numbers:     g,
		logger:      l.With("module", "auth_service"),
		now:         time.Now,
	}
}

// Bootstrap runs the schema migrations and makes sure the demo customer
// exists. Calling it again is a no-op.
func (s *AuthService) Bootstrap(ctx context.Context) error {
	if err := s.repomanager.RunMigrations(ctx, s.db); err != nil {
		return fmt.Errorf("schema init: %w", err)
	}
	return s.ensureDemoUser(ctx)
}

func (s *AuthService) ensureDemoUser(ctx context.Context) error {
	exists, err := s.repomanager.Users(s.db).ExistsByLogin(ctx, common.DemoLogin)
	if err != nil {
		return fmt.Errorf("demo lookup: %w", err)
	}
	if exists {
		return nil
	}

	err = s.Register(ctx, RegisterRequest{
		Login:     common.DemoLogin,
		FirstName: common.DemoFirstName,
		LastName:  common.DemoLastName,
		Password:  common.DemoPassword,
	})
	// another process may have seeded it in between
	if err != nil && !errors.Is(err, common.ErrLoginExists) {
		return fmt.Errorf("demo seed: %w", err)
	}

	s.logger.Info(ctx, "demo user ready", "login", common.DemoLogin)
	return nil
}

// Register creates a user together with a freshly numbered account and card
// in a single transaction. Either all three rows are committed or none.
//
// Errors: common.ErrValidation, common.ErrLoginExists,
// common.ErrAccountNumberExists, common.ErrCardNumberExists,
// common.ErrRegistrationFailed, common.ErrGenerationExhausted,
// common.ErrInvalidConfiguration.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) error {
	req = req.normalized()
	if err := req.Validate(); err != nil {
		return err
	}

	hash, err := cryptox.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	err = dbx.WithTx(ctx, s.db, s.repomanager.TxOptions(), func(ctx context.Context, tx dbx.DBTX) error {
		return s.provision(ctx, tx, req, hash)
	})
	if err != nil {
		err = registrationError(err)
		s.logger.Warn(ctx, "registration failed", "login", req.Login, "error", err)
		return err
	}

	s.logger.Info(ctx, "user registered", "login", req.Login)
	return nil
}

func (s *AuthService) provision(ctx context.Context, tx dbx.DBTX, req RegisterRequest, hash string) error {
	usersRepo := s.repomanager.Users(tx)
	accountsRepo := s.repomanager.Accounts(tx)
	cardsRepo := s.repomanager.Cards(tx)

	accountNumber, err := s.numbers.Generate(ctx, numbers.AccountNumber, accountsRepo.ExistsByNumber)
	if err != nil {
		return fmt.Errorf("account number: %w", err)
	}
	cardNumber, err := s.numbers.Generate(ctx, numbers.CardNumber, cardsRepo.ExistsByNumber)
	if err != nil {
		return fmt.Errorf("card number: %w", err)
	}

	user, err := usersRepo.Create(ctx, &models.User{
		Login:        req.Login,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
		RegisteredAt: s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	account, err := accountsRepo.Create(ctx, &models.Account{UserID: user.ID, Number: accountNumber})
	if err != nil {
		return fmt.Errorf("create account: %w", err)
	}

	if _, err := cardsRepo.Create(ctx, &models.Card{AccountID: account.ID, Number: cardNumber}); err != nil {
		return fmt.Errorf("create card: %w", err)
	}
	return nil
}

// registrationError translates a failed provisioning transaction into a
// domain error. Driver errors are flattened to text so they never leak
// through errors.As.
func registrationError(err error) error {
	if errors.Is(err, common.ErrGenerationExhausted) || errors.Is(err, common.ErrInvalidConfiguration) {
		return err
	}

	if uv, ok := dbx.AsUniqueViolation(err); ok {
		switch {
		case uv.Table == "users" && uv.Column == "login":
			return common.ErrLoginExists
		case uv.Table == "accounts" && uv.Column == "account_number":
			return common.ErrAccountNumberExists
		case uv.Table == "cards" && uv.Column == "card_number":
			return common.ErrCardNumberExists
		}
	}

	return fmt.Errorf("%w: %v", common.ErrRegistrationFailed, err)
}

// Authenticate checks login and password and returns the customer's
// display profile with the card number masked.
//
// Errors: common.ErrValidation, common.ErrUserNotFound,
// common.ErrInvalidPassword, common.ErrorInternal.
func (s *AuthService) Authenticate(ctx context.Context, login, password string) (*models.Profile, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, fmt.Errorf("%w: login and password are required", common.ErrValidation)
	}

	var cr *models.Credentials
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		cr, err = s.repomanager.Users(tx).FindCredentials(ctx, login)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Warn(ctx, "authentication failed", "login", login, "reason", "not found")
			return nil, common.ErrUserNotFound
		}
		s.logger.Error(ctx, "credentials lookup failed", "login", login, "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	if !cryptox.VerifyPassword(password, cr.PasswordHash) {
		s.logger.Warn(ctx, "authentication failed", "login", login, "reason", "password")
		return nil, common.ErrInvalidPassword
	}

	s.logger.Info(ctx, "user authenticated", "login", login)
	return &models.Profile{
		FirstName:        cr.FirstName,
		LastName:         cr.LastName,
		AccountNumber:    cr.AccountNumber,
		MaskedCardNumber: common.MaskCardNumber(cr.CardNumber),
	}, nil
}
