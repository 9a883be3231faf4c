package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bankapp/internal/common"
	"github.com/dmitrijs2005/bankapp/internal/services"
)

// getSimpleText and getPassword can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

var errNotLoggedIn = errors.New("not logged in")

// Register asks for login, first name, last name and password and creates
// the customer with an account and a card. The outcome message is printed.
func (a *App) Register(ctx context.Context) error {
	var req services.RegisterRequest
	for _, f := range []struct {
		prompt string
		dst    *string
	}{
		{"Enter login", &req.Login},
		{"Enter first name", &req.FirstName},
		{"Enter last name", &req.LastName},
	} {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	req.Password = string(password)

	err = a.authService.Register(ctx, req)
	fmt.Fprintln(a.out, services.RegisterResult(err).Message)
	if err != nil {
		a.logger.Debug(ctx, "register command failed", "login", req.Login, "error", err)
	}
	return err
}

// Login authenticates the customer and keeps the profile for the session.
// A failed attempt leaves the previous session untouched.
func (a *App) Login(ctx context.Context) error {
	login, err := getSimpleText(a.reader, "Enter login", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	profile, err := a.authService.Authenticate(ctx, login, string(password))
	fmt.Fprintln(a.out, services.AuthResult(profile, err).Message)
	if err != nil {
		a.logger.Debug(ctx, "login command failed", "login", login, "error", err)
		return err
	}

	a.profile = profile
	a.login = login
	return nil
}

// Logout drops the session.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "You are not logged in.")
		return errNotLoggedIn
	}
	a.profile = nil
	a.login = ""
	fmt.Fprintln(a.out, "Logged out. Come back soon.")
	return nil
}
