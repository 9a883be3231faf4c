package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bankapp/internal/services"
)

// Profile prints the logged in customer's account and masked card.
func (a *App) Profile(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in to see your profile.")
		return errNotLoggedIn
	}
	fmt.Fprintln(a.out, services.Welcome(a.profile))
	return nil
}

// Transfer is a stub: it reports success and moves nothing.
func (a *App) Transfer(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Log in to make transfers.")
		return errNotLoggedIn
	}
	fmt.Fprintln(a.out, services.TransferResult().Message)
	return nil
}

// Info prints the fixed text of an informational menu item.
func (a *App) Info(ctx context.Context, topic string) error {
	text, ok := services.Info(topic)
	if !ok {
		return fmt.Errorf("unknown topic %q", topic)
	}
	fmt.Fprintln(a.out, text)
	return nil
}
