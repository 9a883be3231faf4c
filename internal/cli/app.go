package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/bankapp/internal/common"
	"github.com/dmitrijs2005/bankapp/internal/logging"
	"github.com/dmitrijs2005/bankapp/internal/models"
	"github.com/dmitrijs2005/bankapp/internal/services"
)

// AuthService is the part of services.AuthService the CLI uses.
type AuthService interface {
	Register(ctx context.Context, req services.RegisterRequest) error
	Authenticate(ctx context.Context, login, password string) (*models.Profile, error)
}

type App struct {
	authService AuthService
	logger      logging.Logger
	reader      *bufio.Reader
	out         io.Writer
	profile     *models.Profile
	login       string
}

func NewApp(as AuthService, in io.Reader, out io.Writer, l logging.Logger) *App {
	return &App{
		authService: as,
		logger:      l.With("module", "cli"),
		reader:      bufio.NewReader(in),
		out:         out,
	}
}

// Run prints the greeting and serves commands until exit or end of input.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Bank app CLI (type 'help' for commands)")
	fmt.Fprintf(a.out, "Demo account: %s / %s\n", common.DemoLogin, common.DemoPassword)
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.profile != nil
}

func (a *App) getStatus() string {
	if a.login == "" {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.login)
}
