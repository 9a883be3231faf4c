package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/bankapp/internal/common"
	"github.com/dmitrijs2005/bankapp/internal/logging"
	"github.com/dmitrijs2005/bankapp/internal/models"
	"github.com/dmitrijs2005/bankapp/internal/numbers"
	"github.com/dmitrijs2005/bankapp/internal/repositories/repomanager"
	"github.com/dmitrijs2005/bankapp/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBank(t *testing.T) *services.AuthService {
	t.Helper()
	ctx := context.Background()
	db, m, err := repomanager.Open(ctx, repomanager.DriverSQLite, filepath.Join(t.TempDir(), "bank.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := services.NewAuthService(db, m, numbers.NewGenerator(nil, 0), logging.Discard())
	require.NoError(t, s.Bootstrap(ctx))
	return s
}

func TestApp_Session(t *testing.T) {
	stubTerminal(t, false, nil)
	capturePrints(t)

	input := strings.Join([]string{
		"profile",
		"logout",
		"login", "demo", "wrong",
		"login", "ghost", "x",
		"login", "demo", "demo123",
		"profile",
		"transfer",
		"support",
		"logout",
		"register", "alice", "Alice", "Smith", "pw",
		"register", "alice", "A", "B", "pw",
		"register", "", "", "", "",
		"login", "alice", "pw",
		"exit",
	}, "\n")

	var out bytes.Buffer
	app := NewApp(newBank(t), strings.NewReader(input), &out, logging.Discard())
	app.Run(context.Background())

	got := out.String()
	for _, want := range []string{
		"Demo account: demo / demo123",
		"Log in to see your profile.",
		"You are not logged in.",
		"Wrong password.",
		"No user with this login was found.",
		"Welcome, Иван Иванов\nAccount: 40817",
		services.TransferMessage,
		"+7 (495) 989-50-50 helpline.",
		"Logged out.",
		"User registered. A personal account and a card were created.",
		"Login already exists.",
		"Fill in all fields.",
		"Welcome, Alice Smith",
	} {
		assert.Contains(t, got, want)
	}

	assert.True(t, app.isLoggedIn())
	assert.Equal(t, "(alice) ", app.getStatus())
	assert.Regexp(t, `^\*\*\*\* \*\*\*\* \*\*\*\* \d{4}$`, app.profile.MaskedCardNumber)
}

type stubAuth struct {
	profile *models.Profile
	err     error
	req     services.RegisterRequest
	login   string
	pw      string
}

func (s *stubAuth) Register(_ context.Context, req services.RegisterRequest) error {
	s.req = req
	return s.err
}

func (s *stubAuth) Authenticate(_ context.Context, login, password string) (*models.Profile, error) {
	s.login, s.pw = login, password
	return s.profile, s.err
}

func TestApp_FailedLoginKeepsSession(t *testing.T) {
	stubTerminal(t, false, nil)

	p := &models.Profile{FirstName: "A", LastName: "B", AccountNumber: "40817000", MaskedCardNumber: "**** **** **** 0000"}
	auth := &stubAuth{profile: p}
	var out bytes.Buffer
	app := NewApp(auth, strings.NewReader("bob\npw\nbob\nbad\n"), &out, logging.Discard())

	require.NoError(t, app.Login(context.Background()))
	assert.Equal(t, "bob", auth.login)
	assert.Equal(t, "pw", auth.pw)

	auth.profile, auth.err = nil, common.ErrInvalidPassword
	err := app.Login(context.Background())
	require.ErrorIs(t, err, common.ErrInvalidPassword)
	assert.Same(t, p, app.profile)
}

func TestApp_RegisterPassesFields(t *testing.T) {
	stubTerminal(t, false, nil)

	auth := &stubAuth{err: errors.New("boom")}
	var out bytes.Buffer
	app := NewApp(auth, strings.NewReader("carol\nCarol\nKing\nsecret\n"), &out, logging.Discard())

	err := app.Register(context.Background())
	require.Error(t, err)
	assert.Equal(t, services.RegisterRequest{Login: "carol", FirstName: "Carol", LastName: "King", Password: "secret"}, auth.req)
	assert.Contains(t, out.String(), "Internal error, please try again later.")
}

func TestApp_InputErrorsAbortCommands(t *testing.T) {
	stubTerminal(t, false, nil)

	auth := &stubAuth{}
	var out bytes.Buffer
	app := NewApp(auth, strings.NewReader(""), &out, logging.Discard())

	require.Error(t, app.Login(context.Background()))
	require.Error(t, app.Register(context.Background()))
	assert.Empty(t, auth.login)
	require.Error(t, app.Info(context.Background(), "nope"))
	require.ErrorIs(t, app.Transfer(context.Background()), errNotLoggedIn)
}
