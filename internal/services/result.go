package services

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bankapp/internal/common"
	"github.com/dmitrijs2005/bankapp/internal/models"
)

// Result is what front ends render: a success flag, a user facing message
// and, after authentication, the profile.
type Result struct {
	OK      bool            `json:"ok"`
	Message string          `json:"message"`
	Profile *models.Profile `json:"profile,omitempty"`
}

const registeredMessage = "User registered. A personal account and a card were created."

var messages = []struct {
	err error
	msg string
}{
	{common.ErrValidation, "Fill in all fields."},
	{common.ErrUserNotFound, "No user with this login was found."},
	{common.ErrInvalidPassword, "Wrong password."},
	{common.ErrLoginExists, "Login already exists."},
	{common.ErrAccountNumberExists, "Account number already exists."},
	{common.ErrCardNumberExists, "Card number already exists."},
	{common.ErrRegistrationFailed, "Registration failed: database error."},
}

// Message returns the user facing text for err. Errors without a specific
// text, including generation and configuration failures, get a generic one.
func Message(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return "Internal error, please try again later."
}

// Welcome formats the greeting shown after a successful login.
func Welcome(p *models.Profile) string {
	return fmt.Sprintf("Welcome, %s\nAccount: %s\nCard: %s", p.FullName(), p.AccountNumber, p.MaskedCardNumber)
}

// AuthResult wraps the outcome of Authenticate.
func AuthResult(p *models.Profile, err error) Result {
	if err != nil {
		return Result{Message: Message(err)}
	}
	return Result{OK: true, Message: Welcome(p), Profile: p}
}

// RegisterResult wraps the outcome of Register.
func RegisterResult(err error) Result {
	if err != nil {
		return Result{Message: Message(err)}
	}
	return Result{OK: true, Message: registeredMessage}
}
