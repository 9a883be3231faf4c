// Package models defines the records persisted by the credential store and
// the payloads returned to front ends.
package models

import "time"

// User is a registered bank customer. PasswordHash holds a cryptox record,
// never the plaintext password.
type User struct {
	ID           string
	Login        string
	FirstName    string
	LastName     string
	PasswordHash string
	RegisteredAt time.Time
}

// Account is the single personal account owned by a user.
type Account struct {
	ID     string
	UserID string
	Number string
}

// Card is the single card issued on an account.
type Card struct {
	ID        string
	AccountID string
	Number    string
}

// Credentials is a user joined with its account and card, as needed to
// check a password and build a Profile.
type Credentials struct {
	UserID        string
	FirstName     string
	LastName      string
	PasswordHash  string
	AccountNumber string
	CardNumber    string
}

// Profile is the display payload of a successful authentication.
type Profile struct {
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	AccountNumber    string `json:"account_number"`
	MaskedCardNumber string `json:"card_number"`
}

// FullName returns "<first> <last>".
func (p Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}
