package common

import "errors"

var (
	// authentication errors
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")

	// registration errors, one per unique column plus the generic fallback
	ErrLoginExists         = errors.New("login already exists")
	ErrAccountNumberExists = errors.New("account number already exists")
	ErrCardNumberExists    = errors.New("card number already exists")
	ErrRegistrationFailed  = errors.New("registration failed")

	// number generation errors
	ErrGenerationExhausted  = errors.New("unique number generation exhausted")
	ErrInvalidConfiguration = errors.New("invalid number format configuration")
)
