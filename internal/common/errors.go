// Package common defines shared constants and sentinel errors used across
// the store, service and front-end layers of bankapp. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Validation errors: empty or malformed input fields.
	ErrValidation = errors.New("validation error")
)
