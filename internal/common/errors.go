// Package common defines sentinel errors shared by the storage, service and
// CLI layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrStorage  = errors.New("storage error")
	ErrNotFound = errors.New("not found")

	// Input errors. Concrete validation failures are *models.ValidationError
	// values that unwrap to ErrValidation.
	ErrValidation = errors.New("validation error")

	// Directory errors.
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
