// Package common defines shared constants and sentinel errors used across
// the client layers of gophblog. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Validation errors (local, raised before any network call).
	ErrValidation = errors.New("validation error")

	// Session errors.
	ErrNoSession      = errors.New("no active session")
	ErrCorruptSession = errors.New("corrupt persisted session")
)
