// Package apperr defines the sentinel errors shared across layers.
package apperr

import "errors"

var (
	// ErrNotFound is returned when a session or catalog entry does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation is returned when request input fails a business rule.
	ErrValidation = errors.New("validation error")
)
