// Package apperr holds the sentinel errors shared across layers.
package apperr

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	// ErrCancelled signals a user-requested cancellation. The top level
	// treats it as a clean exit, not a failure.
	ErrCancelled = errors.New("cancelled by user")
)
