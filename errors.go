package roslog

import "errors"

// Errors reported by lifecycle operations.
// Use errors.Is() to check for these in calling code.
var (
	// ErrNilContext is returned by Init when no context is supplied.
	ErrNilContext = errors.New("roslog: nil context")

	// ErrContextClosed is returned when initialization runs against a
	// context that has already been closed.
	ErrContextClosed = errors.New("roslog: context closed")
)
