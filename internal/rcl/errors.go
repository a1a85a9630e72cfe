package rcl

import (
	"errors"
	"fmt"
)

// Errors for foreign-boundary failures.
// Use errors.Is() / errors.As() to check for these in calling code.
var (
	// ErrEmbeddedNUL is returned when a string cannot be represented as a
	// NUL-terminated foreign string.
	ErrEmbeddedNUL = errors.New("rcl: string contains embedded NUL byte")

	// ErrUnsupportedPlatform is returned by Load on hosts where the
	// dlopen-based binding is not available.
	ErrUnsupportedPlatform = errors.New("rcl: native logging binding requires linux or darwin on amd64 or arm64")
)

// ForeignError reports a non-zero return code from a native call.
type ForeignError struct {
	// Call is the native function that failed.
	Call string

	// Ret is the rcl_ret_t / rcutils_ret_t value it returned.
	Ret int32
}

func (e *ForeignError) Error() string {
	return fmt.Sprintf("rcl: %s returned %d", e.Call, e.Ret)
}
