package rcl

import (
	"fmt"
	"strings"
)

// CString is a NUL-terminated byte buffer suitable for passing to the
// native libraries. The terminator is always present, so Ptr never returns
// a pointer into an empty slice.
type CString []byte

// NewCString converts s to the foreign string representation.
// Returns ErrEmbeddedNUL if s contains a NUL byte, since the foreign
// convention would silently truncate it.
func NewCString(s string) (CString, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, ErrEmbeddedNUL
	}
	buf := make(CString, len(s)+1)
	copy(buf, s)
	return buf, nil
}

// MustCString is NewCString for values that are required to be convertible.
// The emission path uses it: by the time a log call is issued its content
// is assumed pre-validated, so an embedded NUL there is a caller contract
// violation and panics rather than being reported.
func MustCString(s string) CString {
	c, err := NewCString(s)
	if err != nil {
		panic(fmt.Errorf("rcl: log argument %q: %w", s, err))
	}
	return c
}

// Ptr returns the address of the first byte for foreign calls.
func (c CString) Ptr() *byte {
	if len(c) == 0 {
		return nil
	}
	return &c[0]
}

// String returns the Go string without the trailing terminator.
func (c CString) String() string {
	if len(c) == 0 {
		return ""
	}
	return string(c[:len(c)-1])
}
