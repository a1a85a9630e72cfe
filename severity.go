package roslog

import (
	"fmt"
	"strings"
)

// Severity is an ordered log level. The numeric values are the native
// subsystem's wire codes and are passed through unchanged; there are no
// additional levels on the Go side.
type Severity int32

const (
	SeverityDebug Severity = 10
	SeverityInfo  Severity = 20
	SeverityWarn  Severity = 30
	SeverityError Severity = 40
	SeverityFatal Severity = 50
)

// String returns the native display name for the severity.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "DEBUG"
	case SeverityInfo:
		return "INFO"
	case SeverityWarn:
		return "WARN"
	case SeverityError:
		return "ERROR"
	case SeverityFatal:
		return "FATAL"
	default:
		return fmt.Sprintf("severity(%d)", int32(s))
	}
}

// ParseSeverity converts a level name to a Severity. Matching is
// case-insensitive and accepts "warning" as an alias for warn.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(s) {
	case "debug":
		return SeverityDebug, nil
	case "info":
		return SeverityInfo, nil
	case "warn", "warning":
		return SeverityWarn, nil
	case "error":
		return SeverityError, nil
	case "fatal":
		return SeverityFatal, nil
	}
	return 0, fmt.Errorf("roslog: unknown severity %q", s)
}
