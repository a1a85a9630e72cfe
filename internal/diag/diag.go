package diag

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// EnvLevel is the environment variable controlling the default logger's
// level. Unset or unrecognised values mean warn: diagnostics speak only
// when something is wrong.
const EnvLevel = "ROSLOG_DIAG"

// New creates a diagnostics logger writing text records to w at the given
// level. Teardown paths hold the facade's state lock while logging, so the
// handler must not block on anything slower than the writer itself.
func New(level string, w io.Writer) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	return slog.New(handler).With("component", "roslog")
}

// parseLevel converts a string level to slog.Level.
//
// Supported levels: debug, info, warn, error.
// Defaults to warn if unrecognised.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

var (
	defaultOnce   sync.Once
	defaultLogger *slog.Logger
)

// Default returns the process-wide diagnostics logger, writing to stderr
// at the level named by ROSLOG_DIAG.
func Default() *slog.Logger {
	defaultOnce.Do(func() {
		defaultLogger = New(os.Getenv(EnvLevel), os.Stderr)
	})
	return defaultLogger
}
