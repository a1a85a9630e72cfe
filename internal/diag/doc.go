// Package diag provides the facade's own operational logging.
//
// This is deliberately separate from the wrapped native subsystem: records
// here describe the facade misbehaving (a swallowed finalize failure, a
// binding that would not load), never application log traffic. Output goes
// to stderr only, quiet by default, with the level controlled by the
// ROSLOG_DIAG environment variable.
package diag
