// Package apperrors defines the CLI-facing error types and exit codes,
// allowing a clear distinction between error classes (configuration,
// selection, duplication) when a universe terminates.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with
// %w. Wrapped errors support errors.Is() and errors.As(). The library's own
// error types live in the root multiverse package so importers can inspect
// them; this package only maps them onto process exit statuses.
package apperrors
