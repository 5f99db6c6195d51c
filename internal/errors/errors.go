package apperrors

import (
	"fmt"
)

// Application exit codes define the standard exit statuses for the command.
// Each universe exits independently; these codes describe the outcome of a
// single universe, not the tree.
const (
	ExitSuccess         = 0 // Indicates successful execution.
	ExitErrorGeneric    = 1 // Indicates a generic error in this universe's continuation.
	ExitErrorEmptyInput = 2 // Indicates a selection over zero items.
	ExitErrorFork       = 3 // Indicates a failed process duplication.
	ExitErrorConfig     = 4 // Indicates a configuration error.
)

// ConfigError represents a user configuration error, such as invalid flags
// or values. It indicates that the command cannot proceed due to incorrect
// user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// The wrapped error can be unwrapped with errors.Unwrap() and checked with
// errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}
