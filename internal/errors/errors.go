package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates a result mismatch between algorithms.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorParse    = 5   // Indicates malformed numeric or polynomial input.
	ExitErrorMath     = 6   // Indicates an arithmetic failure such as division by zero.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ErrDivisionByZero is reported by every integer, rational, field and
// polynomial division or remainder whose divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
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

// ParseError reports a string that is not valid in the notation expected by
// a constructor. Input always holds the complete offending text.
type ParseError struct {
	// Type names what was being parsed ("integer", "polynomial", ...).
	Type string
	// Input is the original text handed to the parser.
	Input string
	// Cause describes the first problem found, if known.
	Cause error
}

// Error returns a formatted message naming the input and the problem.
func (e ParseError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("incorrect %s string %q", e.Type, e.Input)
	}
	return fmt.Sprintf("incorrect %s string %q: %v", e.Type, e.Input, e.Cause)
}

// Unwrap returns the underlying cause.
func (e ParseError) Unwrap() error { return e.Cause }

// NewParseError creates a ParseError for input of the given type.
//
// Parameters:
//   - typ: The name of the type being parsed.
//   - input: The original text.
//   - cause: The underlying problem, may be nil.
//
// Returns:
//   - error: A ParseError value.
func NewParseError(typ, input string, cause error) error {
	return ParseError{Type: typ, Input: input, Cause: cause}
}

// PreconditionError reports a broken operation contract, such as asking for
// the leading monomial of the zero polynomial. These are caller bugs: the
// algebra packages raise them with panic and never return them.
type PreconditionError struct {
	// Op is the operation whose contract was broken.
	Op string
	// Message describes the violated condition.
	Message string
}

// Error returns a formatted message naming the operation.
func (e PreconditionError) Error() string {
	return fmt.Sprintf("%s: precondition violated: %s", e.Op, e.Message)
}

// NewPreconditionError creates a PreconditionError.
func NewPreconditionError(op, message string) error {
	return PreconditionError{Op: op, Message: message}
}

// CalculationError encapsulates a failure of one algorithm run while
// preserving the original cause.
type CalculationError struct {
	// Algorithm names the strategy that failed, if any.
	Algorithm string
	// Cause is the underlying error that triggered this calculation error.
	Cause error
}

// Error returns the error message from the underlying cause.
func (e CalculationError) Error() string {
	if e.Algorithm == "" {
		return e.Cause.Error()
	}
	return fmt.Sprintf("%s: %v", e.Algorithm, e.Cause)
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e CalculationError) Unwrap() error { return e.Cause }

// TimeoutError represents an operation timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
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

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error to the process exit code the application uses
// for it. A nil error maps to ExitSuccess.
func ExitCodeFor(err error) int {
	var (
		parseErr  ParseError
		configErr ConfigError
		valErr    ValidationError
		timeout   TimeoutError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &timeout):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.As(err, &parseErr):
		return ExitErrorParse
	case errors.Is(err, ErrDivisionByZero):
		return ExitErrorMath
	case errors.As(err, &configErr), errors.As(err, &valErr):
		return ExitErrorConfig
	}
	return ExitErrorGeneric
}
