// Package apperrors defines structured error types shared by the algebra
// packages and the command-line application, keeping parse failures,
// division by zero, contract violations and configuration problems
// distinguishable while carrying the underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// All error types carrying a cause implement Unwrap() to support errors.Is()
// and errors.As().
package apperrors
