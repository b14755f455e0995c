// Package errors provides structured error types for the texture build.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the build engine
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: input validation failures
//   - SOURCE_*: vector source resolution failures
//   - GRAPH_*: graph construction bugs (catalogue/programmer errors)
//   - COMPUTE_*/DEPENDENCY_*: node execution failures
//   - OUTPUT_*: sink write failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeSourceNotFound, "no such source: %s", path)
//	if errors.Is(err, errors.ErrCodeSourceNotFound) {
//	    // handle missing source
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeOutputFailed, origErr, "write %s", dest)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the build error taxonomy.
const (
	// Input validation errors.
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidTileWidth Code = "INVALID_TILE_WIDTH"
	ErrCodeInvalidAlpha     Code = "INVALID_ALPHA"
	ErrCodeInvalidSize      Code = "INVALID_SIZE"

	// Resource errors.
	ErrCodeSourceNotFound Code = "SOURCE_NOT_FOUND"
	ErrCodeSourceInvalid  Code = "SOURCE_INVALID"

	// Graph construction errors. These indicate catalogue or programmer
	// bugs (a None spec reaching the builder, a duplicate asset binding)
	// and abort the affected material rather than being retried.
	ErrCodeGraphConstruction Code = "GRAPH_CONSTRUCTION"

	// Node execution errors.
	ErrCodeComputeFailed    Code = "COMPUTE_FAILED"
	ErrCodeDependencyFailed Code = "DEPENDENCY_FAILED"

	// Sink errors.
	ErrCodeOutputFailed Code = "OUTPUT_FAILED"

	// Internal errors.
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
