// Package errors provides structured error types for mikado.
//
// Every failure that reaches the user carries a machine-readable [Code] so the
// CLI can tell outline authoring mistakes apart from I/O and rendering
// failures:
//   - MALFORMED_INDENTATION, CONFLICTING_DUPLICATE: the outline itself is wrong
//   - FILE_NOT_FOUND, IO_ERROR: the outline could not be read or written
//   - RENDER_FAILED: Graphviz rejected or failed to lay out the graph
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMalformedIndentation, "line %d: %q", n, text)
//	if errors.Is(err, errors.ErrCodeMalformedIndentation) {
//	    // Report the offending line
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Outline errors
	ErrCodeMalformedIndentation Code = "MALFORMED_INDENTATION"
	ErrCodeConflictingDuplicate Code = "CONFLICTING_DUPLICATE"

	// File system errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeIO           Code = "IO_ERROR"

	// Rendering errors
	ErrCodeRender Code = "RENDER_FAILED"

	// Internal errors
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

// IsOutlineError reports whether err was caused by the content of an outline
// rather than by reading, writing or rendering it.
func IsOutlineError(err error) bool {
	switch GetCode(err) {
	case ErrCodeMalformedIndentation, ErrCodeConflictingDuplicate:
		return true
	}
	return false
}
