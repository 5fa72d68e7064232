// Package errors provides structured error types for the turbograph
// application.
//
// Errors carry a machine-readable [Code] alongside the human-readable
// message, so the CLI and the HTTP endpoint can classify failures without
// string matching:
//
//	err := errors.New(errors.ErrCodeFormat, "node %s: missing type", id)
//	if errors.Is(err, errors.ErrCodeFormat) {
//	    // malformed input
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// ErrCodeStructure marks a document missing one of its required
	// top-level sections. Nothing inside the document is parsed once
	// this is detected.
	ErrCodeStructure Code = "INVALID_STRUCTURE"

	// ErrCodeFormat marks a required attribute that is absent, or a
	// value that fails its field's parse rule.
	ErrCodeFormat Code = "INVALID_FORMAT"

	// ErrCodeInvalidPath marks an unusable input or output path.
	ErrCodeInvalidPath Code = "INVALID_PATH"

	// ErrCodeUnsupported marks an unknown shape, format, or extension.
	ErrCodeUnsupported Code = "UNSUPPORTED"

	// ErrCodeInternal marks unexpected internal failures.
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
