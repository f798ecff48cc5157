// Package errors provides structured error types for familytree.
//
// Errors carry a machine-readable [Code] so the CLI and the HTTP service can
// tell the three failure families apart:
//
//   - Input-shape errors: the request itself is malformed (missing members,
//     duplicate ids, unknown output format). These map to HTTP 400.
//   - Structural errors: the family is well-formed but cannot be laid out,
//     currently only a parent-child cycle. These map to HTTP 422.
//   - Everything else is internal.
//
// Dangling references and unreachable people are not errors at all; the
// layout drops them silently.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeDuplicateID, "duplicate person id %q", id)
//	if errors.IsInput(err) {
//	    // reject the request
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
	// Input-shape errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidStyle  Code = "INVALID_STYLE"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeDuplicateID   Code = "DUPLICATE_ID"

	// Structural errors
	ErrCodeCycle Code = "CYCLE_DETECTED"

	// Lookup errors
	ErrCodeNotFound Code = "NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

var inputCodes = map[Code]bool{
	ErrCodeInvalidInput:  true,
	ErrCodeInvalidFormat: true,
	ErrCodeInvalidStyle:  true,
	ErrCodeInvalidConfig: true,
	ErrCodeDuplicateID:   true,
}

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

// IsInput reports whether err is an input-shape error.
func IsInput(err error) bool {
	return inputCodes[GetCode(err)]
}

// IsStructural reports whether err describes a family graph that cannot be laid out.
func IsStructural(err error) bool {
	return GetCode(err) == ErrCodeCycle
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

// CycleError is the structural error returned when parent-child links loop back
// on themselves. Path lists the person ids along the cycle, starting and ending
// with the same id.
type CycleError struct {
	Path []string
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCodeCycle, e.message())
}

func (e *CycleError) message() string {
	if len(e.Path) == 0 {
		return "parent-child relationships contain a cycle"
	}
	return fmt.Sprintf("parent-child relationships contain a cycle: %v", e.Path)
}

// Unwrap exposes the coded form so Is, GetCode and UserMessage see CYCLE_DETECTED.
func (e *CycleError) Unwrap() error {
	return &Error{Code: ErrCodeCycle, Message: e.message()}
}
