package nebulaerr

import (
	"errors"
	"fmt"
)

// Code represents stable error codes for all bridge failure modes
type Code string

const (
	// ConfigError indicates a present-but-malformed configuration source
	ConfigError Code = "CONFIG_ERROR"
	// ProcessError indicates the external engine exited non-zero or never started
	ProcessError Code = "PROCESS_ERROR"
	// DecodeError indicates engine output did not match the expected shape
	DecodeError Code = "DECODE_ERROR"
	// Precondition indicates an argument failed validation before launch
	Precondition Code = "PRECONDITION"
	// Timeout indicates the external engine exceeded its execution deadline
	Timeout Code = "TIMEOUT"
	// SyncError indicates a central KG sync request failed
	SyncError Code = "SYNC_ERROR"
	// Internal indicates an unexpected error
	Internal Code = "INTERNAL_ERROR"
)

// Error is a bridge error with a stable code and optional captured diagnostics.
// Stderr holds the external engine's error stream verbatim for ProcessError.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Stderr  string `json:"stderr,omitempty"`
	cause   error
}

// New creates an Error with the given code and message.
func New(code Code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		cause:   cause,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// WithStderr attaches captured standard error text to the error.
func (e *Error) WithStderr(stderr string) *Error {
	e.Stderr = stderr
	return e
}

// CodeOf extracts the Code from err, or Internal if err carries none.
func CodeOf(err error) Code {
	var ne *Error
	if errors.As(err, &ne) {
		return ne.Code
	}
	return Internal
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return CodeOf(err) == code
}
