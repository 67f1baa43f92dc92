// File: error.go
// Title: Core Error Implementation
// Description: Implements the structured Error type with codes, severity,
//              operation context, and detail metadata while remaining
//              compatible with the standard errors package.
// Author: Omen-of-Aecio
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10

package error

import (
	"fmt"
	"time"
)

// Error represents a structured error with code, severity, and metadata
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time
	operation string
	details   map[string]interface{}
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:   message,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context. Wrapping a nil
// error returns nil.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{
		message:   message,
		cause:     err,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}

	// Preserve classification and details from an already-structured cause
	if structured, ok := err.(*Error); ok {
		wrapped.code = structured.code
		wrapped.severity = structured.severity
		for k, v := range structured.details {
			wrapped.details[k] = v
		}
	}

	return wrapped
}

// WithCode sets the error code and its default severity
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	e.severity = SeverityFromCode(code)
	return e
}

// WithSeverity overrides the severity
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithOperation records the operation that produced the error
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithDetail attaches a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := e.message
	if e.operation != "" {
		msg = e.operation + ": " + msg
	}
	if e.code != CodeUnknown {
		msg = "[" + e.code.String() + "] " + msg
	}
	if e.cause != nil {
		msg = msg + ": " + e.cause.Error()
	}
	return msg
}

// Unwrap returns the wrapped cause, if any
func (e *Error) Unwrap() error {
	return e.cause
}

// Message returns the error message without code or cause decoration
func (e *Error) Message() string {
	return e.message
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Operation returns the recorded operation
func (e *Error) Operation() string {
	return e.operation
}

// Timestamp returns the creation time of the error
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// Details returns the attached details map
func (e *Error) Details() map[string]interface{} {
	return e.details
}

// HasCode reports whether any error in the chain carries the given code
func HasCode(err error, code Code) bool {
	for err != nil {
		structured, ok := err.(*Error)
		if !ok {
			return false
		}
		if structured.code == code {
			return true
		}
		err = structured.cause
	}
	return false
}
