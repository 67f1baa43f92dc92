// File: codes.go
// Title: Error Code Definitions
// Description: Defines the structured error codes used to categorize
//              gameshell fault conditions.
// Author: Omen-of-Aecio
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Stream and session faults
	CodeBufferOverflow   Code = "BUFFER_OVERFLOW"
	CodeEncodingInvalid  Code = "ENCODING_INVALID"
	CodeConnectionFailed Code = "CONNECTION_FAILED"
	CodeSessionClosed    Code = "SESSION_CLOSED"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}
