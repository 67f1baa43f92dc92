// File: severity.go
// Title: Error Severity Levels
// Description: Defines the severity classification attached to structured
//              errors and the default severity per error code.
// Author: Omen-of-Aecio
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error, typically bad user input
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects one session
	SeverityMedium

	// SeverityHigh indicates a serious error affecting the service
	SeverityHigh

	// SeverityCritical indicates the system cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// SeverityFromCode returns the default severity for an error code
func SeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityHigh
	case CodeBufferOverflow, CodeEncodingInvalid, CodeConnectionFailed, CodeSessionClosed:
		return SeverityMedium
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh
	case CodeInvalidInput, CodeNotFound, CodeValidationFailed, CodeValueOutOfRange:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
