// File: error_test.go
// Title: Core Error Unit Tests
// Description: Tests for the structured error type covering construction,
//              wrapping, code/severity propagation, and chain inspection.
// Author: Omen-of-Aecio
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10

package error

import (
	"errors"
	"strings"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	err := New("something broke")

	if err.Code() != CodeUnknown {
		t.Errorf("expected CodeUnknown, got %v", err.Code())
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("expected SeverityMedium, got %v", err.Severity())
	}
	if err.Error() != "something broke" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code     Code
		severity Severity
	}{
		{CodeBufferOverflow, SeverityMedium},
		{CodeInvalidConfig, SeverityHigh},
		{CodeInvalidInput, SeverityLow},
		{CodeInternal, SeverityHigh},
	}

	for _, tt := range tests {
		err := New("x").WithCode(tt.code)
		if err.Severity() != tt.severity {
			t.Errorf("code %v: expected severity %v, got %v", tt.code, tt.severity, err.Severity())
		}
	}
}

func TestErrorStringIncludesCodeAndOperation(t *testing.T) {
	err := New("internal buffer is full").
		WithCode(CodeBufferOverflow).
		WithOperation("server.session")

	msg := err.Error()
	if !strings.Contains(msg, "BUFFER_OVERFLOW") {
		t.Errorf("missing code in %q", msg)
	}
	if !strings.Contains(msg, "server.session") {
		t.Errorf("missing operation in %q", msg)
	}
}

func TestWrapNilReturnsNil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("wrapping nil should return nil")
	}
}

func TestWrapPreservesClassification(t *testing.T) {
	inner := New("bad buffer size").
		WithCode(CodeValueOutOfRange).
		WithDetail("bufferSize", 3)
	outer := Wrap(inner, "loading configuration")

	if outer.Code() != CodeValueOutOfRange {
		t.Errorf("expected inherited code, got %v", outer.Code())
	}
	if outer.Details()["bufferSize"] != 3 {
		t.Errorf("expected inherited detail, got %v", outer.Details())
	}
	if !errors.Is(outer, inner) {
		t.Error("errors.Is should traverse the wrap chain")
	}
}

func TestWrapStandardError(t *testing.T) {
	base := errors.New("connection reset")
	wrapped := Wrap(base, "reading from stream").WithCode(CodeConnectionFailed)

	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should unwrap to the base error")
	}
	if !strings.Contains(wrapped.Error(), "connection reset") {
		t.Errorf("cause missing from message: %q", wrapped.Error())
	}
}

func TestHasCode(t *testing.T) {
	inner := New("fault").WithCode(CodeEncodingInvalid)
	outer := Wrap(inner, "processing statement").WithCode(CodeSessionClosed)

	if !HasCode(outer, CodeSessionClosed) {
		t.Error("expected outer code to be found")
	}
	if !HasCode(outer, CodeEncodingInvalid) {
		t.Error("expected inner code to be found through the chain")
	}
	if HasCode(outer, CodeConfigError) {
		t.Error("unexpected code reported as present")
	}
	if HasCode(errors.New("plain"), CodeUnknown) {
		t.Error("plain errors carry no code")
	}
}
