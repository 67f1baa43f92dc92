// File: doc.go
// Title: Core Error Package Documentation
// Description: Package documentation for the gameshell error system.
// Author: Omen-of-Aecio
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10

// Package error provides structured errors for the fault boundaries of
// the gameshell engine: configuration loading and stream-level session
// faults. Per-statement failures (unknown command, denied argument,
// parse defects) are ordinary error values in their own packages and do
// not use this type; those never tear anything down.
//
// Errors carry a code, a severity, the failing operation, and free-form
// details:
//
//	return nil, gsherror.New("internal buffer is full").
//		WithCode(gsherror.CodeBufferOverflow).
//		WithOperation("server.session").
//		WithDetail("sessionId", id)
package error
