// File: doc.go
// Title: Structured Logging Package Documentation
// Description: Package documentation for the gameshell logging system.
// Author: Omen-of-Aecio
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10

// Package log provides structured, leveled logging for the gameshell
// engine and its byte-stream adapters.
//
// Loggers are immutable: the With* methods return a copy carrying the
// additional context. Components derive their own logger from the one
// they are handed:
//
//	logger := log.GetDefault().WithField("component", "gameshell-server")
//	logger.Info("session opened", log.Fields{"sessionId": id})
//
// Two output formats are supported, text for consoles and JSON for
// machine consumption. The zero configuration logs text at info level
// to stdout.
package log
