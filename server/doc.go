// File: doc.go
// Title: Server Package Documentation
// Description: Package documentation for the shell server transports.
// Author: Omen-of-Aecio
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10

// Package server exposes shell sessions over the network. The TCP
// server speaks the raw statement protocol: clients send
// newline-terminated statements and receive one response per
// statement. The WebSocket handler speaks the same protocol framed in
// text messages, for browser clients.
//
// Every connection gets its own session with its own context value
// and command tree, built by the SessionFactory:
//
//	srv, err := server.New(func(sessionID string) (*Game, []mapping.Spec[evaluator.Value, *Game]) {
//		return game, commands
//	}, server.Options{Address: "127.0.0.1:32124"})
//	if err != nil {
//		return err
//	}
//	return srv.ListenAndServe()
package server
