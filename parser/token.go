// File: token.go
// Title: Statement Token Definitions
// Description: Defines the token types produced by the statement
//              tokenizer: atoms and unexpanded command groups.
// Author: Omen-of-Aecio
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10

package parser

import (
	"fmt"
)

// TokenKind distinguishes atoms from commands
type TokenKind int

const (
	// TokenAtom is a single connected run of non-whitespace,
	// non-parenthesis characters
	TokenAtom TokenKind = iota

	// TokenCommand is the contents of one balanced (...) pair,
	// excluding the outer parentheses. It may itself contain
	// balanced parentheses.
	TokenCommand
)

// String returns the string representation of the token kind
func (k TokenKind) String() string {
	switch k {
	case TokenAtom:
		return "ATOM"
	case TokenCommand:
		return "COMMAND"
	default:
		return "UNKNOWN"
	}
}

// Token is one element of a tokenized statement
type Token struct {
	Kind TokenKind
	Text string
}

// Atom creates an atom token
func Atom(text string) Token {
	return Token{Kind: TokenAtom, Text: text}
}

// Command creates a command token
func Command(text string) Token {
	return Token{Kind: TokenCommand, Text: text}
}

// String returns a string representation of the token
func (t Token) String() string {
	return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
}
