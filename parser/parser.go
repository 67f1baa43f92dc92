// File: parser.go
// Title: Statement Tokenizer and Multi-Line Splitter
// Description: Implements tokenization of a single statement into atoms
//              and command groups, and the splitting of multi-line text
//              into statements at parenthesis-depth-zero newlines.
// Author: Omen-of-Aecio
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10

package parser

import (
	"errors"
	"unicode"
	"unicode/utf8"
)

// Parse errors. Both are statement-local: they invalidate the statement
// being parsed and nothing else.
var (
	// ErrDanglingLeftParenthesis reports a ( left open at end of input
	ErrDanglingLeftParenthesis = errors.New("dangling left parenthesis")

	// ErrPrematureRightParenthesis reports a ) with no matching (
	ErrPrematureRightParenthesis = errors.New("right parenthesis encountered with no matching left parenthesis")
)

// Parse tokenizes one statement into an ordered sequence of tokens.
//
// Newlines inside the statement are ordinary whitespace; statement
// separation is the caller's job (see SplitStatements and
// PartialParser). Empty input yields an empty token list, not an
// error. The contents of a command group are captured verbatim,
// including whitespace, and are not parsed further.
func Parse(line string) ([]Token, error) {
	var tokens []Token
	depth := 0
	start, stop := 0, 0

	for _, ch := range line {
		size := utf8.RuneLen(ch)
		switch {
		case depth > 0:
			switch ch {
			case '(':
				depth++
				stop += size
			case ')':
				depth--
				if depth == 0 {
					tokens = append(tokens, Command(line[start:stop]))
					stop += size
					start = stop
				} else {
					stop += size
				}
			default:
				stop += size
			}
		case unicode.IsSpace(ch):
			if start != stop {
				tokens = append(tokens, Atom(line[start:stop]))
			}
			stop += size
			start = stop
		case ch == '(':
			if start != stop {
				tokens = append(tokens, Atom(line[start:stop]))
			}
			depth++
			stop += size
			start = stop
		case ch == ')':
			return nil, ErrPrematureRightParenthesis
		default:
			stop += size
		}
	}

	if depth > 0 {
		return nil, ErrDanglingLeftParenthesis
	}
	if start != stop {
		tokens = append(tokens, Atom(line[start:stop]))
	}
	return tokens, nil
}

// SplitStatements cuts a block of text into statements.
//
// A newline terminates a statement only when the running parenthesis
// count is zero and at least one non-whitespace character has been
// seen since the previous boundary; otherwise it is swallowed and the
// statement continues on the next line. A trailing statement without a
// final newline is still emitted. Whitespace-only stretches are never
// emitted as statements.
//
// An unmatched ) fails the whole split with
// ErrPrematureRightParenthesis. An unclosed ( is not detected here:
// the remainder is emitted as the final statement and Parse reports
// ErrDanglingLeftParenthesis when that statement is tokenized.
func SplitStatements(code string) ([]string, error) {
	var statements []string
	oldIdx, idx := 0, 0
	depth := 0
	seenNonWS := false

	for _, ch := range code {
		switch {
		case ch == '\n' && depth == 0 && seenNonWS:
			seenNonWS = false
			statements = append(statements, code[oldIdx:idx])
			oldIdx = idx + 1
		case ch == '(':
			depth++
			seenNonWS = true
		case ch == ')':
			if depth == 0 {
				return nil, ErrPrematureRightParenthesis
			}
			depth--
			seenNonWS = true
		case !unicode.IsSpace(ch):
			seenNonWS = true
		}
		idx += utf8.RuneLen(ch)
	}

	if idx != oldIdx && seenNonWS {
		statements = append(statements, code[oldIdx:idx])
	}
	return statements, nil
}
