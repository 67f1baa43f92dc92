// File: partial.go
// Title: Incremental Byte-Stream Statement Boundary Detector
// Description: Implements a constant-space state machine that classifies
//              a byte stream into statement boundaries, incomplete
//              prefixes, and poisoned stretches after an unmatched
//              right parenthesis.
// Author: Omen-of-Aecio
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10

package parser

// Op is the verdict for a single consumed byte.
type Op int

const (
	// OpUnready means the statement is still incomplete; feed more bytes.
	OpUnready Op = iota
	// OpReady means the byte completed a statement; everything buffered
	// up to and including this byte forms one statement.
	OpReady
	// OpDiscard means the bytes buffered so far, including this byte,
	// must be thrown away. The statement is poisoned until the next
	// depth-zero newline.
	OpDiscard
)

func (o Op) String() string {
	switch o {
	case OpUnready:
		return "UNREADY"
	case OpReady:
		return "READY"
	case OpDiscard:
		return "DISCARD"
	default:
		return "INVALID"
	}
}

// PartialParser detects statement boundaries one byte at a time.
//
// It holds only a parenthesis counter and a discard flag, so a
// malicious or broken peer cannot grow its memory. It performs no
// UTF-8 validation and never inspects statement contents; tokenizing
// the accumulated bytes is Parse's job once OpReady is returned.
//
// The zero value is ready to use.
type PartialParser struct {
	depth      int
	discarding bool
}

// ParseIncrement consumes the next byte and reports whether the bytes
// buffered so far form a complete statement, an incomplete prefix, or
// garbage to be dropped.
//
// An unmatched ')' poisons the current statement: this byte and every
// following byte yield OpDiscard until a depth-zero newline resets the
// parser. The resetting newline itself reports OpReady, so a caller
// that dropped the poisoned bytes is handed a statement holding only
// the newline, and parsing resumes cleanly from the next byte.
func (p *PartialParser) ParseIncrement(b byte) Op {
	switch b {
	case '\n':
		if p.depth == 0 {
			p.discarding = false
			return OpReady
		}
	case '(':
		p.depth++
	case ')':
		if p.depth == 0 {
			p.discarding = true
			return OpDiscard
		}
		p.depth--
	}
	if p.discarding {
		return OpDiscard
	}
	return OpUnready
}

// Reset returns the parser to its initial state.
func (p *PartialParser) Reset() {
	p.depth = 0
	p.discarding = false
}
