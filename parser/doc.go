// File: doc.go
// Title: Statement Parser Package Documentation
// Description: Implements the statement tokenizer, the multi-line
//              statement splitter, and the incremental byte-stream
//              parser for the gameshell command language.
// Author: Omen-of-Aecio
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10

/*
Package parser provides the parsing layer of the gameshell command
language.

The language has exactly two token kinds:

  - Atom: a maximal run of non-whitespace, non-parenthesis characters
  - Command: the raw text inside one balanced (...) pair, outer
    parentheses excluded; never expanded by the tokenizer itself

Three entry points cover the three ways input arrives:

  - Parse tokenizes one complete statement string
  - SplitStatements cuts a block of text into statements at newlines
    that occur outside parentheses
  - PartialParser consumes a byte stream one byte at a time and
    reports statement boundaries, for sockets and other sources that
    yield at arbitrary points

Scanning is by codepoint so that token boundaries stay valid for
multi-byte input. PartialParser works on raw bytes by design: UTF-8
validation of an accumulated statement is the caller's concern and
happens only after a boundary is reported.
*/
package parser
