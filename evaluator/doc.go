// File: doc.go
// Title: Package Documentation for evaluator
// Description: Documents the statement evaluator and its builtin
//              introspection commands.
// Author: Omen-of-Aecio
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10

// Package evaluator runs command statements against a matching tree.
//
// A statement is tokenized into atoms and parenthesized command
// groups. Each command group is evaluated recursively and its output
// substituted into the parent argument list, except groups opening
// with '#', whose contents are spliced in verbatim. Substitution depth
// is bounded; the bound is configurable and defaults to
// DefaultMaxRecursionDepth.
//
// Two builtin commands are always available unless shadowed by a user
// registration: "?" lists every registered command path, optionally
// filtered by a regular expression, and "autocomplete" looks one step
// ahead in the tree to answer "what can I type next".
//
// Finalizers receive the evaluator's context value together with the
// typed arguments collected by the deciders along the matched path,
// and answer with an output string or an error. The output of a
// nested statement is exchanged as a string rather than a typed
// value, because an enclosing command is free to reinterpret it with
// an arbitrary decider.
package evaluator
