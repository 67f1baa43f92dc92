// File: gameshell.go
// Title: Shell Facade over Stream, Parser, and Evaluator
// Description: Wires an input/output stream pair to the incremental
//              parser and the evaluator, speaking the line-oriented
//              shell protocol.
// Author: Omen-of-Aecio
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10

// Package gameshell is a small lisp-like command shell made to be
// embedded in programs. It has no runtime of its own: statements go
// straight to the handler functions registered for them.
//
// The language is just
//
//	command argument (subcommand argument ...) (#literal string inside here) argument ...
//
// If an opened parenthesis is not closed before a newline, the next
// line is part of the same statement.
//
// A Shell consumes an input stream statement by statement and writes
// each statement's result to the output stream. The heavy lifting
// happens in the registered handlers; see the evaluator and deciders
// packages for how commands are declared.
package gameshell

import (
	"errors"
	"io"
	"unicode/utf8"

	"github.com/Omen-of-Aecio/gameshell/consumer"
	"github.com/Omen-of-Aecio/gameshell/core/log"
	"github.com/Omen-of-Aecio/gameshell/evaluator"
	"github.com/Omen-of-Aecio/gameshell/mapping"
	"github.com/Omen-of-Aecio/gameshell/parser"
)

// DefaultBufferSize is the statement accumulation buffer size used
// unless overridden with WithBufferSize.
const DefaultBufferSize = 1024

// Responses written for protocol-level conditions.
const (
	responseOk         = "Ok"
	responseEmptyHelp  = "Empty help message"
	responseParseError = "Err: Unable to complete query (parse error)"
	responseBufferFull = "Err: Internal buffer is full, disconnecting\n"
)

// Shell reads statements from a stream, evaluates them, and writes
// results back. Each connection or session should own one Shell.
type Shell[C any] struct {
	evaluator *evaluator.Evaluator[C]
	parser    parser.PartialParser
	reader    io.Reader
	writer    io.Writer
	logger    *log.Logger
	bufSize   int
	maxDepth  int
}

// Option configures a Shell.
type Option[C any] func(*Shell[C])

// WithBufferSize caps how many bytes a single statement may occupy.
// A statement outgrowing the buffer disconnects the session. Values
// below 1 are ignored.
func WithBufferSize[C any](size int) Option[C] {
	return func(s *Shell[C]) {
		if size >= 1 {
			s.bufSize = size
		}
	}
}

// WithMaxRecursionDepth bounds nested command substitution. Values
// below 1 are ignored.
func WithMaxRecursionDepth[C any](depth int) Option[C] {
	return func(s *Shell[C]) {
		if depth >= 1 {
			s.maxDepth = depth
		}
	}
}

// WithLogger routes shell and evaluator diagnostics to the given
// logger.
func WithLogger[C any](logger *log.Logger) Option[C] {
	return func(s *Shell[C]) {
		s.logger = logger
	}
}

// New creates a shell owning a context value, reading statements from
// reader and writing results to writer.
func New[C any](context C, reader io.Reader, writer io.Writer, opts ...Option[C]) *Shell[C] {
	s := &Shell[C]{
		reader:   reader,
		writer:   writer,
		logger:   log.Discard(),
		bufSize:  DefaultBufferSize,
		maxDepth: evaluator.DefaultMaxRecursionDepth,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.evaluator = evaluator.New(context,
		evaluator.WithMaxRecursionDepth[C](s.maxDepth),
		evaluator.WithLogger[C](s.logger),
	)
	return s
}

// Evaluator exposes the shell's evaluator, for interpreting
// statements outside the stream loop.
func (s *Shell[C]) Evaluator() *evaluator.Evaluator[C] {
	return s.evaluator
}

// Context returns the context value handed to handlers.
func (s *Shell[C]) Context() C {
	return s.evaluator.Context()
}

// Register adds one command specification.
func (s *Shell[C]) Register(spec mapping.Spec[evaluator.Value, C]) error {
	return s.evaluator.Register(spec)
}

// RegisterMany adds a batch of command specifications, stopping at the
// first failure.
func (s *Shell[C]) RegisterMany(specs []mapping.Spec[evaluator.Value, C]) error {
	return s.evaluator.RegisterMany(specs)
}

// Run consumes the input stream until it ends or the session must be
// dropped. A statement outgrowing the buffer writes a disconnect
// notice and returns consumer.ErrBufferFull.
func (s *Shell[C]) Run() error {
	err := consumer.Run(s, make([]byte, s.bufSize))
	if errors.Is(err, consumer.ErrBufferFull) {
		s.logger.Warn("statement exceeded buffer, disconnecting", log.Fields{"buffer_size": s.bufSize})
		// Best effort: the peer may already be gone.
		_, _ = io.WriteString(s.writer, responseBufferFull)
	}
	return err
}

// Consume implements consumer.Consumer by reading from the input
// stream.
func (s *Shell[C]) Consume(output []byte) (int, error) {
	return s.reader.Read(output)
}

// Validate implements consumer.Consumer with the incremental
// statement parser.
func (s *Shell[C]) Validate(b byte) consumer.Validation {
	switch s.parser.ParseIncrement(b) {
	case parser.OpReady:
		return consumer.ValidationReady
	case parser.OpDiscard:
		return consumer.ValidationDiscard
	default:
		return consumer.ValidationUnready
	}
}

// Process implements consumer.Consumer: one complete statement in,
// one response out.
//
// Empty success output is answered with "Ok" so the peer always
// receives something; errors are prefixed "Err: "; statements that
// fail to tokenize are answered with a generic parse-error response
// rather than ending the session.
func (s *Shell[C]) Process(input []byte) error {
	if !utf8.Valid(input) {
		s.logger.Warn("dropping session on invalid utf-8 input")
		return errors.New("input is not valid utf-8")
	}
	statement := string(input)
	s.logger.Debug("interpreting statement", log.Fields{"statement": statement})

	feedback, err := s.evaluator.InterpretSingle(statement)
	if err != nil {
		return s.respond(responseParseError)
	}
	switch feedback.Kind {
	case evaluator.FeedbackOk:
		if feedback.Message == "" {
			return s.respond(responseOk)
		}
		return s.respond(feedback.Message)
	case evaluator.FeedbackHelp:
		if feedback.Message == "" {
			return s.respond(responseEmptyHelp)
		}
		return s.respond(feedback.Message)
	default:
		return s.respond("Err: " + feedback.Message)
	}
}

func (s *Shell[C]) respond(message string) error {
	if _, err := io.WriteString(s.writer, message); err != nil {
		return err
	}
	return nil
}
