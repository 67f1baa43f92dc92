// File: evaluator.go
// Title: Recursive Statement Evaluator
// Description: Drives tokenized statements through the command matching
//              tree, substitutes nested command output into the parent
//              argument list under a bounded recursion depth, and
//              implements the builtin introspection commands.
// Author: Omen-of-Aecio
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10

package evaluator

import (
	"errors"
	"regexp"
	"sort"
	"strings"

	"github.com/Omen-of-Aecio/gameshell/core/log"
	"github.com/Omen-of-Aecio/gameshell/mapping"
	"github.com/Omen-of-Aecio/gameshell/parser"
)

// DefaultMaxRecursionDepth bounds nested command substitution unless
// overridden with WithMaxRecursionDepth.
const DefaultMaxRecursionDepth = 100

// literalEscape marks a parenthesized group whose contents are taken
// verbatim instead of being evaluated as a nested command.
const literalEscape = '#'

// Builtin command literals. A user registration for the same literal
// shadows the builtin.
const (
	builtinList         = "?"
	builtinAutocomplete = "autocomplete"
)

// Evaluator interprets statements against a command matching tree.
//
// It owns a user-supplied context value of type C which is passed to
// every finalizer, and a recursion depth counter bounding nested
// command substitution. An Evaluator is single-threaded; give each
// session its own.
type Evaluator[C any] struct {
	mapping  *mapping.Mapping[Value, C]
	context  C
	depth    int
	maxDepth int
	logger   *log.Logger
}

// Option configures an Evaluator.
type Option[C any] func(*Evaluator[C])

// WithMaxRecursionDepth bounds how deeply nested commands may be
// substituted. Values below 1 are ignored.
func WithMaxRecursionDepth[C any](depth int) Option[C] {
	return func(e *Evaluator[C]) {
		if depth >= 1 {
			e.maxDepth = depth
		}
	}
}

// WithLogger routes the evaluator's diagnostics to the given logger.
func WithLogger[C any](logger *log.Logger) Option[C] {
	return func(e *Evaluator[C]) {
		e.logger = logger
	}
}

// New creates an evaluator owning the given context.
func New[C any](context C, opts ...Option[C]) *Evaluator[C] {
	e := &Evaluator[C]{
		mapping:  mapping.New[Value, C](),
		context:  context,
		maxDepth: DefaultMaxRecursionDepth,
		logger:   log.Discard(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Context returns the evaluator's context value.
func (e *Evaluator[C]) Context() C {
	return e.context
}

// Depth returns the current recursion depth. It is zero whenever no
// statement is being evaluated.
func (e *Evaluator[C]) Depth() int {
	return e.depth
}

// Register adds one command specification to the matching tree.
func (e *Evaluator[C]) Register(spec mapping.Spec[Value, C]) error {
	return e.mapping.Register(spec)
}

// RegisterMany adds a batch of command specifications, stopping at the
// first failure.
func (e *Evaluator[C]) RegisterMany(specs []mapping.Spec[Value, C]) error {
	return e.mapping.RegisterMany(specs)
}

// InterpretSingle tokenizes and evaluates one complete statement.
// Newlines inside the statement are treated as whitespace. The error
// is non-nil only for structural parse failures.
func (e *Evaluator[C]) InterpretSingle(statement string) (Feedback, error) {
	tokens, err := parser.Parse(statement)
	if err != nil {
		return Feedback{}, err
	}
	return e.evaluate(tokens), nil
}

// InterpretMultiple splits a block of text into statements and
// evaluates them in order, returning the feedback of the last one.
func (e *Evaluator[C]) InterpretMultiple(code string) (Feedback, error) {
	statements, err := parser.SplitStatements(code)
	if err != nil {
		return Feedback{}, err
	}
	var result Feedback
	for _, statement := range statements {
		result, err = e.InterpretSingle(statement)
		if err != nil {
			return Feedback{}, err
		}
	}
	return result, nil
}

// substitute resolves tokens into plain argument strings, evaluating
// nested commands recursively and splicing their output in place.
func (e *Evaluator[C]) substitute(tokens []parser.Token) ([]string, *Feedback) {
	content := make([]string, 0, len(tokens))
	for _, token := range tokens {
		switch token.Kind {
		case parser.TokenAtom:
			content = append(content, token.Text)
		case parser.TokenCommand:
			if len(token.Text) > 0 && token.Text[0] == literalEscape {
				content = append(content, token.Text[1:])
				continue
			}
			result, err := e.interpretNested(token.Text)
			if err != nil {
				feedback := parseErrorFeedback(err)
				return nil, &feedback
			}
			if result.Kind != FeedbackOk {
				return nil, &result
			}
			content = append(content, result.Message)
		}
	}
	return content, nil
}

// interpretNested evaluates a nested command one recursion level down.
// The depth counter is restored on every exit path so that a failing
// sibling never leaks depth into the rest of the statement.
func (e *Evaluator[C]) interpretNested(statement string) (Feedback, error) {
	if e.depth >= e.maxDepth {
		return Errf("Recursion limit reached (%d)", e.maxDepth), nil
	}
	e.depth++
	defer func() { e.depth-- }()
	return e.InterpretSingle(statement)
}

func (e *Evaluator[C]) evaluate(tokens []parser.Token) Feedback {
	if len(tokens) == 0 {
		return Errf("No input to parse")
	}
	content, failure := e.substitute(tokens)
	if failure != nil {
		return *failure
	}

	fin, args, err := e.mapping.Lookup(content)
	if err == nil {
		output, ferr := fin(e.context, args)
		if ferr != nil {
			return Errf("%s", ferr.Error())
		}
		return Ok(output)
	}
	e.logger.Debug("lookup failed", log.Fields{"command": content[0], "error": err.Error()})

	// Builtins are a fallback: a user registration for the same
	// literal always wins.
	if !e.mapping.HasChild(content[0]) {
		switch content[0] {
		case builtinList:
			return e.listCommands(content[1:])
		case builtinAutocomplete:
			return e.autocomplete(content[1:])
		}
	}
	return lookupErrorFeedback(err, false)
}

// listCommands implements the "?" builtin: every registered path as a
// readable line, optionally filtered by a single regular expression.
func (e *Evaluator[C]) listCommands(args []string) Feedback {
	if len(args) > 1 {
		return Errf("Expected at most one regex filter, got %d arguments", len(args))
	}
	list := mappingToList(e.mapping)
	if len(args) == 1 {
		re, err := regexp.Compile(".*" + args[0] + ".*")
		if err != nil {
			return Errf("Regex could not be compiled: %v", err)
		}
		joined := strings.Join(list, "\n")
		list = re.FindAllString(joined, -1)
	}
	sort.Strings(list)
	return Ok(strings.Join(list, "\n"))
}

// autocomplete implements the "autocomplete" builtin: a partial lookup
// of the remaining tokens, answering either with the next possible
// literals or with the active decider's description.
func (e *Evaluator[C]) autocomplete(args []string) Feedback {
	node, desc, err := e.mapping.PartialLookup(args)
	if err != nil {
		return lookupErrorFeedback(err, true)
	}
	if node == nil {
		return Ok(desc)
	}
	var col []string
	for _, entry := range node.DirectEntries() {
		s := entry.Literal
		if entry.Decider != nil {
			s += " " + entry.Decider.Description
		}
		if entry.HasFinalizer {
			s += " (final)"
		}
		col = append(col, s)
	}
	if len(col) == 0 {
		return Ok("No more handlers")
	}
	sort.Strings(col)
	return Ok(strings.Join(col, ", "))
}

// mappingToList renders every path through the tree. A node's line is
// its literal followed by its decider description when present, and a
// lone trailing space when a finalizer terminates an undecided arm,
// matching the layout expected by interactive clients.
func mappingToList[A, C any](m *mapping.Mapping[A, C]) []string {
	var builder []string
	for _, entry := range m.DirectEntries() {
		parameter, spacer := " ", ""
		if entry.Decider != nil {
			parameter, spacer = entry.Decider.Description, " "
		}
		if entry.HasFinalizer {
			s := entry.Literal
			if entry.Decider != nil {
				s += " "
			}
			s += parameter
			builder = append(builder, s)
		}
		for _, command := range mappingToList(entry.Node) {
			builder = append(builder, entry.Literal+spacer+parameter+spacer+command)
		}
	}
	return builder
}

func parseErrorFeedback(err error) Feedback {
	switch {
	case errors.Is(err, parser.ErrDanglingLeftParenthesis):
		return Errf("Dangling left parenthesis")
	case errors.Is(err, parser.ErrPrematureRightParenthesis):
		return Errf("Right parenthesis encountered with no matching left parenthesis")
	default:
		return Errf("%s", err.Error())
	}
}

// lookupErrorFeedback renders a lookup failure for the user. Help text
// attached to a denial surfaces as Help feedback only during
// autocompletion; during normal evaluation it degrades to an error.
func lookupErrorFeedback(err error, allowHelp bool) Feedback {
	var unknown *mapping.UnknownMappingError
	var denied *mapping.DeniedError
	switch {
	case errors.Is(err, mapping.ErrDeciderAdvancedTooFar):
		return Errf("Decider advanced too far")
	case errors.Is(err, mapping.ErrFinalizerMissing):
		return Errf("Finalizer does not exist")
	case errors.As(err, &unknown):
		return Errf("Unrecognized mapping: %s", unknown.Token)
	case errors.As(err, &denied):
		if denied.Denial.Help != "" {
			if allowHelp {
				return Help(denied.Denial.Help)
			}
			return Errf("Expected %s but got denied: %s", denied.Desc, denied.Denial.Help)
		}
		return Errf("Expected %s but got: %s", denied.Desc, denied.Denial.Reason)
	default:
		return Errf("%s", err.Error())
	}
}
