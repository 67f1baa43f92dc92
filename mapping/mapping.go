// File: mapping.go
// Title: Command Matching Tree
// Description: Implements registration of command specifications and
//              full and partial lookup of token sequences, running
//              deciders along the way to collect parsed arguments.
// Author: Omen-of-Aecio
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10

package mapping

import "sort"

// Finalizer handles a fully matched command. It receives the context
// and the arguments accepted by the deciders along the path, in order.
// The returned string is the command's output on success.
type Finalizer[A, C any] func(ctx C, args []A) (string, error)

// DecideFunc validates argument tokens. It appends parsed values to
// out and returns how many input tokens it consumed, or a Denial when
// the tokens are unacceptable. It must never report consuming more
// tokens than it was given.
type DecideFunc[A any] func(input []string, out *[]A) (int, *Denial)

// Decider pairs a decide function with a human-readable description.
// The description appears in help listings, autocompletion, and
// denial messages, so it should read like a parameter signature such
// as "<i32>" or "<string> ...".
type Decider[A any] struct {
	Description string
	Decide      DecideFunc[A]
}

// Arm is one step of a spec path: a literal to match, optionally
// guarded by a decider that parses the arguments following it.
type Arm[A any] struct {
	Literal string
	Decider *Decider[A]
}

// Spec declares one command: the path of arms leading to it and the
// finalizer to run when the path matches.
type Spec[A, C any] struct {
	Path      []Arm[A]
	Finalizer Finalizer[A, C]
}

// Entry describes one direct child of a tree node.
type Entry[A, C any] struct {
	Literal      string
	Decider      *Decider[A]
	HasFinalizer bool
	Node         *Mapping[A, C]
}

// Mapping is a node in the matching tree. Each node holds its
// subcommands keyed by literal, an optional decider guarding the
// arguments that follow the node's literal, and an optional finalizer
// if a command terminates here.
//
// A Mapping is not safe for concurrent mutation; register all specs
// before sharing it between goroutines for lookup.
type Mapping[A, C any] struct {
	submaps   map[string]*Mapping[A, C]
	decider   *Decider[A]
	finalizer Finalizer[A, C]
}

// New creates an empty matching tree.
func New[A, C any]() *Mapping[A, C] {
	return &Mapping[A, C]{submaps: make(map[string]*Mapping[A, C])}
}

// RegisterMany registers a batch of specs, stopping at the first
// failure.
func (m *Mapping[A, C]) RegisterMany(specs []Spec[A, C]) error {
	for _, spec := range specs {
		if err := m.Register(spec); err != nil {
			return err
		}
	}
	return nil
}

// Register merges one spec into the tree.
//
// Paths may share prefixes with already registered specs, but a spec
// may not attach a decider to an arm that already exists, and may not
// attach a finalizer to a node that already has one.
func (m *Mapping[A, C]) Register(spec Spec[A, C]) error {
	if len(spec.Path) == 0 {
		if m.finalizer != nil {
			return ErrFinalizerExists
		}
		m.finalizer = spec.Finalizer
		return nil
	}
	arm := spec.Path[0]
	rest := Spec[A, C]{Path: spec.Path[1:], Finalizer: spec.Finalizer}
	if child, ok := m.submaps[arm.Literal]; ok {
		if arm.Decider != nil {
			return ErrDeciderExists
		}
		return child.Register(rest)
	}
	child := &Mapping[A, C]{
		submaps: make(map[string]*Mapping[A, C]),
		decider: arm.Decider,
	}
	if err := child.Register(rest); err != nil {
		return err
	}
	m.submaps[arm.Literal] = child
	return nil
}

// Lookup resolves a full token sequence to a finalizer, running every
// decider along the path and collecting the accepted arguments.
func (m *Mapping[A, C]) Lookup(input []string) (Finalizer[A, C], []A, error) {
	var args []A
	fin, err := m.lookup(input, &args)
	if err != nil {
		return nil, nil, err
	}
	return fin, args, nil
}

func (m *Mapping[A, C]) lookup(input []string, args *[]A) (Finalizer[A, C], error) {
	if len(input) == 0 {
		if m.finalizer == nil {
			return nil, ErrFinalizerMissing
		}
		return m.finalizer, nil
	}
	child, ok := m.submaps[input[0]]
	if !ok {
		return nil, &UnknownMappingError{Token: input[0]}
	}
	advance := 0
	if child.decider != nil {
		n, denial := child.decider.Decide(input[1:], args)
		if denial != nil {
			return nil, &DeniedError{Desc: child.decider.Description, Denial: denial}
		}
		advance = n
	}
	if len(input) <= advance {
		return nil, ErrDeciderAdvancedTooFar
	}
	return child.lookup(input[1+advance:], args)
}

// PartialLookup resolves as much of a token sequence as exists in the
// tree. It is the building block for autocompletion.
//
// When the sequence ends at a tree node, that node is returned and
// desc is empty. When the sequence ends with a single token naming an
// arm guarded by a decider, the node is nil and desc carries the
// decider's description, since the decider's consumption cannot be
// known before its arguments arrive.
func (m *Mapping[A, C]) PartialLookup(input []string) (node *Mapping[A, C], desc string, err error) {
	var args []A
	return m.partialLookup(input, &args)
}

func (m *Mapping[A, C]) partialLookup(input []string, args *[]A) (*Mapping[A, C], string, error) {
	if len(input) == 0 {
		return m, "", nil
	}
	child, ok := m.submaps[input[0]]
	if !ok {
		return nil, "", &UnknownMappingError{Token: input[0]}
	}
	advance := 0
	if child.decider != nil {
		if len(input) == 1 {
			return nil, child.decider.Description, nil
		}
		n, denial := child.decider.Decide(input[1:], args)
		if denial != nil {
			return nil, "", &DeniedError{Desc: child.decider.Description, Denial: denial}
		}
		advance = n
	}
	if len(input) <= advance {
		return nil, "", ErrDeciderAdvancedTooFar
	}
	return child.partialLookup(input[1+advance:], args)
}

// DirectEntries lists the node's direct children sorted by literal.
func (m *Mapping[A, C]) DirectEntries() []Entry[A, C] {
	entries := make([]Entry[A, C], 0, len(m.submaps))
	for literal, child := range m.submaps {
		entries = append(entries, Entry[A, C]{
			Literal:      literal,
			Decider:      child.decider,
			HasFinalizer: child.finalizer != nil,
			Node:         child,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Literal < entries[j].Literal })
	return entries
}

// HasChild reports whether a direct child with the given literal
// exists.
func (m *Mapping[A, C]) HasChild(literal string) bool {
	_, ok := m.submaps[literal]
	return ok
}

// Decider returns the decider guarding this node, if any.
func (m *Mapping[A, C]) Decider() *Decider[A] {
	return m.decider
}

// HasFinalizer reports whether a command terminates at this node.
func (m *Mapping[A, C]) HasFinalizer() bool {
	return m.finalizer != nil
}
