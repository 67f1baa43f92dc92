// File: errors.go
// Title: Mapping Registration and Lookup Errors
// Description: Defines the error values produced while registering
//              command specifications and while resolving token
//              sequences against the tree.
// Author: Omen-of-Aecio
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10

package mapping

import (
	"errors"
	"fmt"
)

// Registration errors. Specs merge into the existing tree; they may
// extend it but never overwrite a decider or finalizer already in
// place.
var (
	// ErrDeciderExists reports a spec supplying a decider for an arm
	// that already has a node. Only the first registration of an arm
	// may carry a decider.
	ErrDeciderExists = errors.New("decider already exists")

	// ErrFinalizerExists reports a second finalizer registered at the
	// same node.
	ErrFinalizerExists = errors.New("finalizer already exists")
)

// Lookup errors.
var (
	// ErrDeciderAdvancedTooFar reports a decider that claimed to have
	// consumed more tokens than were available.
	ErrDeciderAdvancedTooFar = errors.New("decider advanced too far")

	// ErrFinalizerMissing reports a fully matched path whose final
	// node has no finalizer.
	ErrFinalizerMissing = errors.New("finalizer does not exist")
)

// UnknownMappingError reports an input token with no matching literal
// at the current tree node.
type UnknownMappingError struct {
	Token string
}

func (e *UnknownMappingError) Error() string {
	return fmt.Sprintf("unrecognized mapping: %s", e.Token)
}

// Denial is returned by a decider that rejects its input. Reason says
// what was wrong; Help optionally carries usage text a caller may show
// during autocompletion.
type Denial struct {
	Reason string
	Help   string
}

func (d *Denial) Error() string {
	return d.Reason
}

// DeniedError wraps a Denial together with the description of the
// decider that produced it.
type DeniedError struct {
	Desc   string
	Denial *Denial
}

func (e *DeniedError) Error() string {
	return fmt.Sprintf("expected %s but got denied: %s", e.Desc, e.Denial.Reason)
}

func (e *DeniedError) Unwrap() error {
	return e.Denial
}
