// File: doc.go
// Title: Package Documentation for mapping
// Description: Documents the command matching tree that routes token
//              sequences to registered handler functions.
// Author: Omen-of-Aecio
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10

// Package mapping implements a command matching tree.
//
// The tree routes a list of input tokens such as ["example", "input",
// "123"] to a handler able to process them. Handlers are registered as
// specifications: a path of literal arms, each optionally guarded by a
// decider that validates and converts the arguments following it, and
// a finalizer that runs once the whole path has matched.
//
//	reg := mapping.New[int32, *Registry]()
//	err := reg.Register(mapping.Spec[int32, *Registry]{
//		Path: []mapping.Arm[int32]{
//			{Literal: "example"},
//			{Literal: "input", Decider: &acceptInteger},
//		},
//		Finalizer: handleExample,
//	})
//
// The split between literal arms and deciders is deliberate: literals
// give each tree node an unambiguous key, so lookup stays a cheap map
// walk, while deciders remain free to consume an arbitrary number of
// argument tokens. Literals also make unmatched commands easy to
// report and make autocompletion possible via PartialLookup and
// DirectEntries.
//
// A is the accept type, the parsed argument representation handed to
// finalizers. C is the context type finalizers operate on.
package mapping
