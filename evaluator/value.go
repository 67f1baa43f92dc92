// File: value.go
// Title: Argument Value Sum Type
// Description: Defines the typed argument values produced by deciders
//              and consumed by finalizers.
// Author: Omen-of-Aecio
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10

package evaluator

import "fmt"

// ValueKind discriminates the variants of Value.
type ValueKind int

const (
	// KindAtom is a string containing no whitespace.
	KindAtom ValueKind = iota
	// KindBool is a true or false value.
	KindBool
	// KindCommand is a string that was enclosed by parentheses; it may
	// itself contain parentheses.
	KindCommand
	// KindF32 is a 32-bit floating point value.
	KindF32
	// KindI32 is a 32-bit signed integer value.
	KindI32
	// KindString is an arbitrary string.
	KindString
	// KindU8 is an unsigned 8-bit value.
	KindU8
	// KindUint is an unsigned machine-word value.
	KindUint
	// KindRaw is a byte blob, typically decoded from base64 input.
	KindRaw
)

func (k ValueKind) String() string {
	switch k {
	case KindAtom:
		return "atom"
	case KindBool:
		return "bool"
	case KindCommand:
		return "command"
	case KindF32:
		return "f32"
	case KindI32:
		return "i32"
	case KindString:
		return "string"
	case KindU8:
		return "u8"
	case KindUint:
		return "uint"
	case KindRaw:
		return "raw"
	default:
		return "invalid"
	}
}

// Value is one typed argument handed to a finalizer. Deciders parse
// raw tokens into values; which field is meaningful depends on Kind.
type Value struct {
	Kind ValueKind
	Str  string
	Bool bool
	F32  float32
	I32  int32
	U8   uint8
	Uint uint
	Raw  []byte
}

// AtomValue wraps a whitespace-free string.
func AtomValue(s string) Value { return Value{Kind: KindAtom, Str: s} }

// BoolValue wraps a boolean.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// CommandValue wraps the contents of a parenthesized group.
func CommandValue(s string) Value { return Value{Kind: KindCommand, Str: s} }

// F32Value wraps a 32-bit float.
func F32Value(f float32) Value { return Value{Kind: KindF32, F32: f} }

// I32Value wraps a 32-bit signed integer.
func I32Value(n int32) Value { return Value{Kind: KindI32, I32: n} }

// StringValue wraps an arbitrary string.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// U8Value wraps an unsigned 8-bit value.
func U8Value(n uint8) Value { return Value{Kind: KindU8, U8: n} }

// UintValue wraps an unsigned machine-word value.
func UintValue(n uint) Value { return Value{Kind: KindUint, Uint: n} }

// RawValue wraps a byte blob.
func RawValue(b []byte) Value { return Value{Kind: KindRaw, Raw: b} }

func (v Value) String() string {
	switch v.Kind {
	case KindAtom, KindCommand, KindString:
		return fmt.Sprintf("%s(%s)", v.Kind, v.Str)
	case KindBool:
		return fmt.Sprintf("bool(%t)", v.Bool)
	case KindF32:
		return fmt.Sprintf("f32(%v)", v.F32)
	case KindI32:
		return fmt.Sprintf("i32(%d)", v.I32)
	case KindU8:
		return fmt.Sprintf("u8(%d)", v.U8)
	case KindUint:
		return fmt.Sprintf("uint(%d)", v.Uint)
	case KindRaw:
		return fmt.Sprintf("raw(%d bytes)", len(v.Raw))
	default:
		return "invalid"
	}
}
