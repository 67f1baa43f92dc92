// File: deciders.go
// Title: Prebuilt Argument Deciders
// Description: Provides ready-made deciders for common argument shapes
//              used when registering command specifications.
// Author: Omen-of-Aecio
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10

// Package deciders contains prebuilt deciders for use in command
// specifications: single typed arguments, greedy sequences, and a few
// fixed-arity combinations.
//
// A custom decider is just a mapping.Decider[evaluator.Value] whose
// function validates its input tokens, appends parsed values to the
// output slice, and reports how many tokens it consumed:
//
//	var i32Above123 = &mapping.Decider[evaluator.Value]{
//		Description: "<i32-over-123>",
//		Decide: func(input []string, out *[]evaluator.Value) (int, *mapping.Denial) {
//			if len(input) == 0 {
//				return 0, &mapping.Denial{Reason: "no input received"}
//			}
//			n, err := strconv.ParseInt(input[0], 10, 32)
//			if err != nil {
//				return 0, &mapping.Denial{Reason: err.Error()}
//			}
//			if n <= 123 {
//				return 0, &mapping.Denial{Reason: "number is not >123"}
//			}
//			*out = append(*out, evaluator.I32Value(int32(n)))
//			return 1, nil
//		},
//	}
package deciders

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"unicode"

	"github.com/Omen-of-Aecio/gameshell/evaluator"
	"github.com/Omen-of-Aecio/gameshell/mapping"
)

// Dec is the decider shape used throughout this package.
type Dec = mapping.Decider[evaluator.Value]

// Please keep this list sorted.

// AnyAtom accepts a single string which does not contain whitespace.
var AnyAtom = &Dec{Description: "<atom>", Decide: anyAtom}

// AnyBase64 accepts any base64 string and yields its decoded bytes.
var AnyBase64 = &Dec{Description: "<base64>", Decide: anyBase64}

// AnyBool accepts a single boolean.
var AnyBool = &Dec{Description: "<true/false>", Decide: anyBool}

// AnyF32 accepts a single f32.
var AnyF32 = &Dec{Description: "<f32>", Decide: anyF32}

// AnyI32 accepts a single i32.
var AnyI32 = &Dec{Description: "<i32>", Decide: anyI32}

// AnyString accepts a single string.
var AnyString = &Dec{Description: "<string>", Decide: anyString}

// AnyU8 accepts a single u8.
var AnyU8 = &Dec{Description: "<u8>", Decide: anyU8}

// AnyUint accepts a single unsigned machine-word integer.
var AnyUint = &Dec{Description: "<usize>", Decide: anyUint}

// IgnoreAll consumes all remaining arguments without producing values.
var IgnoreAll = &Dec{Description: "<anything> ...", Decide: ignoreAll}

// ManyI32 accepts a leading run of i32s.
var ManyI32 = &Dec{Description: "<i32> ...", Decide: manyI32}

// ManyString accepts any number of strings.
var ManyString = &Dec{Description: "<string> ...", Decide: manyString}

// PositiveF32 accepts a single non-negative f32.
var PositiveF32 = &Dec{Description: "<f32>=0>", Decide: positiveF32}

// TwoStrings accepts exactly two strings.
var TwoStrings = &Dec{Description: "<string> <string>", Decide: twoStrings}

// ---

func anyAtom(input []string, out *[]evaluator.Value) (int, *mapping.Denial) {
	if denial := atLeast(input, 1); denial != nil {
		return 0, denial
	}
	for _, r := range input[0] {
		if unicode.IsSpace(r) {
			return 0, &mapping.Denial{Reason: input[0]}
		}
	}
	*out = append(*out, evaluator.AtomValue(input[0]))
	return 1, nil
}

func anyBase64(input []string, out *[]evaluator.Value) (int, *mapping.Denial) {
	if denial := atLeast(input, 1); denial != nil {
		return 0, denial
	}
	decoded, err := base64.StdEncoding.DecodeString(input[0])
	if err != nil {
		return 0, &mapping.Denial{Reason: err.Error()}
	}
	*out = append(*out, evaluator.RawValue(decoded))
	return 1, nil
}

func anyBool(input []string, out *[]evaluator.Value) (int, *mapping.Denial) {
	if denial := atLeast(input, 1); denial != nil {
		return 0, denial
	}
	switch input[0] {
	case "true":
		*out = append(*out, evaluator.BoolValue(true))
	case "false":
		*out = append(*out, evaluator.BoolValue(false))
	default:
		return 0, &mapping.Denial{Reason: "got string: " + input[0]}
	}
	return 1, nil
}

func anyF32(input []string, out *[]evaluator.Value) (int, *mapping.Denial) {
	if denial := atLeast(input, 1); denial != nil {
		return 0, denial
	}
	num, err := strconv.ParseFloat(input[0], 32)
	if err != nil {
		return 0, &mapping.Denial{Reason: "got string: " + input[0]}
	}
	*out = append(*out, evaluator.F32Value(float32(num)))
	return 1, nil
}

func anyI32(input []string, out *[]evaluator.Value) (int, *mapping.Denial) {
	if denial := atLeast(input, 1); denial != nil {
		return 0, denial
	}
	num, err := strconv.ParseInt(input[0], 10, 32)
	if err != nil {
		return 0, &mapping.Denial{Reason: "got string: " + input[0]}
	}
	*out = append(*out, evaluator.I32Value(int32(num)))
	return 1, nil
}

func anyString(input []string, out *[]evaluator.Value) (int, *mapping.Denial) {
	if denial := atLeast(input, 1); denial != nil {
		return 0, denial
	}
	*out = append(*out, evaluator.StringValue(input[0]))
	return 1, nil
}

func anyU8(input []string, out *[]evaluator.Value) (int, *mapping.Denial) {
	if denial := atLeast(input, 1); denial != nil {
		return 0, denial
	}
	num, err := strconv.ParseUint(input[0], 10, 8)
	if err != nil {
		return 0, &mapping.Denial{Reason: "got string: " + input[0]}
	}
	*out = append(*out, evaluator.U8Value(uint8(num)))
	return 1, nil
}

func anyUint(input []string, out *[]evaluator.Value) (int, *mapping.Denial) {
	if denial := atLeast(input, 1); denial != nil {
		return 0, denial
	}
	num, err := strconv.ParseUint(input[0], 10, 64)
	if err != nil {
		return 0, &mapping.Denial{Reason: "got string: " + input[0]}
	}
	*out = append(*out, evaluator.UintValue(uint(num)))
	return 1, nil
}

func ignoreAll(input []string, _ *[]evaluator.Value) (int, *mapping.Denial) {
	return len(input), nil
}

func manyI32(input []string, out *[]evaluator.Value) (int, *mapping.Denial) {
	count := 0
	for _, token := range input {
		num, err := strconv.ParseInt(token, 10, 32)
		if err != nil {
			break
		}
		*out = append(*out, evaluator.I32Value(int32(num)))
		count++
	}
	return count, nil
}

func manyString(input []string, out *[]evaluator.Value) (int, *mapping.Denial) {
	for _, token := range input {
		*out = append(*out, evaluator.StringValue(token))
	}
	return len(input), nil
}

func positiveF32(input []string, out *[]evaluator.Value) (int, *mapping.Denial) {
	if denial := atLeast(input, 1); denial != nil {
		return 0, denial
	}
	num, err := strconv.ParseFloat(input[0], 32)
	if err != nil || num < 0 {
		return 0, &mapping.Denial{Reason: "got string: " + input[0]}
	}
	*out = append(*out, evaluator.F32Value(float32(num)))
	return 1, nil
}

func twoStrings(input []string, out *[]evaluator.Value) (int, *mapping.Denial) {
	if len(input) == 1 {
		return 0, &mapping.Denial{Reason: "expected 1 more string"}
	}
	if denial := atLeast(input, 2); denial != nil {
		return 0, denial
	}
	*out = append(*out, evaluator.StringValue(input[0]), evaluator.StringValue(input[1]))
	return 2, nil
}

// ---

func atLeast(input []string, want int) *mapping.Denial {
	if len(input) < want {
		return &mapping.Denial{
			Reason: fmt.Sprintf("Too few elements: %v, length: %d, expected: %d", input, len(input), want),
		}
	}
	return nil
}
