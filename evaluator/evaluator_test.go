// File: evaluator_test.go
// Title: Evaluator Tests
// Description: Covers statement evaluation, nested command
//              substitution, recursion bounding, the builtin
//              introspection commands, and error rendering.
// Author: Omen-of-Aecio
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10

package evaluator

import (
	"errors"
	"strings"
	"testing"

	"github.com/Omen-of-Aecio/gameshell/mapping"
	"github.com/Omen-of-Aecio/gameshell/parser"
)

type state struct {
	calls int
	last  []Value
}

func okHandler(output string) mapping.Finalizer[Value, *state] {
	return func(ctx *state, args []Value) (string, error) {
		ctx.calls++
		ctx.last = args
		return output, nil
	}
}

func anyF32ForTest() *mapping.Decider[Value] {
	return &mapping.Decider[Value]{
		Description: "<f32>",
		Decide: func(input []string, out *[]Value) (int, *mapping.Denial) {
			if len(input) < 1 {
				return 0, &mapping.Denial{Reason: "Too few elements: []"}
			}
			switch input[0] {
			case "1.23", "3.14159", "3", "0.6":
				*out = append(*out, F32Value(0))
				return 1, nil
			}
			return 0, &mapping.Denial{Reason: input[0]}
		},
	}
}

func manyI32ForTest() *mapping.Decider[Value] {
	return &mapping.Decider[Value]{
		Description: "<i32> ...",
		Decide: func(input []string, out *[]Value) (int, *mapping.Denial) {
			count := 0
			for _, token := range input {
				ok := len(token) > 0
				for i := 0; i < len(token); i++ {
					if token[i] < '0' || token[i] > '9' {
						ok = false
						break
					}
				}
				if !ok {
					break
				}
				*out = append(*out, I32Value(0))
				count++
			}
			return count, nil
		},
	}
}

func anyAtomForTest() *mapping.Decider[Value] {
	return &mapping.Decider[Value]{
		Description: "<atom>",
		Decide: func(input []string, out *[]Value) (int, *mapping.Denial) {
			if len(input) < 1 {
				return 0, &mapping.Denial{Reason: "Too few elements: []"}
			}
			*out = append(*out, AtomValue(input[0]))
			return 1, nil
		},
	}
}

func TestEvaluateSimple(t *testing.T) {
	eval := New(&state{})
	if err := eval.Register(mapping.Spec[Value, *state]{
		Path:      []mapping.Arm[Value]{{Literal: "call"}},
		Finalizer: okHandler(""),
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	feedback, err := eval.InterpretSingle("call")
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if feedback != Ok("") {
		t.Errorf("got %+v, want empty Ok", feedback)
	}
	if eval.Context().calls != 1 {
		t.Errorf("handler ran %d times", eval.Context().calls)
	}
}

func TestListAvailable(t *testing.T) {
	eval := New(&state{})
	specs := []mapping.Spec[Value, *state]{
		{
			Path: []mapping.Arm[Value]{
				{Literal: "call", Decider: anyF32ForTest()},
				{Literal: "something"},
			},
			Finalizer: okHandler("fafa"),
		},
		{
			Path: []mapping.Arm[Value]{
				{Literal: "call"},
				{Literal: "abc", Decider: manyI32ForTest()},
			},
			Finalizer: okHandler("fafa"),
		},
		{
			Path: []mapping.Arm[Value]{
				{Literal: "log"},
				{Literal: "context", Decider: manyI32ForTest()},
				{Literal: "level", Decider: anyAtomForTest()},
			},
			Finalizer: okHandler("fafa"),
		},
	}
	if err := eval.RegisterMany(specs); err != nil {
		t.Fatalf("register: %v", err)
	}
	feedback, err := eval.InterpretSingle("?")
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	want := Ok("call <f32> abc <i32> ...\ncall <f32> something \nlog context <i32> ... level <atom>")
	if feedback != want {
		t.Errorf("got %q, want %q", feedback.Message, want.Message)
	}
}

func TestListAvailableWithRegex(t *testing.T) {
	eval := New(&state{})
	specs := []mapping.Spec[Value, *state]{
		{
			Path: []mapping.Arm[Value]{
				{Literal: "call", Decider: anyF32ForTest()},
				{Literal: "something"},
			},
			Finalizer: okHandler("fafa"),
		},
		{
			Path: []mapping.Arm[Value]{
				{Literal: "call"},
				{Literal: "abc", Decider: manyI32ForTest()},
			},
			Finalizer: okHandler("fafa"),
		},
		{
			Path: []mapping.Arm[Value]{
				{Literal: "log"},
				{Literal: "context", Decider: manyI32ForTest()},
				{Literal: "level", Decider: anyAtomForTest()},
			},
			Finalizer: okHandler("fafa"),
		},
	}
	if err := eval.RegisterMany(specs); err != nil {
		t.Fatalf("register: %v", err)
	}

	feedback, err := eval.InterpretSingle("? call")
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if feedback != Ok("call <f32> abc <i32> ...\ncall <f32> something ") {
		t.Errorf("filtered list mismatch: %q", feedback.Message)
	}

	feedback, err = eval.InterpretSingle("? abc")
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if feedback != Ok("call <f32> abc <i32> ...") {
		t.Errorf("filtered list mismatch: %q", feedback.Message)
	}

	feedback, err = eval.InterpretSingle(`? \x`)
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if feedback.Kind != FeedbackErr || !strings.HasPrefix(feedback.Message, "Regex could not be compiled:") {
		t.Errorf("expected compile error, got %+v", feedback)
	}
}

func TestListRejectsMultipleFilters(t *testing.T) {
	eval := New(&state{})
	feedback, err := eval.InterpretSingle("? one two")
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if feedback.Kind != FeedbackErr {
		t.Fatalf("expected error feedback, got %+v", feedback)
	}
}

func TestEvaluateAnyF32(t *testing.T) {
	eval := New(&state{})
	if err := eval.Register(mapping.Spec[Value, *state]{
		Path:      []mapping.Arm[Value]{{Literal: "call", Decider: anyF32ForTest()}},
		Finalizer: okHandler(""),
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	feedback, err := eval.InterpretSingle("call")
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if feedback != Errf("Expected <f32> but got: Too few elements: []") {
		t.Errorf("got %q", feedback.Message)
	}
	feedback, _ = eval.InterpretSingle("call 3.14159")
	if feedback != Ok("") {
		t.Errorf("got %+v", feedback)
	}
	feedback, _ = eval.InterpretSingle("call alpha")
	if feedback != Errf("Expected <f32> but got: alpha") {
		t.Errorf("got %q", feedback.Message)
	}
}

func TestNestedSubstitution(t *testing.T) {
	eval := New(&state{})
	specs := []mapping.Spec[Value, *state]{
		{
			Path:      []mapping.Arm[Value]{{Literal: "inner"}},
			Finalizer: okHandler("world"),
		},
		{
			Path: []mapping.Arm[Value]{
				{Literal: "greet", Decider: anyAtomForTest()},
			},
			Finalizer: func(ctx *state, args []Value) (string, error) {
				ctx.calls++
				return "hello " + args[0].Str, nil
			},
		},
	}
	if err := eval.RegisterMany(specs); err != nil {
		t.Fatalf("register: %v", err)
	}
	feedback, err := eval.InterpretSingle("greet (inner)")
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if feedback != Ok("hello world") {
		t.Errorf("got %+v", feedback)
	}
}

func TestLiteralEscape(t *testing.T) {
	eval := New(&state{})
	if err := eval.Register(mapping.Spec[Value, *state]{
		Path:      []mapping.Arm[Value]{{Literal: "echo", Decider: anyAtomForTest()}},
		Finalizer: func(_ *state, args []Value) (string, error) { return args[0].Str, nil },
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	feedback, err := eval.InterpretSingle("echo (#inner)")
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if feedback != Ok("inner") {
		t.Errorf("escaped group evaluated instead of passed through: %+v", feedback)
	}
}

func TestNestedErrorAborts(t *testing.T) {
	eval := New(&state{})
	if err := eval.Register(mapping.Spec[Value, *state]{
		Path:      []mapping.Arm[Value]{{Literal: "outer", Decider: anyAtomForTest()}},
		Finalizer: okHandler("never"),
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	feedback, err := eval.InterpretSingle("outer (missing)")
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if feedback != Errf("Unrecognized mapping: missing") {
		t.Errorf("got %q", feedback.Message)
	}
	if eval.Context().calls != 0 {
		t.Error("outer handler ran despite nested failure")
	}
}

func TestRecursionCounting(t *testing.T) {
	depths := []int{}
	eval := New(&state{})
	var capture *Evaluator[*state]
	if err := eval.Register(mapping.Spec[Value, *state]{
		Path:      []mapping.Arm[Value]{{Literal: "call", Decider: anyAtomForTest()}},
		Finalizer: func(_ *state, args []Value) (string, error) {
			depths = append(depths, capture.Depth())
			return args[0].Str, nil
		},
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	capture = eval
	feedback, err := eval.InterpretSingle("call (call (call x))")
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if feedback != Ok("x") {
		t.Errorf("got %+v", feedback)
	}
	if len(depths) != 3 || depths[0] != 2 || depths[1] != 1 || depths[2] != 0 {
		t.Errorf("unexpected depth observations %v", depths)
	}
}

func TestRecursionLimit(t *testing.T) {
	eval := New(&state{}, WithMaxRecursionDepth[*state](2))
	if err := eval.Register(mapping.Spec[Value, *state]{
		Path:      []mapping.Arm[Value]{{Literal: "call", Decider: anyAtomForTest()}},
		Finalizer: func(_ *state, args []Value) (string, error) { return args[0].Str, nil },
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	feedback, err := eval.InterpretSingle("call (call (call (call x)))")
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if feedback.Kind != FeedbackErr || !strings.Contains(feedback.Message, "Recursion limit") {
		t.Errorf("expected recursion-limit error, got %+v", feedback)
	}
	if eval.Depth() != 0 {
		t.Errorf("depth counter leaked: %d", eval.Depth())
	}

	feedback, err = eval.InterpretSingle("call (call (call x))")
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if feedback != Ok("x") {
		t.Errorf("within-limit nesting failed: %+v", feedback)
	}
	if eval.Depth() != 0 {
		t.Errorf("depth counter leaked after success: %d", eval.Depth())
	}
}

func TestEmptyStatement(t *testing.T) {
	eval := New(&state{})
	feedback, err := eval.InterpretSingle("")
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if feedback != Errf("No input to parse") {
		t.Errorf("got %+v", feedback)
	}
}

func TestParseErrorsSurface(t *testing.T) {
	eval := New(&state{})
	if _, err := eval.InterpretSingle("call ("); !errors.Is(err, parser.ErrDanglingLeftParenthesis) {
		t.Errorf("expected dangling parenthesis error, got %v", err)
	}
	if _, err := eval.InterpretSingle("call )"); !errors.Is(err, parser.ErrPrematureRightParenthesis) {
		t.Errorf("expected premature parenthesis error, got %v", err)
	}
}

func TestNestedParseErrorBecomesFeedback(t *testing.T) {
	eval := New(&state{})
	if err := eval.Register(mapping.Spec[Value, *state]{
		Path:      []mapping.Arm[Value]{{Literal: "outer", Decider: anyAtomForTest()}},
		Finalizer: okHandler(""),
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	feedback, err := eval.InterpretSingle("outer ((lorem)")
	if err != nil {
		t.Fatalf("outer statement should parse: %v", err)
	}
	if feedback != Errf("Dangling left parenthesis") {
		t.Errorf("got %q", feedback.Message)
	}
}

func TestAutocomplete(t *testing.T) {
	eval := New(&state{})
	specs := []mapping.Spec[Value, *state]{
		{
			Path: []mapping.Arm[Value]{
				{Literal: "call", Decider: anyF32ForTest()},
				{Literal: "something"},
			},
			Finalizer: okHandler(""),
		},
		{
			Path:      []mapping.Arm[Value]{{Literal: "quit"}},
			Finalizer: okHandler(""),
		},
	}
	if err := eval.RegisterMany(specs); err != nil {
		t.Fatalf("register: %v", err)
	}

	feedback, err := eval.InterpretSingle("autocomplete")
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if feedback != Ok("call <f32>, quit (final)") {
		t.Errorf("root completion mismatch: %q", feedback.Message)
	}

	feedback, _ = eval.InterpretSingle("autocomplete call")
	if feedback != Ok("<f32>") {
		t.Errorf("decider description mismatch: %q", feedback.Message)
	}

	feedback, _ = eval.InterpretSingle("autocomplete call 0.6")
	if feedback != Ok("something (final)") {
		t.Errorf("post-decider completion mismatch: %q", feedback.Message)
	}

	feedback, _ = eval.InterpretSingle("autocomplete call 0.6 something")
	if feedback != Ok("No more handlers") {
		t.Errorf("leaf completion mismatch: %q", feedback.Message)
	}

	feedback, _ = eval.InterpretSingle("autocomplete bogus")
	if feedback != Errf("Unrecognized mapping: bogus") {
		t.Errorf("unknown completion mismatch: %q", feedback.Message)
	}
}

func TestAutocompleteSurfacesHelp(t *testing.T) {
	helpful := &mapping.Decider[Value]{
		Description: "<id>",
		Decide: func(input []string, _ *[]Value) (int, *mapping.Denial) {
			if len(input) >= 1 && input[0] == "usage" {
				return 0, &mapping.Denial{Reason: "usage requested", Help: "id must be a lowercase slug"}
			}
			return 1, nil
		},
	}
	eval := New(&state{})
	if err := eval.Register(mapping.Spec[Value, *state]{
		Path: []mapping.Arm[Value]{
			{Literal: "get", Decider: helpful},
			{Literal: "now"},
		},
		Finalizer: okHandler(""),
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	feedback, err := eval.InterpretSingle("autocomplete get usage extra")
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if feedback != Help("id must be a lowercase slug") {
		t.Errorf("expected help feedback, got %+v", feedback)
	}

	feedback, _ = eval.InterpretSingle("get usage now")
	if feedback != Errf("Expected <id> but got denied: id must be a lowercase slug") {
		t.Errorf("expected degraded error, got %+v", feedback)
	}
}

func TestUserRegistrationShadowsBuiltin(t *testing.T) {
	eval := New(&state{})
	if err := eval.Register(mapping.Spec[Value, *state]{
		Path:      []mapping.Arm[Value]{{Literal: "?"}},
		Finalizer: okHandler("shadowed"),
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	feedback, err := eval.InterpretSingle("?")
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if feedback != Ok("shadowed") {
		t.Errorf("builtin ran despite user registration: %+v", feedback)
	}
	feedback, _ = eval.InterpretSingle("? extra")
	if feedback != Errf("Unrecognized mapping: extra") {
		t.Errorf("shadowing should surface the lookup error: %q", feedback.Message)
	}
}

func TestInterpretMultiple(t *testing.T) {
	eval := New(&state{})
	if err := eval.Register(mapping.Spec[Value, *state]{
		Path:      []mapping.Arm[Value]{{Literal: "call", Decider: anyAtomForTest()}},
		Finalizer: func(ctx *state, args []Value) (string, error) {
			ctx.calls++
			return args[0].Str, nil
		},
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	feedback, err := eval.InterpretMultiple("call first\ncall second\n")
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if feedback != Ok("second") {
		t.Errorf("got %+v", feedback)
	}
	if eval.Context().calls != 2 {
		t.Errorf("expected 2 calls, got %d", eval.Context().calls)
	}
}

func TestFinalizerErrorBecomesErrFeedback(t *testing.T) {
	eval := New(&state{})
	if err := eval.Register(mapping.Spec[Value, *state]{
		Path: []mapping.Arm[Value]{{Literal: "fail"}},
		Finalizer: func(_ *state, _ []Value) (string, error) {
			return "", errors.New("handler exploded")
		},
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	feedback, err := eval.InterpretSingle("fail")
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if feedback != Errf("handler exploded") {
		t.Errorf("got %+v", feedback)
	}
}
