package cmd

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Omen-of-Aecio/gameshell/deciders"
	"github.com/Omen-of-Aecio/gameshell/evaluator"
	"github.com/Omen-of-Aecio/gameshell/mapping"
)

// shellState is the context value for the bundled demo command set.
type shellState struct {
	vars map[string]string
}

func newShellState() *shellState {
	return &shellState{vars: make(map[string]string)}
}

// demoCommands is a small command set for the repl and serve
// commands, useful for exploring the language before embedding the
// library with your own handlers.
func demoCommands() []mapping.Spec[evaluator.Value, *shellState] {
	return []mapping.Spec[evaluator.Value, *shellState]{
		{
			Path: []mapping.Arm[evaluator.Value]{
				{Literal: "echo", Decider: deciders.ManyString},
			},
			Finalizer: func(ctx *shellState, args []evaluator.Value) (string, error) {
				parts := make([]string, len(args))
				for i, arg := range args {
					parts[i] = arg.Str
				}
				return strings.Join(parts, " "), nil
			},
		},
		{
			Path: []mapping.Arm[evaluator.Value]{
				{Literal: "add", Decider: deciders.ManyI32},
			},
			Finalizer: func(ctx *shellState, args []evaluator.Value) (string, error) {
				var sum int32
				for _, arg := range args {
					sum += arg.I32
				}
				return fmt.Sprint(sum), nil
			},
		},
		{
			Path: []mapping.Arm[evaluator.Value]{
				{Literal: "sqrt", Decider: deciders.PositiveF32},
			},
			Finalizer: func(ctx *shellState, args []evaluator.Value) (string, error) {
				return fmt.Sprint(float32(math.Sqrt(float64(args[0].F32)))), nil
			},
		},
		{
			Path: []mapping.Arm[evaluator.Value]{
				{Literal: "set", Decider: deciders.TwoStrings},
			},
			Finalizer: func(ctx *shellState, args []evaluator.Value) (string, error) {
				ctx.vars[args[0].Str] = args[1].Str
				return "", nil
			},
		},
		{
			Path: []mapping.Arm[evaluator.Value]{
				{Literal: "get", Decider: deciders.AnyAtom},
			},
			Finalizer: func(ctx *shellState, args []evaluator.Value) (string, error) {
				value, ok := ctx.vars[args[0].Str]
				if !ok {
					return "", fmt.Errorf("no such variable: %s", args[0].Str)
				}
				return value, nil
			},
		},
		{
			Path: []mapping.Arm[evaluator.Value]{{Literal: "vars"}},
			Finalizer: func(ctx *shellState, args []evaluator.Value) (string, error) {
				names := make([]string, 0, len(ctx.vars))
				for name := range ctx.vars {
					names = append(names, name)
				}
				sort.Strings(names)
				return strings.Join(names, "\n"), nil
			},
		},
	}
}
