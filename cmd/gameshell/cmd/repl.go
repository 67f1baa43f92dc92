package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Omen-of-Aecio/gameshell/evaluator"
	"github.com/Omen-of-Aecio/gameshell/parser"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Starts an interactive shell on stdin/stdout",
	Long: `Starts an interactive shell with the bundled demo commands.

Statements with an open parenthesis continue on the next line. Type
"exit" or press Ctrl-D to leave. Type "?" to list commands.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	settings, logger, err := loadSettings()
	if err != nil {
		printError("failed to load configuration", err)
		return err
	}

	eval := evaluator.New(newShellState(),
		evaluator.WithMaxRecursionDepth[*shellState](settings.Shell.MaxRecursionDepth),
		evaluator.WithLogger[*shellState](logger),
	)
	if err := eval.RegisterMany(demoCommands()); err != nil {
		printError("failed to register commands", err)
		return err
	}

	fmt.Println("gameshell repl, \"?\" lists commands, \"exit\" leaves")
	scanner := bufio.NewScanner(os.Stdin)
	var pending strings.Builder
	for {
		if pending.Len() == 0 {
			fmt.Print("> ")
		} else {
			fmt.Print("... ")
		}
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		line := scanner.Text()
		if pending.Len() == 0 {
			if strings.TrimSpace(line) == "" {
				continue
			}
			if strings.TrimSpace(line) == "exit" {
				return nil
			}
		}
		pending.WriteString(line)

		statement := pending.String()
		feedback, err := eval.InterpretSingle(statement)
		if errors.Is(err, parser.ErrDanglingLeftParenthesis) {
			// Statement continues on the next line.
			pending.WriteString("\n")
			continue
		}
		pending.Reset()
		if err != nil {
			fmt.Printf("Parse error: %v\n", err)
			continue
		}
		printFeedback(feedback)
	}
}

func printFeedback(feedback evaluator.Feedback) {
	switch feedback.Kind {
	case evaluator.FeedbackOk:
		if feedback.Message == "" {
			fmt.Println("Ok")
		} else {
			fmt.Println(feedback.Message)
		}
	case evaluator.FeedbackHelp:
		if feedback.Message == "" {
			fmt.Println("Empty help message")
		} else {
			fmt.Println(feedback.Message)
		}
	case evaluator.FeedbackErr:
		fmt.Println("Err: " + feedback.Message)
	}
}
