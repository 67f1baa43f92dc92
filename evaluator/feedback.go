// File: feedback.go
// Title: Evaluation Feedback
// Description: Defines the three-way result of evaluating a statement:
//              success output, error text, or help text.
// Author: Omen-of-Aecio
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10

package evaluator

import "fmt"

// FeedbackKind discriminates the variants of Feedback.
type FeedbackKind int

const (
	// FeedbackOk carries the successful output of a statement. The
	// output may be empty.
	FeedbackOk FeedbackKind = iota
	// FeedbackErr carries a human-readable error message.
	FeedbackErr
	// FeedbackHelp carries usage text produced by a decider during
	// autocompletion.
	FeedbackHelp
)

func (k FeedbackKind) String() string {
	switch k {
	case FeedbackOk:
		return "ok"
	case FeedbackErr:
		return "err"
	case FeedbackHelp:
		return "help"
	default:
		return "invalid"
	}
}

// Feedback is the result of evaluating one statement. The zero value
// is an Ok with empty output.
type Feedback struct {
	Kind    FeedbackKind
	Message string
}

// Ok builds a success feedback carrying the statement's output.
func Ok(message string) Feedback {
	return Feedback{Kind: FeedbackOk, Message: message}
}

// Errf builds an error feedback from a format string.
func Errf(format string, args ...any) Feedback {
	return Feedback{Kind: FeedbackErr, Message: fmt.Sprintf(format, args...)}
}

// Help builds a help feedback.
func Help(message string) Feedback {
	return Feedback{Kind: FeedbackHelp, Message: message}
}

// IsOk reports whether the feedback is a success.
func (f Feedback) IsOk() bool {
	return f.Kind == FeedbackOk
}
