// File: stringx_test.go
// Title: String Utility Tests
// Description: Tests for the stringx helper functions.
// Author: Omen-of-Aecio
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10

package stringx

import (
	"testing"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n ", true},
		{"a", false},
		{"  a  ", false},
		{" ", true}, // non-breaking space is whitespace
	}

	for _, tt := range tests {
		if got := IsBlank(tt.input); got != tt.expected {
			t.Errorf("IsBlank(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
		if got := IsNotBlank(tt.input); got == tt.expected {
			t.Errorf("IsNotBlank(%q) = %v, expected %v", tt.input, got, !tt.expected)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		ellipsis string
		expected string
	}{
		{"no truncation needed", "short", 10, "...", "short"},
		{"exact fit", "12345", 5, "...", "12345"},
		{"truncated", "1234567890", 8, "...", "12345..."},
		{"zero max", "anything", 0, "...", ""},
		{"unicode aware", "aaaa", 3, ".", "aa."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLen, tt.ellipsis); got != tt.expected {
				t.Errorf("Truncate(%q, %d, %q) = %q, expected %q",
					tt.input, tt.maxLen, tt.ellipsis, got, tt.expected)
			}
		})
	}
}

func TestFirstNonBlank(t *testing.T) {
	if got := FirstNonBlank("", "  ", "value", "other"); got != "value" {
		t.Errorf("expected value, got %q", got)
	}
	if got := FirstNonBlank("", "  "); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}
