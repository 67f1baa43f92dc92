// File: logger_test.go
// Title: Logger Unit Tests
// Description: Tests for the structured logger covering level filtering,
//              contextual fields, output formats, and level/format parsing.
// Author: Omen-of-Aecio
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name     string
		minLevel Level
		logLevel Level
		expected bool
	}{
		{"trace at trace", LevelTrace, LevelTrace, true},
		{"debug below info", LevelInfo, LevelDebug, false},
		{"info at info", LevelInfo, LevelInfo, true},
		{"error above warn", LevelWarn, LevelError, true},
		{"warn below error", LevelError, LevelWarn, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWithConfig(Config{Level: tt.minLevel, Output: &buf})
			logger.log(tt.logLevel, "message", nil)

			logged := buf.Len() > 0
			if logged != tt.expected {
				t.Errorf("expected logged=%v, got %v", tt.expected, logged)
			}
		})
	}
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewWithConfig(Config{Level: LevelDebug, Output: &buf})
	child := parent.WithField("component", "gameshell-server")

	parent.Info("from parent")
	if strings.Contains(buf.String(), "component") {
		t.Errorf("parent logger picked up child field: %q", buf.String())
	}

	buf.Reset()
	child.Info("from child")
	if !strings.Contains(buf.String(), "component=gameshell-server") {
		t.Errorf("child logger missing field: %q", buf.String())
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelDebug,
		Format: FormatJSON,
		Output: &buf,
		Name:   "test",
	})

	logger.ErrorWithErr("session failed", errors.New("buffer full"), Fields{"sessionId": "abc"})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry["level"] != "error" {
		t.Errorf("expected level error, got %v", entry["level"])
	}
	if entry["logger"] != "test" {
		t.Errorf("expected logger test, got %v", entry["logger"])
	}
	if entry["sessionId"] != "abc" {
		t.Errorf("expected sessionId abc, got %v", entry["sessionId"])
	}
	if entry["error"] != "buffer full" {
		t.Errorf("expected error field, got %v", entry["error"])
	}
}

func TestTextFormatFieldOrder(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{Level: LevelDebug, Output: &buf})

	logger.Info("msg", Fields{"zebra": 1, "alpha": 2})
	first := buf.String()

	buf.Reset()
	logger.Info("msg", Fields{"alpha": 2, "zebra": 1})
	second := buf.String()

	// Timestamps differ, fields must not
	if first[24:] != second[24:] {
		t.Errorf("field order is not deterministic:\n%q\n%q", first, second)
	}
	if !strings.Contains(first, "alpha=2 zebra=1") {
		t.Errorf("expected sorted fields, got %q", first)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input     string
		expected  Level
		expectErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"fatal", LevelFatal, false},
		{"bogus", LevelInfo, true},
	}

	for _, tt := range tests {
		level, err := ParseLevel(tt.input)
		if (err != nil) != tt.expectErr {
			t.Errorf("ParseLevel(%q): unexpected error state: %v", tt.input, err)
		}
		if level != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", tt.input, level, tt.expected)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("json"); err != nil || f != FormatJSON {
		t.Errorf("ParseFormat(json) = %v, %v", f, err)
	}
	if f, err := ParseFormat("text"); err != nil || f != FormatText {
		t.Errorf("ParseFormat(text) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestDiscardLoggerIsSilent(t *testing.T) {
	logger := Discard()
	logger.Error("should not appear anywhere")
	if logger.IsLevelEnabled(LevelError) {
		t.Error("discard logger should not enable error level")
	}
}
