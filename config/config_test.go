// File: config_test.go
// Title: Configuration Loading Tests
// Description: Covers defaults, TOML and YAML parsing, format
//              detection, environment overrides, and validation
//              failures.
// Author: Omen-of-Aecio
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10

package config

import (
	"os"
	"path/filepath"
	"testing"

	gsherror "github.com/Omen-of-Aecio/gameshell/core/error"
)

func TestDefaults(t *testing.T) {
	settings, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if settings.Shell.MaxRecursionDepth != DefaultMaxRecursionDepth {
		t.Errorf("depth = %d", settings.Shell.MaxRecursionDepth)
	}
	if settings.Shell.BufferSize != DefaultBufferSize {
		t.Errorf("buffer = %d", settings.Shell.BufferSize)
	}
	if settings.Server.Address != DefaultAddress {
		t.Errorf("address = %q", settings.Server.Address)
	}
	if settings.Log.Level != DefaultLogLevel || settings.Log.Format != DefaultLogFormat {
		t.Errorf("log = %+v", settings.Log)
	}
}

func TestLoadTOMLFile(t *testing.T) {
	content := `
[shell]
max_recursion_depth = 7
buffer_size = 256

[server]
address = "0.0.0.0:9000"

[log]
level = "debug"
`
	path := filepath.Join(t.TempDir(), "gameshell.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	settings, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if settings.Shell.MaxRecursionDepth != 7 || settings.Shell.BufferSize != 256 {
		t.Errorf("shell = %+v", settings.Shell)
	}
	if settings.Server.Address != "0.0.0.0:9000" {
		t.Errorf("address = %q", settings.Server.Address)
	}
	if settings.Log.Level != "debug" {
		t.Errorf("level = %q", settings.Log.Level)
	}
	// Unset values keep their defaults.
	if settings.Log.Format != DefaultLogFormat {
		t.Errorf("format = %q", settings.Log.Format)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	content := `
shell:
  buffer_size: 128
server:
  address: "127.0.0.1:7000"
  websocket_address: "127.0.0.1:7001"
log:
  format: json
`
	path := filepath.Join(t.TempDir(), "gameshell.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	settings, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if settings.Shell.BufferSize != 128 {
		t.Errorf("buffer = %d", settings.Shell.BufferSize)
	}
	if settings.Server.WebSocketAddress != "127.0.0.1:7001" {
		t.Errorf("websocket = %q", settings.Server.WebSocketAddress)
	}
	if settings.Log.Format != "json" {
		t.Errorf("format = %q", settings.Log.Format)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !gsherror.HasCode(err, gsherror.CodeMissingConfig) {
		t.Errorf("unexpected code: %v", err)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("[shell\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error")
	}
	if !gsherror.HasCode(err, gsherror.CodeInvalidConfig) {
		t.Errorf("unexpected code: %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GAMESHELL_SHELL_BUFFER_SIZE", "512")
	t.Setenv("GAMESHELL_SERVER_ADDRESS", "10.0.0.1:1234")
	t.Setenv("GAMESHELL_LOG_LEVEL", "warn")
	settings, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if settings.Shell.BufferSize != 512 {
		t.Errorf("buffer = %d", settings.Shell.BufferSize)
	}
	if settings.Server.Address != "10.0.0.1:1234" {
		t.Errorf("address = %q", settings.Server.Address)
	}
	if settings.Log.Level != "warn" {
		t.Errorf("level = %q", settings.Log.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"zero recursion depth", func(s *Settings) { s.Shell.MaxRecursionDepth = 0 }},
		{"tiny buffer", func(s *Settings) { s.Shell.BufferSize = 16 }},
		{"blank address", func(s *Settings) { s.Server.Address = "  " }},
		{"bad level", func(s *Settings) { s.Log.Level = "chatty" }},
		{"bad format", func(s *Settings) { s.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := Default()
			tt.mutate(settings)
			if err := settings.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadFromString(t *testing.T) {
	settings, err := LoadFromString("[shell]\nmax_recursion_depth = 3\n", FormatTOML)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if settings.Shell.MaxRecursionDepth != 3 {
		t.Errorf("depth = %d", settings.Shell.MaxRecursionDepth)
	}
}

func TestLoggerFromSettings(t *testing.T) {
	settings := Default()
	settings.Log.Level = "error"
	if logger := settings.Logger(); logger == nil {
		t.Fatal("nil logger")
	}
}
