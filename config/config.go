// File: config.go
// Title: Shell Configuration Loading
// Description: Implements loading, environment overriding, and
//              validation of the shell's settings from TOML and YAML
//              files.
// Author: Omen-of-Aecio
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-10

// Package config loads the shell's settings.
//
// Settings come from a TOML or YAML file, with the format detected
// from the file extension, and individual values can be overridden
// through GAMESHELL_-prefixed environment variables such as
// GAMESHELL_SERVER_ADDRESS. Absent values fall back to defaults, so
// an empty file and no file at all are both valid starting points.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	gsherror "github.com/Omen-of-Aecio/gameshell/core/error"
	"github.com/Omen-of-Aecio/gameshell/core/log"
	"github.com/Omen-of-Aecio/gameshell/utils/stringx"
)

// EnvPrefix is prepended to every environment override key.
const EnvPrefix = "GAMESHELL"

// Defaults.
const (
	DefaultMaxRecursionDepth = 100
	DefaultBufferSize        = 1024
	DefaultAddress           = "127.0.0.1:32124"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
)

// MinBufferSize is the smallest accepted statement buffer. Anything
// smaller cannot hold a useful statement plus its newline.
const MinBufferSize = 64

// Format represents the configuration file format.
type Format int

const (
	// FormatTOML represents TOML format (default).
	FormatTOML Format = iota

	// FormatYAML represents YAML format.
	FormatYAML

	// FormatAuto detects the format from the file extension.
	FormatAuto
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// ShellSettings configures the evaluator and session buffers.
type ShellSettings struct {
	MaxRecursionDepth int `toml:"max_recursion_depth" yaml:"max_recursion_depth"`
	BufferSize        int `toml:"buffer_size" yaml:"buffer_size"`
}

// ServerSettings configures the network listeners.
type ServerSettings struct {
	Address          string `toml:"address" yaml:"address"`
	WebSocketAddress string `toml:"websocket_address" yaml:"websocket_address"`
}

// LogSettings configures diagnostic output.
type LogSettings struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// Settings is the full configuration surface of the shell.
type Settings struct {
	Shell  ShellSettings  `toml:"shell" yaml:"shell"`
	Server ServerSettings `toml:"server" yaml:"server"`
	Log    LogSettings    `toml:"log" yaml:"log"`
}

// Default returns the settings used when no file and no environment
// overrides are present.
func Default() *Settings {
	return &Settings{
		Shell: ShellSettings{
			MaxRecursionDepth: DefaultMaxRecursionDepth,
			BufferSize:        DefaultBufferSize,
		},
		Server: ServerSettings{
			Address: DefaultAddress,
		},
		Log: LogSettings{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Load reads settings from the given file, applies environment
// overrides, and validates the result. An empty path yields the
// defaults plus environment overrides.
func Load(filePath string) (*Settings, error) {
	settings := Default()

	if stringx.IsNotBlank(filePath) {
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			return nil, gsherror.New(fmt.Sprintf("config file not found: %s", filePath)).
				WithCode(gsherror.CodeMissingConfig).
				WithOperation("config.Load").
				WithDetail("filePath", filePath)
		}
		content, err := os.ReadFile(filePath)
		if err != nil {
			return nil, gsherror.Wrap(err, "failed to read config file").
				WithCode(gsherror.CodeConfigError).
				WithOperation("config.Load").
				WithDetail("filePath", filePath)
		}
		if err := parseContent(content, detectFormat(filePath), settings); err != nil {
			return nil, gsherror.Wrap(err, "failed to parse config file").
				WithCode(gsherror.CodeInvalidConfig).
				WithOperation("config.Load").
				WithDetail("filePath", filePath)
		}
	}

	settings.applyEnv()

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// LoadFromString parses settings from a string in the given format,
// applies environment overrides, and validates the result.
func LoadFromString(content string, format Format) (*Settings, error) {
	settings := Default()
	if format == FormatAuto {
		format = FormatTOML
	}
	if err := parseContent([]byte(content), format, settings); err != nil {
		return nil, gsherror.Wrap(err, "failed to parse config from string").
			WithCode(gsherror.CodeInvalidConfig).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}
	settings.applyEnv()
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// detectFormat determines the configuration format from the file
// extension. Unknown extensions default to TOML.
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func parseContent(content []byte, format Format, settings *Settings) error {
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, settings); err != nil {
			return gsherror.Wrap(err, "TOML parse error").
				WithCode(gsherror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, settings); err != nil {
			return gsherror.Wrap(err, "YAML parse error").
				WithCode(gsherror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	default:
		return gsherror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(gsherror.CodeInvalidConfig).
			WithOperation("config.parseContent")
	}
	return nil
}

// applyEnv overrides individual settings from the environment.
// Keys follow the section and field names: for example
// GAMESHELL_SHELL_BUFFER_SIZE and GAMESHELL_LOG_LEVEL.
func (s *Settings) applyEnv() {
	envInt(&s.Shell.MaxRecursionDepth, "SHELL_MAX_RECURSION_DEPTH")
	envInt(&s.Shell.BufferSize, "SHELL_BUFFER_SIZE")
	envString(&s.Server.Address, "SERVER_ADDRESS")
	envString(&s.Server.WebSocketAddress, "SERVER_WEBSOCKET_ADDRESS")
	envString(&s.Log.Level, "LOG_LEVEL")
	envString(&s.Log.Format, "LOG_FORMAT")
}

func envString(target *string, key string) {
	if value := os.Getenv(EnvPrefix + "_" + key); value != "" {
		*target = value
	}
}

func envInt(target *int, key string) {
	if value := os.Getenv(EnvPrefix + "_" + key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			*target = parsed
		}
	}
}

// Validate checks the settings for internal consistency.
func (s *Settings) Validate() error {
	if s.Shell.MaxRecursionDepth < 1 {
		return gsherror.New(fmt.Sprintf("max recursion depth must be at least 1, got %d", s.Shell.MaxRecursionDepth)).
			WithCode(gsherror.CodeValueOutOfRange).
			WithOperation("config.Validate")
	}
	if s.Shell.BufferSize < MinBufferSize {
		return gsherror.New(fmt.Sprintf("buffer size must be at least %d, got %d", MinBufferSize, s.Shell.BufferSize)).
			WithCode(gsherror.CodeValueOutOfRange).
			WithOperation("config.Validate")
	}
	if stringx.IsBlank(s.Server.Address) {
		return gsherror.New("server address cannot be empty").
			WithCode(gsherror.CodeValidationFailed).
			WithOperation("config.Validate")
	}
	if _, err := log.ParseLevel(s.Log.Level); err != nil {
		return gsherror.Wrap(err, "invalid log level").
			WithCode(gsherror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("level", s.Log.Level)
	}
	if _, err := log.ParseFormat(s.Log.Format); err != nil {
		return gsherror.Wrap(err, "invalid log format").
			WithCode(gsherror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("format", s.Log.Format)
	}
	return nil
}

// Logger builds a logger matching the log settings. Validate must
// have accepted the settings first.
func (s *Settings) Logger() *log.Logger {
	level, err := log.ParseLevel(s.Log.Level)
	if err != nil {
		level = log.LevelInfo
	}
	format, err := log.ParseFormat(s.Log.Format)
	if err != nil {
		format = log.FormatText
	}
	return log.New().WithLevel(level).WithFormat(format)
}
