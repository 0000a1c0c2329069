// Package config provides configuration management for surfacegen commands.
package config

import (
	"github.com/solatis/surfacegen/internal/enum"
	"github.com/solatis/surfacegen/internal/render"
)

// Output formats accepted by print and store get.
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatProto = "proto"
)

// MaxIndent is the widest output.indent accepted.
const MaxIndent = render.MaxIndent

// Formats is the closed set of output formats.
var Formats = enum.New(FormatJSON, FormatYAML, FormatProto)

// LogLevels and LogFormats mirror the --log-level and --log-format flags.
var (
	LogLevels  = enum.New("debug", "info", "warn", "error")
	LogFormats = enum.New("json", "text")
)

// OutputConfig controls how trees are written to stdout.
type OutputConfig struct {
	Indent int
	Format string
}

// DatabaseConfig locates the tree library.
type DatabaseConfig struct {
	URL string
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string
	Format string
}

// Config holds configuration shared by all subcommands.
type Config struct {
	Output   OutputConfig
	Database DatabaseConfig
	Log      LogConfig
}

// DefaultConfig returns configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Indent: 4,
			Format: FormatJSON,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks indent range and the closed value sets.
func (c *Config) Validate() error {
	return validateConfig(c)
}
