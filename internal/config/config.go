package config

import (
	"fmt"
	"log/slog"
)

// OutputMode selects how inspection results are rendered.
type OutputMode string

const (
	OutputAuto OutputMode = "auto" // text on a terminal, yaml when piped
	OutputYAML OutputMode = "yaml"
	OutputText OutputMode = "text"
)

// MCPConfig configures the MCP server.
type MCPConfig struct {
	// LogRequests logs every tool invocation to stderr.
	LogRequests bool `yaml:"log_requests"`
}

// Config is the winbridge inspector configuration.
type Config struct {
	Output   OutputMode `yaml:"output"`
	LogLevel string     `yaml:"log_level"`
	MCP      MCPConfig  `yaml:"mcp"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Output:   OutputAuto,
		LogLevel: "info",
	}
}

// Validate checks the configuration for values we cannot act on.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputAuto, OutputYAML, OutputText:
	default:
		return fmt.Errorf("invalid output mode %q (valid: auto, yaml, text)", c.Output)
	}
	if _, err := c.slogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel returns the configured log level. Call Validate first; unknown
// levels fall back to info here.
func (c *Config) SlogLevel() slog.Level {
	level, err := c.slogLevel()
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func (c *Config) slogLevel() (slog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q (valid: debug, info, warn, error)", c.LogLevel)
	}
}
