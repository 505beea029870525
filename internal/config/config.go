// Package config holds runtime configuration: defaults, viper wiring, and
// validation. The Config value is threaded explicitly into every package that
// needs it; nothing in the core reads flags or environment on its own.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then overwritten by [FromViper] before being passed (by pointer) to the
// packages that need it.
type Config struct {
	// Rename parameters (from required flags).
	Dir       string // Target directory containing the files to rename.
	Pattern   string // Naming pattern with one {:0Nd} placeholder.
	Extension string // Extension filter, without the leading dot.
	Start     int    // First index assigned to the sorted files. Default: 1.

	// Behavior flags.
	DryRun    bool // Build and preview the plan, never execute.
	AssumeYes bool // Answer yes at both confirmation prompts.
	ShowDiff  bool // Also render the listing as a unified diff.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config with the documented defaults. Used as the
// base before flag and environment overrides are applied.
func DefaultConfig() Config {
	return Config{
		Start:     1,
		ColorMode: ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that the required rename parameters are present and that
// enum fields hold valid values. Pattern grammar and directory existence are
// validated later by the naming and planner packages, which own those rules.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	if c.Dir == "" {
		return errors.New("target directory is required (--path)")
	}
	if c.Pattern == "" {
		return errors.New("naming pattern is required (--pattern)")
	}
	if c.Extension == "" {
		return errors.New("extension filter is required (--extension)")
	}
	if strings.HasPrefix(c.Extension, ".") {
		return fmt.Errorf("extension must not include the leading dot (got %q)", c.Extension)
	}
	return nil
}
