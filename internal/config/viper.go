package config

// This file wires viper: default values, RENUMBER_* environment overrides,
// and extraction of the final Config. Flag binding happens in internal/cmd,
// which calls SetDefaults during command initialization and FromViper after
// flag parsing.

import (
	"strings"

	"github.com/spf13/viper"
)

// Viper keys. Flags in internal/cmd bind to these; env vars derive from them
// via the RENUMBER_ prefix (e.g. RENUMBER_DRY_RUN for "dry_run").
const (
	KeyPath      = "path"
	KeyPattern   = "pattern"
	KeyExtension = "extension"
	KeyStart     = "start"
	KeyDryRun    = "dry_run"
	KeyYes       = "yes"
	KeyDiff      = "diff"
	KeyVerbose   = "verbose"
	KeyColor     = "color"
	KeyLog       = "log"
)

// SetDefaults registers default values and environment handling with viper.
// Call once during command initialization, before flags are parsed.
func SetDefaults() {
	def := DefaultConfig()

	viper.SetDefault(KeyStart, def.Start)
	viper.SetDefault(KeyColor, string(def.ColorMode))

	viper.SetEnvPrefix("RENUMBER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// FromViper builds the effective Config from viper's merged view of defaults,
// environment variables, and bound flags.
func FromViper() Config {
	cfg := DefaultConfig()
	cfg.Dir = NormalizeDirArg(viper.GetString(KeyPath))
	cfg.Pattern = viper.GetString(KeyPattern)
	cfg.Extension = viper.GetString(KeyExtension)
	cfg.Start = viper.GetInt(KeyStart)
	cfg.DryRun = viper.GetBool(KeyDryRun)
	cfg.AssumeYes = viper.GetBool(KeyYes)
	cfg.ShowDiff = viper.GetBool(KeyDiff)
	cfg.Verbose = viper.GetBool(KeyVerbose)
	cfg.ColorMode = ColorMode(viper.GetString(KeyColor))
	cfg.LogFile = viper.GetString(KeyLog)
	return cfg
}
