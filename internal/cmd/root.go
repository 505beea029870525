// Package cmd defines the renumber CLI surface: flag parsing, viper binding,
// signal handling, and handoff to the pipeline. All decision logic lives in
// the planner and pipeline packages; this is glue.
package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/backmassage/renumber/internal/config"
	"github.com/backmassage/renumber/internal/display"
	"github.com/backmassage/renumber/internal/logging"
	"github.com/backmassage/renumber/internal/pipeline"
	"github.com/backmassage/renumber/internal/prompt"
)

// errRunFailed maps a run with hard failures to a non-zero exit code without
// repeating the details the logger already printed.
var errRunFailed = errors.New("completed with failures")

const keyNoColor = "no_color"

// Execute runs the root command. A user-declined prompt and a no-matching-files
// run both return nil (exit 0); validation and execution failures return an
// error (exit 1).
func Execute(version string) error {
	cobra.OnInitialize(config.SetDefaults)
	return newRootCmd(version).Execute()
}

func newRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "renumber",
		Short: "Batch-rename files in a directory to a sequential numbering pattern",
		Long: `Renumber renames every file in a directory that matches an extension
filter to a numbering pattern such as 'video_{:03d}', after previewing the
full rename plan, classifying conflicts, and asking for confirmation. Every
completed rename is appended to a timestamped backup manifest inside the
directory, which is the recovery record for the run.`,
		Example: `  renumber -d ./videos -p 'video_{:03d}' -e mp4
  renumber -d ./photos -p 'IMG_{:02d}' -e jpg -s 10 --dry-run`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	f := cmd.Flags()
	f.StringP("path", "d", "", "directory containing the files to rename (required)")
	f.StringP("pattern", "p", "", "naming pattern with one {:0Nd} placeholder, e.g. 'video_{:03d}' (required)")
	f.StringP("extension", "e", "", "file extension to filter, without the dot, e.g. 'mp4' (required)")
	f.IntP("start", "s", 1, "starting index for numbering")
	f.Bool("dry-run", false, "preview the plan only; never rename")
	f.BoolP("yes", "y", false, "assume yes at both confirmation prompts")
	f.Bool("diff", false, "also show the directory listing as a unified diff")
	f.String("color", "auto", "color output: auto | always | never")
	f.Bool("no-color", false, "disable colored output (same as --color=never)")
	f.BoolP("verbose", "v", false, "verbose output")
	f.StringP("log", "l", "", "append logs to file")

	bind := func(key, flag string) { _ = viper.BindPFlag(key, f.Lookup(flag)) }
	bind(config.KeyPath, "path")
	bind(config.KeyPattern, "pattern")
	bind(config.KeyExtension, "extension")
	bind(config.KeyStart, "start")
	bind(config.KeyDryRun, "dry-run")
	bind(config.KeyYes, "yes")
	bind(config.KeyDiff, "diff")
	bind(config.KeyColor, "color")
	bind(keyNoColor, "no-color")
	bind(config.KeyVerbose, "verbose")
	bind(config.KeyLog, "log")

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	cfg := config.FromViper()
	if viper.GetBool(keyNoColor) {
		cfg.ColorMode = config.ColorNever
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	display.PrintBanner()
	log.Info("Dir: %s", cfg.Dir)
	log.Info("Pattern: %s | extension: .%s | start: %d", cfg.Pattern, cfg.Extension, cfg.Start)
	if cfg.DryRun {
		log.Warn("DRY RUN - no files will be renamed")
	}
	log.Info("")

	// Cancel the pipeline on SIGINT/SIGTERM so it can stop between entries
	// and leave the manifest intact.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, stopping before the next entry")
		cancel()
	}()

	var ui pipeline.Decider = prompt.NewTerminal()
	if cfg.AssumeYes {
		ui = prompt.Fixed(true)
	}

	stats := pipeline.Run(ctx, &cfg, log, afero.NewOsFs(), ui)
	if !stats.Clean() {
		return errRunFailed
	}
	return nil
}
