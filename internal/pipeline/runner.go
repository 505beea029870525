package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/afero"

	"github.com/backmassage/renumber/internal/config"
	"github.com/backmassage/renumber/internal/display"
	"github.com/backmassage/renumber/internal/logging"
	"github.com/backmassage/renumber/internal/naming"
	"github.com/backmassage/renumber/internal/planner"
)

// Decider supplies the two yes/no decisions the pipeline requests from its
// caller: proceed with a clean plan, and continue while skipping conflicts.
// The pipeline never reads terminal input itself; tests inject scripted
// answers and --yes injects an always-yes decider.
type Decider interface {
	ConfirmProceed(pending int) bool
	ConfirmSkipConflicts(conflicts int) bool
}

// Run is the top-level entry point: parse the pattern, build the plan,
// preview it, ask for confirmation, execute, and report. Validation failures
// abort before any prompt; a declined prompt aborts with nothing touched.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, fsys afero.Fs, ui Decider) RunStats {
	var stats RunStats

	pat, err := naming.Parse(cfg.Pattern)
	if err != nil {
		log.Error("%v", err)
		stats.Failed++
		return stats
	}
	log.Debug(cfg.Verbose, "Pattern %q parsed: pad width %d", pat.String(), pat.Width())

	plan, err := planner.Build(fsys, cfg.Dir, pat, cfg.Extension, cfg.Start)
	if err != nil {
		if errors.Is(err, planner.ErrNoMatchingFiles) {
			// Reportable no-op, not a failure.
			log.Warn("%v", err)
			return stats
		}
		log.Error("%v", err)
		stats.Failed++
		return stats
	}

	stats.Total = len(plan.Entries)
	log.Info("Found %d .%s %s in %s",
		stats.Total, cfg.Extension, plural(stats.Total, "file"), cfg.Dir)
	for i := range plan.Entries {
		e := &plan.Entries[i]
		log.Debug(cfg.Verbose, "Plan[%d]: %s -> %s (%s)", i, e.Source, e.Target, e.Status)
	}

	display.PrintPreview(plan)
	if cfg.ShowDiff {
		display.PrintListingDiff(plan)
	}

	conflicts := plan.ConflictCount()
	if conflicts > 0 {
		log.Warn("Found %s", display.Pluralize(conflicts, "conflict"))
	}

	if cfg.DryRun {
		log.Success("[DRY] Would rename %s (%d skipped)", display.Pluralize(plan.PendingCount(), "file"), conflicts)
		stats.Renamed = plan.PendingCount()
		stats.Skipped = conflicts
		return stats
	}

	var opts Options
	if conflicts > 0 {
		if !ui.ConfirmSkipConflicts(conflicts) {
			log.Info("Aborted, nothing renamed.")
			return stats
		}
		opts.SkipConflicts = true
	} else if !ui.ConfirmProceed(plan.PendingCount()) {
		log.Info("Aborted, nothing renamed.")
		return stats
	}

	report, execErr := Execute(ctx, fsys, plan, opts, time.Now())
	logResults(log, report)

	stats.Renamed = report.Renamed
	stats.Skipped = report.Skipped
	stats.Unchanged = report.Unchanged

	if execErr != nil {
		if errors.Is(execErr, context.Canceled) {
			log.Warn("Interrupted; completed renames are recorded in the manifest")
		} else {
			log.Error("%v", execErr)
			stats.Failed++
		}
	}
	if report.ManifestPath != "" {
		log.Info("Backup manifest: %s", report.ManifestPath)
	}

	logSummary(log, &stats)
	return stats
}

func logResults(log *logging.Logger, report *Report) {
	for _, r := range report.Results {
		switch r.Outcome {
		case OutcomeRenamed:
			log.Success("Renamed: %s -> %s", r.Entry.Source, r.Entry.Target)
		case OutcomeSkipped:
			log.Warn("Skipped: %s -> %s [%s]", r.Entry.Source, r.Entry.Target, r.Entry.Reason)
		case OutcomeUnchanged:
			log.Info("Unchanged: %s (already matches the pattern)", r.Entry.Source)
		case OutcomeFailed:
			log.Error("%v", r.Err)
		}
	}
}

func logSummary(log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d renamed, %d skipped, %d unchanged, %d failed",
		stats.Renamed, stats.Skipped, stats.Unchanged, stats.Failed)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
