package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/afero"

	"github.com/backmassage/renumber/internal/planner"
)

// Outcome classifies what happened to one entry during execution.
type Outcome int

const (
	OutcomeRenamed   Outcome = iota // Rename performed.
	OutcomeSkipped                  // Conflict entry, omitted from execution.
	OutcomeUnchanged                // Self-rename, nothing to do.
	OutcomeFailed                   // Filesystem rename failed; run stopped here.
)

// EntryResult is the per-entry execution record exposed to the caller for
// reporting.
type EntryResult struct {
	Entry   *planner.Entry
	Outcome Outcome
	Err     error // Set only for OutcomeFailed.
}

// Report aggregates the results of one execution.
type Report struct {
	Results      []EntryResult
	Renamed      int
	Skipped      int
	Unchanged    int
	ManifestPath string // Empty when no manifest was needed.
}

// Options controls execution policy.
type Options struct {
	// SkipConflicts permits execution of a plan that contains conflict
	// entries. Conflicts are never attempted either way; the flag only
	// acknowledges their presence.
	SkipConflicts bool
}

// Execute performs the plan's pending renames sequentially, in plan order,
// appending each completed rename to a backup manifest created at the start.
// It fails fast: the first rename error stops the run, and the manifest then
// holds exactly the renames completed before the failure.
//
// Execution is strictly sequential: rename order and manifest-line order must
// match for the manifest to be a faithful, replayable record. ctx is checked
// between entries only; a rename in flight is never interrupted. now stamps
// the manifest filename.
//
// The returned Report is valid even when err is non-nil; it describes
// everything that happened up to the stop point.
func Execute(ctx context.Context, fsys afero.Fs, plan *planner.Plan, opts Options, now time.Time) (*Report, error) {
	if n := plan.ConflictCount(); n > 0 && !opts.SkipConflicts {
		return nil, fmt.Errorf("%w: plan has %d conflicting entries", ErrConflictsUnresolved, n)
	}

	report := &Report{Results: make([]EntryResult, 0, len(plan.Entries))}

	var m *manifest
	if countRenames(plan) > 0 {
		var err error
		m, err = createManifest(fsys, plan.Dir, now)
		if err != nil {
			return report, err
		}
		defer m.close()
		report.ManifestPath = m.path
	}

	for i := range plan.Entries {
		e := &plan.Entries[i]

		if e.Status == planner.StatusConflict {
			report.Results = append(report.Results, EntryResult{Entry: e, Outcome: OutcomeSkipped})
			report.Skipped++
			continue
		}
		if e.SelfRename() {
			report.Results = append(report.Results, EntryResult{Entry: e, Outcome: OutcomeUnchanged})
			report.Unchanged++
			continue
		}

		// Cancellation boundary: stop before the next entry, never mid-rename.
		if err := ctx.Err(); err != nil {
			return report, err
		}

		if err := fsys.Rename(e.SourcePath, e.TargetPath); err != nil {
			rerr := &RenameError{Source: e.Source, Target: e.Target, Err: err}
			report.Results = append(report.Results, EntryResult{Entry: e, Outcome: OutcomeFailed, Err: rerr})
			return report, rerr
		}
		if err := m.append(e.Source, e.Target); err != nil {
			// The rename itself landed, but the recovery trail is now
			// incomplete: record the success, then abort the run.
			report.Results = append(report.Results, EntryResult{Entry: e, Outcome: OutcomeRenamed})
			report.Renamed++
			return report, err
		}
		report.Results = append(report.Results, EntryResult{Entry: e, Outcome: OutcomeRenamed})
		report.Renamed++
	}

	return report, nil
}

// countRenames returns the number of entries that will actually move a file.
// Self-renames are pending but touch nothing, so a plan of only self-renames
// (or only conflicts) produces no manifest at all.
func countRenames(plan *planner.Plan) int {
	n := 0
	for i := range plan.Entries {
		e := &plan.Entries[i]
		if e.Status == planner.StatusPending && !e.SelfRename() {
			n++
		}
	}
	return n
}
