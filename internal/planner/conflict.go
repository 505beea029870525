package planner

import (
	"fmt"

	"github.com/spf13/afero"
)

// classify sets the entry's status. A rename conflicts when its target
// duplicates an earlier entry's target, or when something already occupies
// the target path on disk and it is not the entry's own source. The first
// entry to compute a target claims it, conflicted or not; renaming a file to
// the name it already has is not a conflict.
func classify(fsys afero.Fs, e *Entry, claimed map[string]string) {
	if owner, taken := claimed[e.Target]; taken {
		e.Status = StatusConflict
		e.Reason = fmt.Sprintf("duplicate target: %s is also produced by %s", e.Target, owner)
		return
	}
	claimed[e.Target] = e.Source

	if e.SelfRename() {
		e.Status = StatusPending
		return
	}

	// A pre-existing occupant conflicts even when that file is itself
	// scheduled for renaming later in the plan: entries execute in plan
	// order, so the occupant would still be in the way.
	if exists(fsys, e.TargetPath) {
		e.Status = StatusConflict
		e.Reason = fmt.Sprintf("target already exists: %s", e.Target)
		return
	}

	e.Status = StatusPending
}

func exists(fsys afero.Fs, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}
