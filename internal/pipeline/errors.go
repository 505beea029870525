package pipeline

import (
	"errors"
	"fmt"
)

// ErrConflictsUnresolved is returned by Execute when the plan contains
// conflict entries and the caller did not opt into skipping them. The caller
// must prompt and re-invoke with Options.SkipConflicts set.
var ErrConflictsUnresolved = errors.New("conflicts unresolved")

// RenameError reports a filesystem-level failure on one entry. Execution
// stops at the failing entry; the manifest holds everything completed before
// it.
type RenameError struct {
	Source string
	Target string
	Err    error
}

func (e *RenameError) Error() string {
	return fmt.Sprintf("rename %s -> %s: %v", e.Source, e.Target, e.Err)
}

func (e *RenameError) Unwrap() error { return e.Err }

// ManifestError reports that the backup manifest could not be created or
// appended. It is fatal: without a complete recovery trail the remaining
// renames must not proceed.
type ManifestError struct {
	Path string
	Err  error
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("backup manifest %s: %v", e.Path, e.Err)
}

func (e *ManifestError) Unwrap() error { return e.Err }
