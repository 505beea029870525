package pipeline

// RunStats tracks aggregate counters across one run, including the planning
// stage. The entrypoint maps Failed > 0 to a non-zero exit code.
type RunStats struct {
	Total     int // Entries in the plan.
	Renamed   int // Renames performed (or previewed, in dry-run).
	Skipped   int // Conflict entries omitted from execution.
	Unchanged int // Self-renames that needed no filesystem call.
	Failed    int // Hard failures: validation, rename, or manifest errors.
}

// Clean reports whether the run finished without hard failures.
func (s *RunStats) Clean() bool { return s.Failed == 0 }
