package planner

// Status classifies a plan entry.
type Status int

const (
	// StatusPending marks an entry that is safe to execute.
	StatusPending Status = iota
	// StatusConflict marks an entry whose target already exists or duplicates
	// an earlier entry's target. Conflict entries are never executed.
	StatusConflict
)

// String returns "pending" or "conflict".
func (s Status) String() string {
	if s == StatusConflict {
		return "conflict"
	}
	return "pending"
}

// Entry is one proposed rename. Source and Target are base names within the
// plan's directory; SourcePath and TargetPath are the joined paths. Reason is
// non-empty exactly when Status is StatusConflict.
type Entry struct {
	Source     string
	Target     string
	SourcePath string
	TargetPath string
	Index      int // The sequence number substituted into the pattern.
	Status     Status
	Reason     string
}

// SelfRename reports whether the computed target equals the source. Such an
// entry is kept pending but executes as a no-op.
func (e *Entry) SelfRename() bool { return e.Source == e.Target }

// Plan is the ordered set of proposed renames for one directory, sorted by
// source name. It is fully inspectable before execution and never mutated by
// the execution engine.
type Plan struct {
	Dir     string
	Entries []Entry
}

// PendingCount returns the number of executable entries.
func (p *Plan) PendingCount() int {
	n := 0
	for i := range p.Entries {
		if p.Entries[i].Status == StatusPending {
			n++
		}
	}
	return n
}

// ConflictCount returns the number of conflict entries.
func (p *Plan) ConflictCount() int {
	return len(p.Entries) - p.PendingCount()
}
