// Package pipeline orchestrates a full run (plan, preview, confirm, execute)
// and owns the execution engine and the backup manifest.
//
// Split: runner.go (batch flow and logging), execute.go (the engine:
// sequential renames, fail-fast, per-entry results), manifest.go (append-only
// backup log), errors.go (execution error types), stats.go (run counters).
package pipeline
