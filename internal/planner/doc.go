// Package planner builds the rename plan: it lists the target directory,
// filters and sorts the matching files, assigns sequential indices, and
// classifies every proposed rename as pending or conflicting. Building a plan
// is read-only; nothing on disk changes until the pipeline executes it.
package planner
