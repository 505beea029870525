// Package naming owns the two name formats of the tool: the user-supplied
// numbering pattern ("video_{:03d}") that target filenames are generated
// from, and the timestamped backup manifest filename.
//
// Split: pattern.go (placeholder grammar, parsing, index formatting),
// backup.go (manifest filename).
package naming
