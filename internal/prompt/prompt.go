// Package prompt implements the pipeline's confirmation decisions over a
// terminal: two synchronous y/n questions read from stdin.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/backmassage/renumber/internal/display"
)

// Terminal asks y/n questions on Out and reads answers from In. Anything
// other than "y" or "yes" (case-insensitive) is a no; so is EOF, which keeps
// a run with closed stdin from ever mutating the directory.
type Terminal struct {
	In  io.Reader
	Out io.Writer
}

// NewTerminal returns a Terminal wired to stdin/stdout.
func NewTerminal() *Terminal {
	return &Terminal{In: os.Stdin, Out: os.Stdout}
}

// ConfirmProceed asks whether to execute a conflict-free plan.
func (t *Terminal) ConfirmProceed(pending int) bool {
	return t.ask(fmt.Sprintf("Rename %s? (y/n): ", display.Pluralize(pending, "file")))
}

// ConfirmSkipConflicts asks whether to continue while omitting conflicts.
func (t *Terminal) ConfirmSkipConflicts(conflicts int) bool {
	return t.ask(fmt.Sprintf("Continue, skipping %s? (y/n): ", display.Pluralize(conflicts, "conflict")))
}

func (t *Terminal) ask(question string) bool {
	fmt.Fprint(t.Out, question)
	scanner := bufio.NewScanner(t.In)
	if !scanner.Scan() {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "y", "yes":
		return true
	}
	return false
}

// Fixed is a Decider that always answers the same way: Fixed(true) backs the
// --yes flag, and tests use both values.
type Fixed bool

// ConfirmProceed returns the fixed answer.
func (f Fixed) ConfirmProceed(int) bool { return bool(f) }

// ConfirmSkipConflicts returns the fixed answer.
func (f Fixed) ConfirmSkipConflicts(int) bool { return bool(f) }
