package display

import (
	"fmt"
	"io"
	"os"

	"github.com/backmassage/renumber/internal/planner"
)

// PrintPreview writes the entry-by-entry plan preview to stdout: one line per
// proposed rename, marked OK or conflict-with-reason. This is what the user
// inspects before the pipeline asks for confirmation.
func PrintPreview(plan *planner.Plan) {
	WritePreview(os.Stdout, plan)
}

// WritePreview renders the preview to w.
func WritePreview(w io.Writer, plan *planner.Plan) {
	fmt.Fprintln(w)
	for i := range plan.Entries {
		e := &plan.Entries[i]
		if e.Status == planner.StatusConflict {
			fmt.Fprintf(w, "  %s %s -> %s %s\n",
				render(conflictStyle, "✗"), e.Source, e.Target,
				render(conflictStyle, "["+e.Reason+"]"))
			continue
		}
		fmt.Fprintf(w, "  %s %s -> %s\n", render(okStyle, "✓"), e.Source, e.Target)
	}
	fmt.Fprintln(w)
}
