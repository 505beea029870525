package display

import (
	"fmt"
	"os"
	"sort"

	difflib "github.com/pmezard/go-difflib/difflib"

	"github.com/backmassage/renumber/internal/planner"
)

// ListingDiff renders the directory listing before vs after the plan as a
// classic unified diff (---/+++ headers, @@ hunks). Conflict entries keep
// their source name on the "after" side since they will not be executed.
func ListingDiff(plan *planner.Plan) (string, error) {
	before := make([]string, 0, len(plan.Entries))
	after := make([]string, 0, len(plan.Entries))
	for i := range plan.Entries {
		e := &plan.Entries[i]
		before = append(before, e.Source+"\n")
		if e.Status == planner.StatusPending {
			after = append(after, e.Target+"\n")
		} else {
			after = append(after, e.Source+"\n")
		}
	}
	// Plan order is sorted by source; the after side must be re-sorted to
	// read as a directory listing.
	sort.Strings(after)

	u := difflib.UnifiedDiff{
		A:        before,
		B:        after,
		FromFile: plan.Dir + " (before)",
		ToFile:   plan.Dir + " (after)",
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(u)
}

// PrintListingDiff writes the listing diff to stdout. A plan with no
// effective changes produces no output.
func PrintListingDiff(plan *planner.Plan) {
	s, err := ListingDiff(plan)
	if err != nil || s == "" {
		return
	}
	fmt.Fprint(os.Stdout, render(mutedStyle, s))
	fmt.Fprintln(os.Stdout)
}
