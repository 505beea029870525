package display

import (
	"fmt"
	"os"
)

// PrintBanner prints the one-line startup banner.
func PrintBanner() {
	fmt.Fprintln(os.Stdout,
		render(titleStyle, "renumber")+render(mutedStyle, " · pattern-based bulk file renamer"))
}
