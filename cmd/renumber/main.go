// Command renumber is the entrypoint for the renumber CLI.
//
// It hands off to the internal cmd package and maps the result to the
// process exit code: 0 on success, declined confirmation, or an empty match
// set; 1 on validation failure or a hard execution error.
package main

import (
	"fmt"
	"os"

	"github.com/backmassage/renumber/internal/cmd"
)

// version is injected at build time via -ldflags (e.g. Makefile). A plain
// "go build" keeps the default.
var version = "1.0.0-dev"

func main() {
	if err := cmd.Execute(version); err != nil {
		fmt.Fprintf(os.Stderr, "renumber: %v\n", err)
		os.Exit(1)
	}
}
