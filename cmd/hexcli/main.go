// Command hexcli is the command-line front end for the hex tactical map
// engine core: it wires the id generator, catalog loader, logging, and the
// hex/feature/hexmap/traversal packages together behind a Cobra command
// tree, the way the teacher's cmd/cli entry point wires its own services.
package main

import (
	"fmt"
	"os"

	"github.com/turnforge/hexengine/cmd/hexcli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
