// Package main is the entry point for the omegraph CLI.
//
// Usage:
//
//	omegraph [flags] <command> [args]
//
// Commands:
//
//	replay   - Replay assertion logs, consolidate and export the graphs
//	resolve  - Resolve a free-text term against a controlled vocabulary
//	version  - Show version information
package main

import (
	"fmt"
	"os"

	"omegraph/cmd/omegraph/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
