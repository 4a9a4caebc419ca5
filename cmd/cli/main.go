// Package main is the entry point for the roofquote CLI.
package main

import (
	"os"

	"roofquote/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
