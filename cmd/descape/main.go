// Package main is the entry point for the descape CLI.
package main

import (
	"os"

	"github.com/descape/descape/cmd/descape/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
