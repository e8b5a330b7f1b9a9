// Package main is the entry point for the gtools menu-bar app and CLI.
package main

import (
	"os"

	"github.com/gtools-app/gtools/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
