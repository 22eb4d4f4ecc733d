// Package main is the entry point for the camlc CLI tool.
package main

import (
	"os"

	"camlc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
