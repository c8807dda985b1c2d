// Package main is the adminterm entry point.
package main

import (
	"os"

	"github.com/rustpress/adminterm/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
