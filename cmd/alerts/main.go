// Package main is the entry point for the alerts CLI.
package main

import (
	"os"

	"github.com/couchcryptid/nws-alerts-viewer/cmd/alerts/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
