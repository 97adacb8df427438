// Package main is the entry point for the flyer-deals server.
package main

import (
	"os"

	"github.com/kagiso-dev/flyer-deals/cmd/flyer-deals/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
