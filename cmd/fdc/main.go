// Package main is the entry point for fdc, the flyer-deals CLI client.
package main

import "github.com/kagiso-dev/flyer-deals/cmd/fdc/cmd"

func main() {
	cmd.Execute()
}
