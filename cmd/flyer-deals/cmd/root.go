// Package cmd implements the CLI commands for the flyer-deals server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "flyer-deals",
	Short: "Compare grocery flyer deals across stores",
	Long: "An API-first service that ingests OCR-extracted flyer deals, groups " +
		"picked items across stores, sorts matches by price, and tracks basket " +
		"totals against a budget.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
