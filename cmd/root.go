// Package cmd implements the CLI commands for cadio using Cobra. It sits
// outside the core boundary: CLI flags, environment variables, and wire
// formats never leak into the core/importpipeline/exportpipeline
// packages, so this package's only job is translating flags into an
// Args value and running the pipeline.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cadio",
	Short: "cadio — a pluggable CAD file import/export orchestrator",
	Long: `cadio probes the format of CAD files, reads and transfers them into an
in-memory document, and exports that document's items back out through a
registered writer.

Usage:
  cadio import <file>... [flags]
  cadio export <file>... --format <format> --output <path> [flags]`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
