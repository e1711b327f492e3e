// Package cmd — import command.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cadio-project/cadio/importpipeline"
	"github.com/cadio-project/cadio/memdoc"
)

var (
	flagImportMessengerLevel string
	flagImportMetricsAddr    string
)

var importCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Import one or more CAD files into an in-memory document",
	Long: `Import probes each file's format, reads it, transfers the parsed
content into an in-memory document, and reports the total number of
entities imported and the number of files given (not a per-file count).

Examples:
  cadio import model.step
  cadio import part-a.stl part-b.stl part-c.stl --messenger-level=trace`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVar(&flagImportMessengerLevel, "messenger-level", "info",
		"Minimum diagnostic level to log: trace, info, warning, or error")
	importCmd.Flags().StringVar(&flagImportMetricsAddr, "metrics-addr", "",
		"Address to serve Prometheus task metrics on (e.g. :9090); disabled if empty")
}

func runImport(cmd *cobra.Command, args []string) error {
	sink, flush, err := newMessenger(flagImportMessengerLevel)
	if err != nil {
		return fmt.Errorf("configuring messenger: %w", err)
	}
	defer flush()

	reg := newRegistry()
	doc := memdoc.New()

	metrics, stopMetrics := newTaskMetrics(flagImportMetricsAddr)
	defer stopMetrics()

	ok := importpipeline.NewImport(reg).
		TargetDocument(doc).
		WithFilepaths(args).
		WithMessenger(sink).
		WithMetrics(metrics).
		Execute(context.Background())

	fmt.Fprintf(os.Stdout, "imported %d entities from %d file(s)\n", doc.Len(), len(args))
	if !ok {
		return fmt.Errorf("one or more files failed to import; see log output above")
	}
	return nil
}
