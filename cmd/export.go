// Package cmd — export command.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cadio-project/cadio/core"
	"github.com/cadio-project/cadio/exportpipeline"
	"github.com/cadio-project/cadio/importpipeline"
	"github.com/cadio-project/cadio/memdoc"
)

var (
	flagExportFormat         string
	flagExportOutput         string
	flagExportMessengerLevel string
	flagExportMetricsAddr    string
)

var exportCmd = &cobra.Command{
	Use:   "export <file>...",
	Short: "Import CAD files, then export their entities as a report",
	Long: `Export imports the given files the same way "cadio import" does, then
writes a summary of every transferred entity through one of the demo
report writers: markdown, json, or pdf.

Examples:
  cadio export model.step --format=json --output=report.json
  cadio export a.stl b.stl --format=pdf --output=report.pdf`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&flagExportFormat, "format", "", "Output report format: markdown, json, or pdf (required)")
	exportCmd.Flags().StringVar(&flagExportOutput, "output", "", "Output file path (required)")
	exportCmd.Flags().StringVar(&flagExportMessengerLevel, "messenger-level", "info",
		"Minimum diagnostic level to log: trace, info, warning, or error")
	exportCmd.Flags().StringVar(&flagExportMetricsAddr, "metrics-addr", "",
		"Address to serve Prometheus task metrics on (e.g. :9090); disabled if empty")
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := reportFormatFromFlag(flagExportFormat)
	if err != nil {
		return err
	}
	if flagExportOutput == "" {
		return fmt.Errorf("--output is required")
	}

	sink, flush, err := newMessenger(flagExportMessengerLevel)
	if err != nil {
		return fmt.Errorf("configuring messenger: %w", err)
	}
	defer flush()

	reg := newRegistry()
	doc := memdoc.New()

	metrics, stopMetrics := newTaskMetrics(flagExportMetricsAddr)
	defer stopMetrics()

	ctx := context.Background()
	if !importpipeline.NewImport(reg).
		TargetDocument(doc).
		WithFilepaths(args).
		WithMessenger(sink).
		WithMetrics(metrics).
		Execute(ctx) {
		return fmt.Errorf("one or more files failed to import; see log output above")
	}

	entities := doc.Entities()
	items := make([]core.ApplicationItem, len(entities))
	for i, entity := range entities {
		items[i] = core.ApplicationItem(entity)
	}

	ok := exportpipeline.NewExport(reg).
		TargetFile(flagExportOutput).
		TargetFormat(format).
		WithItems(items).
		WithMessenger(sink).
		Execute(ctx)
	if !ok {
		return fmt.Errorf("export failed; see log output above")
	}

	fmt.Fprintf(os.Stdout, "exported %d entities to %s\n", len(items), flagExportOutput)
	return nil
}

func reportFormatFromFlag(flag string) (core.Format, error) {
	switch flag {
	case "markdown", "md":
		return core.FormatMDReport, nil
	case "json":
		return core.FormatJSONReport, nil
	case "pdf":
		return core.FormatPDFReport, nil
	default:
		return core.FormatUnknown, fmt.Errorf("--format must be one of markdown, json, pdf (got %q)", flag)
	}
}
