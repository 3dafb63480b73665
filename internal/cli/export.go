package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"todolist/internal/export"
)

var (
	exportOutput  string
	exportFormat  string
	exportFilters filterFlags
	exportPage    pageFlags
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tasks",
	Long: `Export the tasks matching the filters.

Supported formats:
  - json: Structured JSON format (default); usable as seed_file
  - csv: Comma-separated values for spreadsheets
  - markdown: Human-readable markdown grouped by status

Examples:
  todolist export --output tasks.json
  todolist export --format csv --importance high --output important.csv
  todolist export --format markdown --from 2021-03-01
  todolist export --limit 10 --offset 10`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format (json, csv, markdown)")
	exportFilters.register(exportCmd)
	exportPage.register(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	filters, err := exportFilters.parse(time.Now())
	if err != nil {
		return err
	}
	filter, err := exportPage.apply(filters.TaskFilter())
	if err != nil {
		return err
	}

	ctx := context.Background()
	a, err := newApp(ctx, false)
	if err != nil {
		return err
	}
	defer a.Close()

	exporter, err := export.NewExporter(format, a.repo)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := exporter.Export(ctx, w, filter); err != nil {
		return fmt.Errorf("failed to export tasks: %w", err)
	}

	if exportOutput != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), a.styles.Success.Render(fmt.Sprintf("✓ Exported tasks to %s", exportOutput)))
	}
	a.logger.Debug("export done", "format", format, "output", exportOutput)
	return nil
}
