package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"cellwatch/internal/app"
	"cellwatch/internal/services"
	"cellwatch/internal/validation"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var (
		format string
		target string
		file   string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a CSV or XLSX export",
		Long: `Export writes one section kind as CSV, or a section kind, the anomaly
report ("anomalies") or the cell report ("cells") as an XLSX workbook.
Without --out the export is written to the reports directory; "-" writes
to stdout.`,
		Example: `  cellwatch export --format xlsx --kind anomalies
  cellwatch export --format csv --kind boardsfp --out sfp.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format = strings.ToLower(format)
			target = strings.ToLower(target)

			return withApp(opts, cmd, func(a *app.Application) error {
				if out == "-" {
					return a.Reports.Export(cmd.Context(), cmd.OutOrStdout(), format, target, file)
				}

				path := out
				if path == "" {
					path = a.Paths.GetReportPath(target + "." + format)
				}
				if err := validation.NewFileValidator(a.Logger).ValidateExportPath(path, format); err != nil {
					return err
				}
				if err := exportFile(cmd, a.Reports, path, format, target, file); err != nil {
					return err
				}

				a.Logger.Info("export written", slog.String("path", path))
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "xlsx", "export format: csv or xlsx")
	cmd.Flags().StringVarP(&target, "kind", "k", services.TargetAnomalies,
		"section kind, or anomalies / cells for xlsx")
	cmd.Flags().StringVarP(&file, "file", "f", "", "single document to read (default: every document)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path, or - for stdout")
	return cmd
}

// exportFile writes the export to path; a failed export leaves no file behind
func exportFile(cmd *cobra.Command, reports *services.ReportService, path, format, target, file string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	err = reports.Export(cmd.Context(), f, format, target, file)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("failed to close %s: %w", path, cerr)
	}
	if err != nil {
		os.Remove(path)
		return err
	}
	return nil
}
