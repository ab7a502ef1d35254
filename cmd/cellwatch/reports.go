package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cellwatch/internal/app"
	"cellwatch/pkg/contracts/domain"
)

// reportFlags are shared by the commands that print a report
type reportFlags struct {
	file string
	json bool
}

func (f *reportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "single document to read (default: every document)")
	cmd.Flags().BoolVar(&f.json, "json", false, "print JSON instead of tables")
}

// withApp runs fn against a freshly built application and releases it
func withApp(opts *rootOptions, cmd *cobra.Command, fn func(*app.Application) error) error {
	application, err := opts.openApp(cmd)
	if err != nil {
		return err
	}
	defer application.Close(context.WithoutCancel(cmd.Context()))
	return fn(application)
}

func newScanCmd(opts *rootOptions) *cobra.Command {
	var flags reportFlags
	var kindName string

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Print every record of one section kind",
		Example: `  cellwatch scan --kind fruradio
  cellwatch scan --kind mfar --file site_a.txt --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, err := domain.ParseKind(kindName)
			if err != nil {
				return err
			}
			return withApp(opts, cmd, func(a *app.Application) error {
				recs, err := a.Reports.Records(cmd.Context(), kind, flags.file)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if flags.json {
					if recs == nil {
						recs = []domain.Record{}
					}
					return writeJSON(out, recs)
				}
				return renderRecords(out, kind, recs)
			})
		},
	}
	cmd.Flags().StringVarP(&kindName, "kind", "k", "", "section kind: linkperf, boardsfp, fruradio, mfitr or mfar")
	cmd.MarkFlagRequired("kind")
	flags.register(cmd)
	return cmd
}

func newAnomaliesCmd(opts *rootOptions) *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "anomalies",
		Short: "Print the displayed rows of every section kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, cmd, func(a *app.Application) error {
				report, err := a.Reports.Anomalies(cmd.Context(), flags.file)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if flags.json {
					return writeJSON(out, report)
				}
				for _, section := range report.Sections() {
					if err := renderSection(out, section.Kind.Title(), section.Kind, section.Records); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newCellsCmd(opts *rootOptions) *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "cells",
		Short: "Print the reference-cell triage report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, cmd, func(a *app.Application) error {
				report, err := a.Reports.CellReport(cmd.Context(), flags.file)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if flags.json {
					return writeJSON(out, report)
				}
				return renderCellReport(out, report)
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func newSummaryCmd(opts *rootOptions) *cobra.Command {
	var flags reportFlags

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print per-kind record and anomaly counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, cmd, func(a *app.Application) error {
				summary, err := a.Reports.Summary(cmd.Context(), flags.file)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if flags.json {
					return writeJSON(out, summary)
				}
				if flags.file == "" {
					docs, err := a.Reports.Documents(cmd.Context())
					if err != nil {
						return err
					}
					if err := renderDocuments(out, docs); err != nil {
						return err
					}
				}
				return renderSummary(out, summary)
			})
		},
	}
	flags.register(cmd)
	return cmd
}

func writeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}
