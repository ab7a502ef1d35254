package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"cellwatch/internal/app"
	"cellwatch/internal/infrastructure"
	"cellwatch/internal/watch"
)

func newWatchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-print the summary whenever documents change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, cmd, func(a *app.Application) error {
				out := cmd.OutOrStdout()
				printSummary := func(ctx context.Context) {
					summary, err := a.Reports.Summary(ctx, "")
					if err != nil {
						infrastructure.WithError(a.Logger, err).ErrorContext(ctx, "summary failed")
						return
					}
					if err := renderSummary(out, summary); err != nil {
						infrastructure.WithError(a.Logger, err).ErrorContext(ctx, "failed to print summary")
					}
				}

				w, err := watch.New(a.Paths.DocumentsDir, a.Config.Corpus.Extensions, a.Config.Corpus.WatchDebounce,
					func(ctx context.Context, changed []string) {
						ctx = infrastructure.EnsureTraceID(ctx)
						a.Logger.InfoContext(ctx, "documents changed", slog.Int("count", len(changed)))
						fmt.Fprintf(out, "\nchanged: %s\n", strings.Join(changed, ", "))
						printSummary(ctx)
					}, a.Logger)
				if err != nil {
					return err
				}

				ctx := cmd.Context()
				printSummary(ctx)
				if err := w.Start(ctx); err != nil {
					w.Stop()
					return err
				}
				fmt.Fprintf(out, "\nwatching %s (Ctrl+C to stop)\n", a.Paths.DocumentsDir)

				<-ctx.Done()
				w.Stop()
				return nil
			})
		},
	}
}
