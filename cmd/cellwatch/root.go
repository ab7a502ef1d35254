package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cellwatch/internal/app"
	"cellwatch/internal/config"
	"cellwatch/internal/infrastructure"
)

// rootOptions holds the persistent flags
type rootOptions struct {
	configFile string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   config.AppName,
		Short: "Anomaly reports over network-element CLI exports",
		Long: `cellwatch reads CLI exports from the documents directory, parses the
link performance, SFP, FRU radio, MFITR and MFAR sections and reports the
rows whose measurements are out of range, with the cells they affect.`,
		Version:       config.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "",
		"config file (default: $CELLWATCH_CONFIG, ./config.yaml or ./configs/config.yaml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log at the configured level instead of warn")

	root.AddCommand(
		newServeCmd(opts),
		newScanCmd(opts),
		newAnomaliesCmd(opts),
		newCellsCmd(opts),
		newSummaryCmd(opts),
		newExportCmd(opts),
		newWatchCmd(opts),
	)
	return root
}

// loadConfig reads --config, or the default locations when it is empty
func (o *rootOptions) loadConfig() (*config.Config, error) {
	if o.configFile == "" {
		return config.Load()
	}
	return config.LoadFile(o.configFile)
}

// openApp builds the application for a one-shot command. Logs go to
// stderr so stdout carries only the report.
func (o *rootOptions) openApp(cmd *cobra.Command) (*app.Application, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}

	logging := cfg.Logging
	logging.Format = "text"
	if !o.verbose {
		logging.Level = "warn"
	}
	logger := infrastructure.WithComponent(infrastructure.NewWriterLogger(cmd.ErrOrStderr(), logging), "cli")

	application, err := app.New(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}
	return application, nil
}
