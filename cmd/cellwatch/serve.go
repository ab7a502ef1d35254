package main

import (
	"github.com/spf13/cobra"

	"cellwatch/internal/app"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the report API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := app.NewApplication(opts.configFile)
			if err != nil {
				return err
			}
			return application.Run(cmd.Context())
		},
	}
}
