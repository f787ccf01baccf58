package main

import (
	"github.com/spf13/cobra"

	"github.com/CarlvinJerry/MyCodegent/server"
)

func newServeCmd(opts *cliOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generation engine over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(opts)
			if err != nil {
				return err
			}
			defer log.Sync()
			return server.New(log).Run(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":7070", "listen address")
	return cmd
}
