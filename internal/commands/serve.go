package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/balances/internal/pipeline"
	"github.com/cleared-dev/balances/internal/server"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the balance chart over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := opts.logger(cmd)
			p, err := opts.loadProject(logger)
			if err != nil {
				return err
			}

			// The config is reloaded on every request so edits need no restart.
			run := func(ctx context.Context) (*pipeline.Result, error) {
				p, err := opts.loadProject(logger)
				if err != nil {
					return nil, err
				}
				return p.runner.Run(ctx, p.accounts, nil)
			}
			srv := server.New(run, server.Options{
				Title:  p.cfg.Chart.Title,
				Width:  p.cfg.Chart.Width,
				Height: p.cfg.Chart.Height,
			}, logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")

	return cmd
}
