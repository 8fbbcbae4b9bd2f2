package commands

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/donation-recon/api"
	"github.com/carson-networks/donation-recon/internal/scheduler"
	"github.com/carson-networks/donation-recon/internal/storage/migrations"
)

func serveCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and the scheduled sweep",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if migrate {
				if err := migrations.Up(a.storage.SQL, a.logger); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a.logger.Info("donation-recon starting")
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				rest := api.Rest{
					Logger:  a.logger,
					Port:    a.env.HTTPPort,
					Service: a.service,
					Storage: a.storage,
				}
				return rest.Serve(gctx)
			})
			g.Go(func() error {
				scheduler.New(a.service.Reconciliation, a.env.SweepInterval, a.logger).Run(gctx)
				return nil
			})
			return g.Wait()
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")

	return cmd
}

