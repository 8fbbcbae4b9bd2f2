package commands

import (
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/carson-networks/donation-recon/internal/config"
	"github.com/carson-networks/donation-recon/internal/logging"
	"github.com/carson-networks/donation-recon/internal/storage/migrations"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := config.ProcessEnvironmentVariables()
			if err != nil {
				return err
			}
			logger := logging.SetupLogging(env.LogLevel)

			db, err := sql.Open("postgres", env.PostgresURL())
			if err != nil {
				return err
			}
			defer db.Close()

			return migrations.Up(db, logger)
		},
	}
}
