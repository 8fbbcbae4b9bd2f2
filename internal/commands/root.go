// Package commands holds the cobra command tree of the donation-recon binary.
package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/donation-recon/internal/config"
	"github.com/carson-networks/donation-recon/internal/logging"
	"github.com/carson-networks/donation-recon/internal/operator"
	"github.com/carson-networks/donation-recon/internal/reconcile"
	"github.com/carson-networks/donation-recon/internal/resolver"
	"github.com/carson-networks/donation-recon/internal/service"
	"github.com/carson-networks/donation-recon/internal/storage"
)

var Version = "dev"

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "donation-recon",
		Short:         "Classifies bank transactions as donations and reconciles quarantined ones",
		Version:       Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(sweepCmd())
	rootCmd.AddCommand(migrateCmd())

	return rootCmd
}

// Execute runs the command tree and returns the first error.
func Execute() error {
	return NewRootCommand().Execute()
}

// app is what serve and sweep share: config, logger, storage and the
// services running on a started operator.
type app struct {
	env      *config.Config
	logger   *logrus.Logger
	storage  *storage.Storage
	operator *operator.OperatorDelegator
	service  *service.Service
}

func newApp() (*app, error) {
	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		return nil, err
	}
	logger := logging.SetupLogging(env.LogLevel)

	dbStorage, err := storage.NewStorage(env)
	if err != nil {
		return nil, err
	}

	delegator := operator.NewOperatorDelegator(dbStorage, env.OperatorWorkers, logger)
	delegator.Start()

	res := resolver.New(resolver.Prefixes{
		Referral:  env.ReferralPrefix,
		Challenge: env.ChallengePrefix,
		Project:   env.ProjectPrefix,
		Account:   env.AccountPrefix,
	})

	svc := service.NewService(delegator, dbStorage.Read().WrongDonations, service.Options{
		Resolver:         res,
		Sweep:            reconcile.SweepOptions{FallbackStatus: env.SweepFallbackStatus},
		SweepConcurrency: env.SweepConcurrency,
	}, logger)

	return &app{
		env:      env,
		logger:   logger,
		storage:  dbStorage,
		operator: delegator,
		service:  svc,
	}, nil
}

func (a *app) close() {
	a.operator.Stop()
	if err := a.storage.Close(); err != nil {
		a.logger.WithError(err).Error("app.close.storage")
	}
}
