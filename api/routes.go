package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/donation-recon/internal/handlers/v1/ingest"
	"github.com/carson-networks/donation-recon/internal/handlers/v1/reconciliation"
	"github.com/carson-networks/donation-recon/internal/handlers/v1/status"
	"github.com/carson-networks/donation-recon/internal/logging"
	"github.com/carson-networks/donation-recon/internal/service"
	"github.com/carson-networks/donation-recon/internal/storage"
)

const shutdownTimeout = 15 * time.Second

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
	Storage *storage.Storage
}

// Router builds the chi router with the huma API mounted on it.
func (r *Rest) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)

	statusHandler := status.NewHandler(r.Storage.SQL)
	router.Get("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humachi.New(router, huma.DefaultConfig("Donation Reconciliation API", "1.0.0"))
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))

	ingest.NewIngestTransactionHandler(r.Service.Ingest).Register(api)
	reconciliation.NewRunSweepHandler(r.Service.Reconciliation).Register(api)
	reconciliation.NewListWrongDonationsHandler(r.Service.Reconciliation).Register(api)

	return router
}

// Serve listens until ctx is done, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Router(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		r.Logger.Info("HttpServer.Serve.shutting down")
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	return err
}
