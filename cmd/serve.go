package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"bloodlink/internal/api"
	"bloodlink/internal/api/handler/v1handler"
	"bloodlink/internal/approval"
	"bloodlink/internal/auth"
	"bloodlink/internal/config"
	"bloodlink/internal/donor"
	"bloodlink/internal/matching"
	"bloodlink/internal/request"
	"bloodlink/internal/worker"
	"bloodlink/pkg/logger"
	"bloodlink/pkg/metrics"
	"bloodlink/pkg/storage/postgres"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, strg *postgres.PgSQL) func(ctx context.Context) {
	tokens, err := auth.NewTokens(auth.NewTokenOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not set up token signer", zap.Error(err))
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	deps := api.Deps{
		Deps: v1handler.Deps{
			Auth:     auth.New(strg, tokens),
			Donor:    donor.New(strg, m),
			Approval: approval.New(strg, m),
			Request:  request.New(strg, m, request.NewOptions(cfg)),
			Matcher:  matching.New(strg, m),
			Tokens:   tokens,
		},
	}

	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			stopWebserver := setupServer(ctx, cfg, strg)

			riverClient, err := worker.Start(ctx, strg.Pool, strg)
			if err != nil {
				logger.Fatal(ctx, "could not start background workers", zap.Error(err))
			}

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			logger.Info(ctx, "stopping background workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop background workers", zap.Error(err))
			}

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
