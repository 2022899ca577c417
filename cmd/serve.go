package main

import (
	"context"
	"errors"
	"linkify/internal/api"
	"linkify/internal/api/handler/v1handler"
	"linkify/internal/config"
	"linkify/internal/pages"
	"linkify/internal/worker"
	"linkify/pkg/logger"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
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
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			b := getBackends(ctx, cfg)
			defer b.close()

			// the job queue lives in postgres, other drivers run without pruning
			stopWorker := func(context.Context) {}
			if b.pgsql != nil {
				riverClient, err := worker.Start(ctx, b.pgsql.Pool, b.assets, worker.Options{
					MaxWorkers: cfg.Worker.MaxWorkers,
				})
				if err != nil {
					logger.Fatal(ctx, "could not start worker", zap.Error(err))
				}
				stopWorker = func(ctx context.Context) {
					logger.Info(ctx, "stopping worker...")
					if err := riverClient.Stop(ctx); err != nil {
						logger.Error(ctx, "could not stop worker", zap.Error(err))
					}
				}
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{Deps: v1handler.Deps{
				Pages:          pages.New(b.storage, b.assets, pages.NewOptions(cfg)),
				Assets:         b.assets,
				MaxUploadBytes: cfg.HTTP.MaxUploadBytes,
			}})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorker(shutdownCtx)
		},
	}

	return cmd
}
