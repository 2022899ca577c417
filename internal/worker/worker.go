// Package worker runs the River job queue hosted in PostgreSQL.
package worker

import (
	"context"
	"fmt"
	"linkify/pkg/assets"
	"linkify/pkg/logger"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

const defaultMaxWorkers = 100

// Options configure the queue client.
type Options struct {
	// MaxWorkers is the number of jobs run concurrently on the default queue.
	MaxWorkers int
}

// Start registers the workers and starts processing jobs. The returned client
// must be stopped by the caller.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	store assets.Store,
	options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewPruneAssetWorker(store))

	maxWorkers := options.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = defaultMaxWorkers
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
