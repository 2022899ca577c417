package worker

import (
	"context"
	"errors"
	"fmt"
	"linkify/internal/pages"
	"linkify/pkg/assets"
	"linkify/pkg/logger"
	"linkify/pkg/metrics"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// PruneAssetWorker deletes profile images that were replaced or whose page
// was removed. Only assets uploaded by the job's owner are deleted; a page may
// point at any URL on the CDN, including images of other owners. Deleting a
// missing asset succeeds so retried jobs are harmless.
type PruneAssetWorker struct {
	river.WorkerDefaults[pages.PruneAssetArgs]

	store assets.Store
}

// NewPruneAssetWorker returns a worker deleting assets from store.
func NewPruneAssetWorker(store assets.Store) *PruneAssetWorker {
	return &PruneAssetWorker{store: store}
}

func (w *PruneAssetWorker) Work(ctx context.Context, job *river.Job[pages.PruneAssetArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("key", job.Args.Key),
		zap.String("owner", string(job.Args.Owner)))

	if job.Args.Key == "" || job.Args.Owner == "" {
		return river.JobCancel(fmt.Errorf("job %d has no asset key or owner", job.ID)) //nolint: wrapcheck
	}

	obj, err := w.store.Get(ctx, job.Args.Key)
	if errors.Is(err, assets.ErrNotFound) {
		logger.Debug(ctx, "asset already gone")

		return nil
	}
	if err != nil {
		logger.Error(ctx, "could not read asset", zap.Error(err))

		return fmt.Errorf("could not read asset: %w", err)
	}
	if obj.Owner != string(job.Args.Owner) {
		logger.Warn(ctx, "asset belongs to another owner, keeping it", zap.String("asset_owner", obj.Owner))

		return nil
	}

	if err := w.store.Delete(ctx, job.Args.Key); err != nil {
		logger.Error(ctx, "could not delete asset", zap.Error(err))

		return fmt.Errorf("could not delete asset: %w", err)
	}

	metrics.PrunedAssets.Inc()
	logger.Info(ctx, "asset pruned")

	return nil
}
