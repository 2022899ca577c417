package pages

import (
	"context"
	"linkify/pkg/domain"
	"linkify/pkg/logger"
	"linkify/pkg/storage"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"
)

// PruneAssetArgs contains the arguments of a job deleting a profile image that
// is no longer referenced by its page.
type PruneAssetArgs struct {
	// Key is the asset key to delete.
	Key string `json:"key" river:"unique"`
	// Owner is the owner of the page that dropped the image. The asset is only
	// deleted when it was uploaded by the same owner.
	Owner domain.Owner `json:"owner" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the prune worker.
func (args PruneAssetArgs) Kind() string { return "PruneAssetJob" }

// InsertOpts returns the River options that control how the job is enqueued.
func (args PruneAssetArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

// enqueuePrune schedules deletion of the asset behind imageURL when it is
// hosted on the CDN and the storage backend has a job queue. The worker checks
// that owner uploaded the asset before deleting it. Failures are logged: the
// page write they follow has already succeeded.
func (p *pages) enqueuePrune(ctx context.Context, owner domain.Owner, imageURL string) {
	if !p.options.PruneReplaced || imageURL == "" {
		return
	}
	key, ok := AssetKey(p.options.CDNDomain, imageURL)
	if !ok {
		return
	}
	jobs, ok := p.storage.(storage.JobStorage)
	if !ok {
		return
	}

	if _, err := jobs.AddJob(context.WithoutCancel(ctx), PruneAssetArgs{
		Key:         key,
		Owner:       owner,
		maxAttempts: p.options.PruneMaxAttempts,
	}, nil); err != nil {
		logger.Warn(ctx, "could not enqueue asset pruning", zap.String("key", key), zap.Error(err))
	}
}
