package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage is implemented by backends that host a River job queue next to
// the page records. Callers type-assert a Storage to JobStorage and skip
// background work when the backend has no queue.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments and reports whether a
	// job was actually inserted (false when skipped as a unique duplicate). It
	// is atomic with respect to any surrounding transaction.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
