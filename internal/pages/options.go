package pages

import (
	"linkify/internal/config"
	"time"
)

// Options configure the page directory. They are typically derived from the
// application configuration with NewOptions.
type Options struct {
	// MaxUpdateAttempts is the number of read-modify-write attempts a mutation
	// makes before it gives up with a conflict.
	MaxUpdateAttempts uint64
	// RetryBaseDelay is the first backoff delay between attempts.
	RetryBaseDelay time.Duration
	// CDNDomain is the host (optionally with a path prefix) assets are served from.
	CDNDomain string
	// KeyStrategy selects how upload keys are derived, see config.KeyStrategyTimestamp.
	KeyStrategy string
	// PruneReplaced enqueues deletion of replaced or orphaned profile images
	// when the storage backend has a job queue.
	PruneReplaced bool
	// PruneMaxAttempts bounds retries of a prune job.
	PruneMaxAttempts int
	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
// Pruning is only enabled with timestamp keys: content keys are shared by
// every upload of the same bytes.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxUpdateAttempts: cfg.Pages.MaxUpdateAttempts,
		RetryBaseDelay:    cfg.Pages.RetryBaseDelay,
		CDNDomain:         cfg.Assets.CDNDomain,
		KeyStrategy:       cfg.Assets.KeyStrategy,
		PruneReplaced:     cfg.Assets.PruneReplaced && cfg.Assets.KeyStrategy == config.KeyStrategyTimestamp,
		PruneMaxAttempts:  cfg.Worker.MaxAttempts,
		Clock:             time.Now,
	}
}

func (o Options) withDefaults() Options {
	if o.MaxUpdateAttempts == 0 {
		o.MaxUpdateAttempts = 1
	}
	if o.RetryBaseDelay <= 0 {
		o.RetryBaseDelay = time.Millisecond
	}
	if o.KeyStrategy == "" {
		o.KeyStrategy = config.KeyStrategyTimestamp
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}

	return o
}
