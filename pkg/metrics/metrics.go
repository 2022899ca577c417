// Package metrics holds the Prometheus collectors shared across the
// application. Collectors register with the default registry, which is served
// on the configured metrics path.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// PageOperations counts page directory operations by name and outcome
	// (the error kind, or "OK").
	PageOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "linkify",
		Subsystem: "pages",
		Name:      "operations_total",
		Help:      "Page directory operations by operation and outcome.",
	}, []string{"operation", "outcome"})

	// PageOperationDuration observes page directory operation latency.
	PageOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "linkify",
		Subsystem: "pages",
		Name:      "operation_duration_seconds",
		Help:      "Page directory operation latency.",
		Buckets:   DefaultBuckets,
	}, []string{"operation"})

	// VersionConflicts counts optimistic concurrency retries caused by a
	// concurrent writer.
	VersionConflicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "linkify",
		Subsystem: "pages",
		Name:      "version_conflicts_total",
		Help:      "Page writes rejected because the stored version changed.",
	}, []string{"operation"})

	// PrunedAssets counts superseded assets removed by the background worker.
	PrunedAssets = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "linkify",
		Subsystem: "assets",
		Name:      "pruned_total",
		Help:      "Superseded profile images deleted from the asset store.",
	})
)
