package controller

import (
	"fmt"
	"linkify/pkg/metrics"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "linkify/pkg/controller"

// WithMetrics returns a router middleware that opens a server span for every
// matched route and records its latency, labelled by route template, method
// and status code.
func WithMetrics(meterProvider metric.MeterProvider) (mux.MiddlewareFunc, error) {
	duration, err := meterProvider.Meter(instrumentationName).Float64Histogram("http.server.request.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of HTTP server requests."),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create request duration histogram: %w", err)
	}
	tracer := otel.Tracer(instrumentationName)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := "unknown"
			if current := mux.CurrentRoute(r); current != nil {
				if tpl, err := current.GetPathTemplate(); err == nil {
					route = tpl
				}
			}

			ctx, span := tracer.Start(r.Context(), r.Method+" "+route, trace.WithSpanKind(trace.SpanKindServer))
			defer span.End()

			start := time.Now()
			rec := &accessRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r.WithContext(ctx))

			attrs := metric.WithAttributes(
				attribute.String("http.request.method", r.Method),
				attribute.String("http.route", route),
				attribute.Int("http.response.status_code", rec.status),
			)
			duration.Record(ctx, time.Since(start).Seconds(), attrs)
		})
	}, nil
}
