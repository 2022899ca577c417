// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithCORS: Answers cross-origin requests for a list of allowed origins and ends OPTIONS preflights.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithMetrics: Records per-route request latency through OpenTelemetry.
//
// Provided helpers:
//   - RegisterPprof: Mounts the net/http/pprof handlers on a router.
package controller
