// Package observability provides a metrics extension for sequin. The
// MetricsExtension implements lifecycle hooks to record system-wide
// counters for job admission, start, completion, failure, reset, and
// dispose events.
//
// For per-execution tracing and metrics, see the middleware package:
// middleware.Tracing() and middleware.Metrics().
package observability
