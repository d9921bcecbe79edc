// Package middleware provides composable middleware for job execution.
//
// A [Middleware] is a function that wraps a job body. Middleware are
// composed into a chain using [Chain] and applied by the engines around
// every job invocation. They are applied right-to-left: the first
// middleware in the slice is the outermost wrapper.
//
//	// logging → recover → body
//	chain := middleware.Chain(middleware.Logging(logger), middleware.Recover(logger))
//
// # Built-in Middleware
//
//   - [Logging] — logs job index, duration, and outcome at each execution
//   - [Recover] — catches panics and converts them to errors, so a
//     panicking job body feeds the engine's failure policy instead of
//     crashing the process
//   - [Timeout] — cancels the job context after a configured duration
//   - [Tracing] — wraps execution in an OpenTelemetry span
//   - [Metrics] — records per-job duration and outcome counters
//
// # Writing Custom Middleware
//
//	func MyMiddleware() middleware.Middleware {
//	    return func(ctx context.Context, j *job.Job, next middleware.Handler) error {
//	        // pre-processing
//	        err := next(ctx)
//	        // post-processing
//	        return err
//	    }
//	}
//
// Middleware MUST call next to continue the chain unless intentionally
// short-circuiting.
package middleware
