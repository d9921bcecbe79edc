package middleware

import (
	"context"
	"time"

	"github.com/xraph/sequin/job"
)

// Timeout returns middleware that enforces a per-job execution deadline.
// If d is non-zero, a context.WithTimeout wraps the body call. When the
// deadline is exceeded the context is cancelled and the body should
// return context.DeadlineExceeded. The engine never aborts a body that
// ignores its context; the deadline only makes cancellation observable.
func Timeout(d time.Duration) Middleware {
	return func(ctx context.Context, _ *job.Job, next Handler) error {
		if d > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, d)
			defer cancel()
		}
		return next(ctx)
	}
}
