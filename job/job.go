package job

import (
	"context"
	"time"

	"github.com/xraph/sequin/id"
)

// Func is the body of a job: an opaque asynchronous operation with no
// arguments and no return value beyond success or failure. The context
// carries the deadline and cancellation of the call that drives
// execution; a job that ignores it simply runs to completion.
type Func func(ctx context.Context) error

// Job is a unit of work tagged with its position in the sequence.
type Job struct {
	// ID identifies the job in logs and traces. It plays no part in
	// ordering.
	ID id.ID

	// Index is the job's position in the dense, gap-free sequence.
	// Execution order is ascending numeric index order regardless of
	// admission order.
	Index int

	// Fn is the job body. Must be non-nil at admission.
	Fn Func

	// AdmittedAt records when the sequencer accepted the job.
	AdmittedAt time.Time
}

// New creates a Job with the given index and body.
func New(index int, fn Func) *Job {
	return &Job{
		ID:         id.NewJobID(),
		Index:      index,
		Fn:         fn,
		AdmittedAt: time.Now().UTC(),
	}
}
