package ext

import (
	"context"
	"time"

	"github.com/xraph/sequin/job"
)

// Extension is the base interface all extensions must implement.
type Extension interface {
	// Name returns a unique human-readable name for the extension.
	Name() string
}

// ──────────────────────────────────────────────────
// Job lifecycle hooks
// ──────────────────────────────────────────────────

// JobAdmitted is called after a job is accepted into the pending buffer.
type JobAdmitted interface {
	OnJobAdmitted(ctx context.Context, j *job.Job) error
}

// JobStarted is called when the engine begins executing a job.
type JobStarted interface {
	OnJobStarted(ctx context.Context, j *job.Job) error
}

// JobCompleted is called after a job finishes successfully.
type JobCompleted interface {
	OnJobCompleted(ctx context.Context, j *job.Job, elapsed time.Duration) error
}

// JobFailed is called when a job body returns an error.
type JobFailed interface {
	OnJobFailed(ctx context.Context, j *job.Job, err error) error
}

// ──────────────────────────────────────────────────
// Sequencer lifecycle hooks
// ──────────────────────────────────────────────────

// SequenceReset is called after the sequence is reset. generation is
// the epoch that became current as a result of the reset.
type SequenceReset interface {
	OnSequenceReset(ctx context.Context, generation uint64) error
}

// Disposed is called when a sequencer is permanently shut down.
type Disposed interface {
	OnDisposed(ctx context.Context) error
}
