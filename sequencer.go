package sequin

import (
	"context"

	"github.com/xraph/sequin/job"
)

// FailurePolicy controls what an engine does when a job body returns an
// error.
type FailurePolicy string

const (
	// PropagateFailures surfaces the job error from the call that
	// drove execution and leaves the cursor at the failed index. The
	// consumed index may be re-admitted to retry manually. This is the
	// default for [Chain].
	PropagateFailures FailurePolicy = "propagate"

	// AdvanceOnFailure logs the job error, emits JobFailed, and
	// advances the cursor anyway, so a single bad job cannot stall the
	// sequence. This is the default for [Poller].
	AdvanceOnFailure FailurePolicy = "advance"
)

// Sequencer is the contract shared by both engines.
//
// Indices must form a dense, gap-free sequence starting at the
// configured initial index; a job whose index is not yet due is held
// until all lower-indexed jobs have arrived and settled.
type Sequencer interface {
	// Add admits a job under an explicit index. It fails with
	// ErrDuplicateIndex if the index is already pending or executing,
	// and with ErrDisposed after permanent shutdown.
	Add(ctx context.Context, index int, fn job.Func) error

	// Submit derives the next free index via NextIndex, constructs a
	// job, and admits it. The admitted job is returned so the caller
	// can read the derived index. Two Submit calls racing without
	// synchronization may derive the same index and one will fail with
	// ErrDuplicateIndex; that is a caller responsibility, not an
	// engine defect.
	Submit(ctx context.Context, fn job.Func) (*job.Job, error)

	// NextIndex returns the initial index when nothing is pending or
	// executing, otherwise one past the numerically highest known
	// index.
	NextIndex() int

	// HasPending reports whether any job is pending or executing.
	HasPending() bool

	// Reset discards all pending jobs, clears executing bookkeeping,
	// bumps the generation so any in-flight settlement is ignored, and
	// returns the cursor to the initial index. The in-flight job
	// itself is never canceled.
	Reset()

	// WaitAndReset blocks, without busy-spinning, until nothing is
	// pending or executing, then resets. It returns early with the
	// context error if ctx is done first.
	WaitAndReset(ctx context.Context) error
}

// Compile-time contract checks.
var (
	_ Sequencer = (*Chain)(nil)
	_ Sequencer = (*Poller)(nil)
)
