package sequin

import (
	"context"
	"log/slog"
	"time"

	"github.com/xraph/sequin/job"
)

// Chain is the self-continuing sequencer. Admission drives a
// pop-and-run loop in the calling goroutine: after a job settles, the
// loop advances and executes the next due job from the same call, so no
// external driver is needed. Suspension occurs only while awaiting a
// job body or the inter-job delay.
//
// With the default PropagateFailures policy a job error returns from
// the Add or Submit call that drove it, and the cursor stays at the
// failed index. The failed index is no longer pending or executing, so
// the caller may re-admit it to retry.
//
// Chain holds no persistent resource and therefore has no Dispose.
type Chain struct {
	*settings
	state *tracker
}

// NewChain creates a self-continuing sequencer.
func NewChain(opts ...Option) *Chain {
	s := newSettings(PropagateFailures, opts...)
	return &Chain{
		settings: s,
		state:    newTracker(s.config.InitialIndex),
	}
}

// Add admits a job under an explicit index, then drives the sequence:
// every job that becomes due as a consequence runs before Add returns.
func (c *Chain) Add(ctx context.Context, index int, fn job.Func) error {
	if _, err := c.admit(ctx, index, fn); err != nil {
		return err
	}
	return c.drive(ctx)
}

// Submit derives the next free index, admits a job under it, and drives
// the sequence. The admitted job is returned so the caller can read the
// derived index; a non-nil job with a non-nil error means admission
// succeeded but a driven job body failed.
func (c *Chain) Submit(ctx context.Context, fn job.Func) (*job.Job, error) {
	j, err := c.admit(ctx, c.state.nextIndex(), fn)
	if err != nil {
		return nil, err
	}
	return j, c.drive(ctx)
}

func (c *Chain) admit(ctx context.Context, index int, fn job.Func) (*job.Job, error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	if c.gate != nil {
		if err := c.gate.Admit(c.state.occupied()); err != nil {
			return nil, err
		}
	}
	j := job.New(index, fn)
	if err := c.state.admit(j); err != nil {
		return nil, err
	}
	c.logger.Debug("job admitted", slog.Int("index", index))
	c.extensions.EmitJobAdmitted(ctx, j)
	return j, nil
}

// drive pops and runs due jobs until the buffer has no due entry. This
// is the self-continuation written as a flat loop rather than
// recursion, so long chains cannot grow the stack.
func (c *Chain) drive(ctx context.Context) error {
	for {
		j, gen, err := c.state.takeDue()
		if err != nil {
			return err
		}
		if j == nil {
			// Nothing due (waiting for a lower index to arrive)
			// or another call holds the slot and will continue
			// the chain itself.
			return nil
		}

		c.extensions.EmitJobStarted(ctx, j)
		start := time.Now()
		jobErr := c.invoke(ctx, j)
		if jobErr != nil {
			c.logger.Error("job failed",
				slog.Int("index", j.Index),
				slog.String("error", jobErr.Error()),
			)
			c.extensions.EmitJobFailed(ctx, j, jobErr)
		} else {
			c.extensions.EmitJobCompleted(ctx, j, time.Since(start))
		}

		// The inter-job delay runs while the slot is still held, so
		// the next job cannot start early.
		c.pause(ctx, c.state.settledCount())

		advance := jobErr == nil || c.policy == AdvanceOnFailure
		fresh := c.state.settle(gen, advance)

		if jobErr != nil && c.policy == PropagateFailures {
			return jobErr
		}
		if !fresh {
			// A reset raced this job; the continuation is retired.
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// NextIndex returns the next free index.
func (c *Chain) NextIndex() int { return c.state.nextIndex() }

// HasPending reports whether any job is pending or executing.
func (c *Chain) HasPending() bool { return c.state.hasPending() }

// Reset discards pending jobs and detaches any in-flight job from
// future bookkeeping. The in-flight job keeps running to completion;
// only its cursor advance and continuation are suppressed.
func (c *Chain) Reset() {
	gen := c.state.reset()
	c.logger.Info("sequence reset", slog.Uint64("generation", gen))
	c.extensions.EmitSequenceReset(context.Background(), gen)
}

// WaitAndReset blocks until nothing is pending or executing, then
// resets.
func (c *Chain) WaitAndReset(ctx context.Context) error {
	if err := c.waitDrained(ctx, c.state); err != nil {
		return err
	}
	c.Reset()
	return nil
}
