package sequin

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/xraph/sequin/job"
)

// Poller is the tick-driven sequencer. A periodic trigger (a fixed
// interval by default, or any tick.Source) repeatedly asks "is the next
// job due and is nothing executing?" and, if so, launches exactly one
// job as an independent goroutine whose settlement is observed
// asynchronously. No recursion; the engine is purely reactive to ticks.
//
// With the default AdvanceOnFailure policy a failing job is logged,
// emitted through extensions, and the cursor advances anyway, so one
// bad job cannot stall the sequence. Callers needing failure visibility
// must make the job body record its own outcome.
type Poller struct {
	*settings
	state *tracker

	mu      sync.Mutex
	started bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// NewPoller creates a tick-driven sequencer. Call Start to begin
// ticking; jobs admitted before Start are buffered.
func NewPoller(opts ...Option) *Poller {
	s := newSettings(AdvanceOnFailure, opts...)
	return &Poller{
		settings: s,
		state:    newTracker(s.config.InitialIndex),
		stopCh:   make(chan struct{}),
	}
}

// Start launches the tick loop. It returns immediately. Starting a
// disposed poller fails with ErrDisposed; starting twice is a no-op.
func (p *Poller) Start(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state.isDisposed() {
		return ErrDisposed
	}
	if p.started {
		return nil
	}
	p.started = true

	p.logger.Info("poller starting",
		slog.Int("initial_index", p.config.InitialIndex),
	)

	p.wg.Add(1)
	go p.tickLoop()
	return nil
}

// tickLoop consumes the tick source until Dispose.
func (p *Poller) tickLoop() {
	defer p.wg.Done()

	ch := p.ticks.Start()
	for {
		select {
		case <-p.stopCh:
			return
		case <-ch:
			p.tick()
		}
	}
}

// tick performs one scheduling attempt: at most one job starts, and
// only when the executing slot is free and the cursor's job has
// arrived. The job runs without blocking the tick loop.
func (p *Poller) tick() {
	j, gen, err := p.state.takeDue()
	if err != nil {
		// Should be unreachable; the slot is the only writer here.
		p.logger.Error("tick skipped", slog.String("error", err.Error()))
		return
	}
	if j == nil {
		return
	}

	ctx := context.Background()
	p.extensions.EmitJobStarted(ctx, j)

	p.wg.Add(1)
	go p.run(ctx, j, gen)
}

// run executes one job and settles it. A settlement whose generation is
// stale (a reset happened mid-flight) or that lands after dispose
// leaves the core state untouched; the orphaned job's effects are its
// own.
func (p *Poller) run(ctx context.Context, j *job.Job, gen uint64) {
	defer p.wg.Done()

	start := time.Now()
	jobErr := p.invoke(ctx, j)
	if jobErr != nil {
		p.logger.Error("job failed",
			slog.Int("index", j.Index),
			slog.String("error", jobErr.Error()),
		)
		p.extensions.EmitJobFailed(ctx, j, jobErr)
	} else {
		p.extensions.EmitJobCompleted(ctx, j, time.Since(start))
	}

	p.pause(ctx, p.state.settledCount())

	advance := jobErr == nil || p.policy == AdvanceOnFailure
	if !p.state.settle(gen, advance) {
		p.logger.Debug("stale settlement ignored",
			slog.Int("index", j.Index),
			slog.Uint64("generation", gen),
		)
	}
}

// Add admits a job under an explicit index. The next tick picks it up
// if it is due.
func (p *Poller) Add(ctx context.Context, index int, fn job.Func) error {
	_, err := p.admit(ctx, index, fn)
	return err
}

// Submit derives the next free index and admits a job under it.
func (p *Poller) Submit(ctx context.Context, fn job.Func) (*job.Job, error) {
	return p.admit(ctx, p.state.nextIndex(), fn)
}

func (p *Poller) admit(ctx context.Context, index int, fn job.Func) (*job.Job, error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	if p.gate != nil {
		if err := p.gate.Admit(p.state.occupied()); err != nil {
			return nil, err
		}
	}
	j := job.New(index, fn)
	if err := p.state.admit(j); err != nil {
		return nil, err
	}
	p.logger.Debug("job admitted", slog.Int("index", index))
	p.extensions.EmitJobAdmitted(ctx, j)
	return j, nil
}

// NextIndex returns the next free index.
func (p *Poller) NextIndex() int { return p.state.nextIndex() }

// HasPending reports whether any job is pending or executing.
func (p *Poller) HasPending() bool { return p.state.hasPending() }

// Reset discards pending jobs, detaches any in-flight job from future
// bookkeeping, and immediately releases drain waiters: the detached
// job's settlement belongs to the old generation and will never be
// observed.
func (p *Poller) Reset() {
	gen := p.state.reset()
	p.logger.Info("sequence reset", slog.Uint64("generation", gen))
	p.extensions.EmitSequenceReset(context.Background(), gen)
}

// WaitAndReset blocks until nothing is pending or executing, then
// resets.
func (p *Poller) WaitAndReset(ctx context.Context) error {
	if err := p.waitDrained(ctx, p.state); err != nil {
		return err
	}
	p.Reset()
	return nil
}

// Dispose permanently shuts the poller down: the tick source is
// canceled, no further ticks occur, and all future admission fails with
// ErrDisposed. A job already running is not canceled. Dispose is
// idempotent.
func (p *Poller) Dispose() {
	if !p.state.dispose() {
		return
	}

	p.mu.Lock()
	if p.started {
		close(p.stopCh)
	}
	p.mu.Unlock()

	p.ticks.Stop()
	p.logger.Info("poller disposed")
	p.extensions.EmitDisposed(context.Background())
}

// WaitAndDispose blocks until nothing is pending or executing, then
// disposes.
func (p *Poller) WaitAndDispose(ctx context.Context) error {
	if err := p.waitDrained(ctx, p.state); err != nil {
		return err
	}
	p.Dispose()
	return nil
}
