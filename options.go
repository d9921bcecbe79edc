package sequin

import (
	"context"
	"log/slog"
	"time"

	"github.com/xraph/sequin/ext"
	"github.com/xraph/sequin/gate"
	"github.com/xraph/sequin/id"
	"github.com/xraph/sequin/job"
	"github.com/xraph/sequin/middleware"
	"github.com/xraph/sequin/pace"
	"github.com/xraph/sequin/tick"
)

// settings is the resolved option set shared by both engines.
type settings struct {
	config     Config
	logger     *slog.Logger
	extensions *ext.Registry
	middleware []middleware.Middleware
	gate       *gate.Gate
	pace       pace.Strategy
	ticks      tick.Source
	policy     FailurePolicy
}

// Option configures an engine.
type Option func(*settings)

// newSettings resolves options over defaults. The pacing strategy and
// tick source depend on config values, so they are resolved last unless
// explicitly set.
func newSettings(defaultPolicy FailurePolicy, opts ...Option) *settings {
	s := &settings{
		config: DefaultConfig(),
		logger: slog.Default(),
		policy: defaultPolicy,
	}
	for _, opt := range opts {
		opt(s)
	}
	// Each engine instance logs under its own sequence ID.
	s.logger = s.logger.With(slog.String("sequence_id", id.NewSequenceID().String()))
	if s.extensions == nil {
		s.extensions = ext.NewRegistry(s.logger)
	}
	if s.pace == nil {
		s.pace = pace.NewConstant(s.config.InterJobDelay)
	}
	if s.ticks == nil {
		s.ticks = tick.NewInterval(s.config.TickInterval)
	}
	return s
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(s *settings) { s.config = cfg }
}

// WithInitialIndex sets the index of the first job in the sequence.
func WithInitialIndex(i int) Option {
	return func(s *settings) { s.config.InitialIndex = i }
}

// WithInterJobDelay sets the fixed pause applied after each job
// settles. Replaced entirely by WithPace.
func WithInterJobDelay(d time.Duration) Option {
	return func(s *settings) { s.config.InterJobDelay = d }
}

// WithTickInterval sets how often the tick-driven engine checks for a
// due job. Ignored by the self-continuing engine and when WithTickSource
// is set.
func WithTickInterval(d time.Duration) Option {
	return func(s *settings) { s.config.TickInterval = d }
}

// WithTickSource replaces the tick-driven engine's periodic trigger.
func WithTickSource(src tick.Source) Option {
	return func(s *settings) { s.ticks = src }
}

// WithLogger sets the structured logger for the engine.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithExtensions sets the extension registry lifecycle events are
// emitted through.
func WithExtensions(r *ext.Registry) Option {
	return func(s *settings) { s.extensions = r }
}

// WithMiddleware sets the middleware applied around every job body,
// outermost first.
func WithMiddleware(mws ...middleware.Middleware) Option {
	return func(s *settings) { s.middleware = mws }
}

// WithGate sets an admission gate consulted before every Add/Submit.
func WithGate(g *gate.Gate) Option {
	return func(s *settings) { s.gate = g }
}

// WithPace sets the inter-job pacing strategy, replacing the fixed
// InterJobDelay.
func WithPace(p pace.Strategy) Option {
	return func(s *settings) { s.pace = p }
}

// WithFailurePolicy overrides the engine's default job-failure policy.
func WithFailurePolicy(p FailurePolicy) Option {
	return func(s *settings) { s.policy = p }
}

// invoke runs the job body through the middleware chain.
func (s *settings) invoke(ctx context.Context, j *job.Job) error {
	return middleware.Chain(s.middleware...)(ctx, j, middleware.Handler(j.Fn))
}

// pause applies the inter-job delay for the nth settled job. It cuts
// short when ctx is done; the engine still completes its bookkeeping.
func (s *settings) pause(ctx context.Context, n int) {
	d := s.pace.Delay(n)
	if d <= 0 {
		return
	}
	select {
	case <-time.After(d):
	case <-ctx.Done():
	}
}

// waitDrained blocks until the tracker holds no pending or executing
// jobs, re-checking at DrainPollInterval. No tight spin.
func (s *settings) waitDrained(ctx context.Context, state *tracker) error {
	for state.hasPending() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.config.DrainPollInterval):
		}
	}
	return nil
}
