package ext

import (
	"context"
	"log/slog"
	"time"

	"github.com/xraph/sequin/job"
)

// Named entry types pair a hook implementation with the extension name
// captured at registration time. This avoids type-asserting back to
// Extension inside the emit methods.
type jobAdmittedEntry struct {
	name string
	hook JobAdmitted
}

type jobStartedEntry struct {
	name string
	hook JobStarted
}

type jobCompletedEntry struct {
	name string
	hook JobCompleted
}

type jobFailedEntry struct {
	name string
	hook JobFailed
}

type sequenceResetEntry struct {
	name string
	hook SequenceReset
}

type disposedEntry struct {
	name string
	hook Disposed
}

// Registry holds registered extensions and dispatches lifecycle events
// to them. It type-caches extensions at registration time so emit calls
// iterate only over extensions that implement the relevant hook.
type Registry struct {
	extensions []Extension
	logger     *slog.Logger

	// Type-cached slices for each lifecycle hook.
	jobAdmitted   []jobAdmittedEntry
	jobStarted    []jobStartedEntry
	jobCompleted  []jobCompletedEntry
	jobFailed     []jobFailedEntry
	sequenceReset []sequenceResetEntry
	disposed      []disposedEntry
}

// NewRegistry creates an extension registry with the given logger.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{logger: logger}
}

// Register adds an extension and type-asserts it into all applicable
// hook caches. Extensions are notified in registration order.
func (r *Registry) Register(e Extension) {
	r.extensions = append(r.extensions, e)
	name := e.Name()

	if h, ok := e.(JobAdmitted); ok {
		r.jobAdmitted = append(r.jobAdmitted, jobAdmittedEntry{name, h})
	}
	if h, ok := e.(JobStarted); ok {
		r.jobStarted = append(r.jobStarted, jobStartedEntry{name, h})
	}
	if h, ok := e.(JobCompleted); ok {
		r.jobCompleted = append(r.jobCompleted, jobCompletedEntry{name, h})
	}
	if h, ok := e.(JobFailed); ok {
		r.jobFailed = append(r.jobFailed, jobFailedEntry{name, h})
	}
	if h, ok := e.(SequenceReset); ok {
		r.sequenceReset = append(r.sequenceReset, sequenceResetEntry{name, h})
	}
	if h, ok := e.(Disposed); ok {
		r.disposed = append(r.disposed, disposedEntry{name, h})
	}
}

// Extensions returns all registered extensions.
func (r *Registry) Extensions() []Extension { return r.extensions }

// ──────────────────────────────────────────────────
// Event emitters
// ──────────────────────────────────────────────────

// EmitJobAdmitted notifies all extensions that implement JobAdmitted.
func (r *Registry) EmitJobAdmitted(ctx context.Context, j *job.Job) {
	for _, e := range r.jobAdmitted {
		if err := e.hook.OnJobAdmitted(ctx, j); err != nil {
			r.logHookError("OnJobAdmitted", e.name, err)
		}
	}
}

// EmitJobStarted notifies all extensions that implement JobStarted.
func (r *Registry) EmitJobStarted(ctx context.Context, j *job.Job) {
	for _, e := range r.jobStarted {
		if err := e.hook.OnJobStarted(ctx, j); err != nil {
			r.logHookError("OnJobStarted", e.name, err)
		}
	}
}

// EmitJobCompleted notifies all extensions that implement JobCompleted.
func (r *Registry) EmitJobCompleted(ctx context.Context, j *job.Job, elapsed time.Duration) {
	for _, e := range r.jobCompleted {
		if err := e.hook.OnJobCompleted(ctx, j, elapsed); err != nil {
			r.logHookError("OnJobCompleted", e.name, err)
		}
	}
}

// EmitJobFailed notifies all extensions that implement JobFailed.
func (r *Registry) EmitJobFailed(ctx context.Context, j *job.Job, jobErr error) {
	for _, e := range r.jobFailed {
		if err := e.hook.OnJobFailed(ctx, j, jobErr); err != nil {
			r.logHookError("OnJobFailed", e.name, err)
		}
	}
}

// EmitSequenceReset notifies all extensions that implement SequenceReset.
func (r *Registry) EmitSequenceReset(ctx context.Context, generation uint64) {
	for _, e := range r.sequenceReset {
		if err := e.hook.OnSequenceReset(ctx, generation); err != nil {
			r.logHookError("OnSequenceReset", e.name, err)
		}
	}
}

// EmitDisposed notifies all extensions that implement Disposed.
func (r *Registry) EmitDisposed(ctx context.Context) {
	for _, e := range r.disposed {
		if err := e.hook.OnDisposed(ctx); err != nil {
			r.logHookError("OnDisposed", e.name, err)
		}
	}
}

// logHookError logs a warning when a lifecycle hook returns an error.
// Errors from hooks are never propagated — they must not block the sequence.
func (r *Registry) logHookError(hook, extName string, err error) {
	r.logger.Warn("extension hook error",
		slog.String("hook", hook),
		slog.String("extension", extName),
		slog.String("error", err.Error()),
	)
}
