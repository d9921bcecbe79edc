package observability

import (
	"context"
	"time"

	gu "github.com/xraph/go-utils/metrics"

	"github.com/xraph/sequin/ext"
	"github.com/xraph/sequin/job"
)

// Compile-time interface checks.
var (
	_ ext.Extension     = (*MetricsExtension)(nil)
	_ ext.JobAdmitted   = (*MetricsExtension)(nil)
	_ ext.JobStarted    = (*MetricsExtension)(nil)
	_ ext.JobCompleted  = (*MetricsExtension)(nil)
	_ ext.JobFailed     = (*MetricsExtension)(nil)
	_ ext.SequenceReset = (*MetricsExtension)(nil)
	_ ext.Disposed      = (*MetricsExtension)(nil)
)

// MetricsExtension records sequencer lifecycle metrics via go-utils
// MetricFactory. Register it as a sequin extension to automatically
// track admission rates, completion counts, failure rates, resets, and
// disposals.
type MetricsExtension struct {
	JobAdmitted  gu.Counter
	JobStarted   gu.Counter
	JobCompleted gu.Counter
	JobFailed    gu.Counter
	Resets       gu.Counter
	Disposals    gu.Counter
}

// NewMetricsExtension creates a MetricsExtension using a default metrics collector.
func NewMetricsExtension() *MetricsExtension {
	return NewMetricsExtensionWithFactory(gu.NewMetricsCollector("sequin/observability"))
}

// NewMetricsExtensionWithFactory creates a MetricsExtension with the
// provided MetricFactory. Use gu.NewMetricsCollector for testing.
func NewMetricsExtensionWithFactory(factory gu.MetricFactory) *MetricsExtension {
	return &MetricsExtension{
		JobAdmitted:  factory.Counter("sequin.job.admitted"),
		JobStarted:   factory.Counter("sequin.job.started"),
		JobCompleted: factory.Counter("sequin.job.completed"),
		JobFailed:    factory.Counter("sequin.job.failed"),
		Resets:       factory.Counter("sequin.sequence.resets"),
		Disposals:    factory.Counter("sequin.sequence.disposals"),
	}
}

// Name implements ext.Extension.
func (m *MetricsExtension) Name() string { return "observability-metrics" }

// ── Job lifecycle hooks ─────────────────────────────

// OnJobAdmitted implements ext.JobAdmitted.
func (m *MetricsExtension) OnJobAdmitted(_ context.Context, _ *job.Job) error {
	m.JobAdmitted.Inc()
	return nil
}

// OnJobStarted implements ext.JobStarted.
func (m *MetricsExtension) OnJobStarted(_ context.Context, _ *job.Job) error {
	m.JobStarted.Inc()
	return nil
}

// OnJobCompleted implements ext.JobCompleted.
func (m *MetricsExtension) OnJobCompleted(_ context.Context, _ *job.Job, _ time.Duration) error {
	m.JobCompleted.Inc()
	return nil
}

// OnJobFailed implements ext.JobFailed.
func (m *MetricsExtension) OnJobFailed(_ context.Context, _ *job.Job, _ error) error {
	m.JobFailed.Inc()
	return nil
}

// ── Sequencer lifecycle hooks ───────────────────────

// OnSequenceReset implements ext.SequenceReset.
func (m *MetricsExtension) OnSequenceReset(_ context.Context, _ uint64) error {
	m.Resets.Inc()
	return nil
}

// OnDisposed implements ext.Disposed.
func (m *MetricsExtension) OnDisposed(_ context.Context) error {
	m.Disposals.Inc()
	return nil
}
