// Package tick provides cancelable periodic trigger sources for the
// tick-driven sequencing engine.
//
// A [Source] delivers ticks on a channel until stopped. [Interval] is a
// fixed-period source backed by time.Ticker and is the default.
// [Schedule] fires on a cron expression or an "@every" descriptor, for
// sequences that should only drain at calendar boundaries.
package tick

import (
	"sync"
	"time"

	cronlib "github.com/robfig/cron/v3"
)

// Source delivers periodic ticks.
type Source interface {
	// Start begins ticking and returns the delivery channel.
	// Start must be called at most once.
	Start() <-chan time.Time

	// Stop cancels the source permanently. No ticks are delivered
	// after Stop returns. Stop is idempotent.
	Stop()
}

// ──────────────────────────────────────────────────
// Interval
// ──────────────────────────────────────────────────

// Interval ticks at a fixed period.
type Interval struct {
	period time.Duration

	mu      sync.Mutex
	ticker  *time.Ticker
	stopped bool
}

// NewInterval creates a fixed-period tick source.
func NewInterval(period time.Duration) *Interval {
	return &Interval{period: period}
}

// Start begins ticking. Starting an already-stopped source returns a
// channel that never delivers.
func (i *Interval) Start() <-chan time.Time {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.stopped {
		return make(chan time.Time)
	}
	i.ticker = time.NewTicker(i.period)
	return i.ticker.C
}

// Stop cancels the ticker.
func (i *Interval) Stop() {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.stopped = true
	if i.ticker != nil {
		i.ticker.Stop()
	}
}

// ──────────────────────────────────────────────────
// Schedule
// ──────────────────────────────────────────────────

// scheduleParser supports standard 5-field cron and descriptors like
// "@every 30s".
var scheduleParser = cronlib.NewParser(
	cronlib.Minute | cronlib.Hour | cronlib.Dom | cronlib.Month | cronlib.Dow | cronlib.Descriptor,
)

// ParseSchedule parses a cron expression and returns the schedule.
func ParseSchedule(expr string) (cronlib.Schedule, error) {
	return scheduleParser.Parse(expr)
}

// Schedule ticks at the fire times of a cron schedule. A tick that
// arrives while the consumer is busy is dropped, matching time.Ticker
// semantics.
type Schedule struct {
	sched    cronlib.Schedule
	ch       chan time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewSchedule creates a cron-driven tick source from an expression such
// as "* * * * *" or "@every 1s".
func NewSchedule(expr string) (*Schedule, error) {
	sched, err := ParseSchedule(expr)
	if err != nil {
		return nil, err
	}
	return &Schedule{
		sched:  sched,
		ch:     make(chan time.Time, 1),
		stopCh: make(chan struct{}),
	}, nil
}

// Start launches the schedule goroutine and returns the tick channel.
func (s *Schedule) Start() <-chan time.Time {
	go s.loop()
	return s.ch
}

// Stop cancels the schedule.
func (s *Schedule) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}

func (s *Schedule) loop() {
	for {
		now := time.Now()
		next := s.sched.Next(now)
		timer := time.NewTimer(next.Sub(now))

		select {
		case <-s.stopCh:
			timer.Stop()
			return
		case at := <-timer.C:
			select {
			case s.ch <- at:
			default:
				// Consumer busy; drop the tick.
			}
		}
	}
}
