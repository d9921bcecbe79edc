// Package pace provides pluggable inter-job delay strategies for the
// sequencing engines. All strategies are safe for concurrent use (they
// are stateless).
package pace

import (
	"math/rand/v2"
	"time"
)

// Strategy computes the delay applied after a job settles, before the
// cursor advances to the next index.
type Strategy interface {
	// Delay returns how long to pause after the nth settled job.
	// n is 0-based and resets to zero when the sequence is reset.
	Delay(n int) time.Duration
}

// ──────────────────────────────────────────────────
// Constant
// ──────────────────────────────────────────────────

// Constant always returns the same delay regardless of position.
type Constant struct {
	Interval time.Duration
}

// NewConstant creates a constant pacing strategy.
func NewConstant(interval time.Duration) *Constant {
	return &Constant{Interval: interval}
}

// Delay returns the fixed interval.
func (c *Constant) Delay(_ int) time.Duration {
	return c.Interval
}

// ──────────────────────────────────────────────────
// Linear
// ──────────────────────────────────────────────────

// Linear increases the delay linearly as the sequence progresses.
// Delay = min(Initial * (n+1), Max). Useful for draining a backlog
// quickly and then easing off.
type Linear struct {
	Initial time.Duration
	Max     time.Duration
}

// NewLinear creates a linear pacing strategy.
func NewLinear(initial, maxDelay time.Duration) *Linear {
	return &Linear{Initial: initial, Max: maxDelay}
}

// Delay returns Initial * (n+1), capped at Max.
func (l *Linear) Delay(n int) time.Duration {
	d := l.Initial * time.Duration(n+1)
	if l.Max > 0 && d > l.Max {
		return l.Max
	}
	return d
}

// ──────────────────────────────────────────────────
// Jitter (full jitter over a constant base)
// ──────────────────────────────────────────────────

// Jitter returns a random delay in [0, Interval] for each job.
// This de-synchronizes sequencers that were created together and would
// otherwise wake in lockstep.
type Jitter struct {
	Interval time.Duration
}

// NewJitter creates a full-jitter pacing strategy.
func NewJitter(interval time.Duration) *Jitter {
	return &Jitter{Interval: interval}
}

// Delay returns a random duration in [0, Interval].
func (j *Jitter) Delay(_ int) time.Duration {
	if j.Interval <= 0 {
		return 0
	}
	return time.Duration(rand.Float64() * float64(j.Interval)) //nolint:gosec // jitter intentionally uses non-crypto rand
}

// ──────────────────────────────────────────────────
// None
// ──────────────────────────────────────────────────

// None is a zero-delay strategy. It is the default for the tick-driven
// engine, where tick spacing already paces execution.
type None struct{}

// Delay returns zero.
func (None) Delay(_ int) time.Duration { return 0 }
