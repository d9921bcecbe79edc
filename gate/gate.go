// Package gate provides optional admission backpressure for sequencers.
//
// A [Gate] bounds how much work a sequencer will buffer (a cap on
// pending plus executing jobs) and how fast it will accept new work (a
// token-bucket rate limit). Admission that violates either bound fails
// immediately with [ErrBufferFull] or [ErrThrottled]; the pending
// buffer is left unchanged, the same contract shape as a duplicate
// index.
package gate

import (
	"errors"
	"sync"

	"golang.org/x/time/rate"
)

var (
	// ErrBufferFull is returned when admission would exceed the
	// configured cap on buffered jobs.
	ErrBufferFull = errors.New("sequin: admission buffer full")

	// ErrThrottled is returned when admission exceeds the configured
	// sustained rate.
	ErrThrottled = errors.New("sequin: admission rate exceeded")
)

// Config defines admission bounds.
type Config struct {
	// MaxBuffered caps pending plus executing jobs. Zero means no cap.
	MaxBuffered int

	// RateLimit is the maximum sustained admissions per second.
	// Zero disables rate limiting.
	RateLimit float64

	// RateBurst is the burst size for the token-bucket rate limiter.
	// Defaults to 1 if RateLimit is set but RateBurst is zero.
	RateBurst int
}

// Gate enforces admission bounds. It is safe for concurrent use.
type Gate struct {
	mu      sync.Mutex
	config  Config
	limiter *rate.Limiter
}

// New creates a Gate with the given bounds.
func New(cfg Config) *Gate {
	g := &Gate{config: cfg}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = 1
		}
		g.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	return g
}

// Admit checks whether one more job may be admitted given the number of
// jobs the sequencer currently holds (pending plus executing). The cap
// is checked before the rate limiter so a full buffer does not consume
// rate tokens.
func (g *Gate) Admit(occupied int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.config.MaxBuffered > 0 && occupied >= g.config.MaxBuffered {
		return ErrBufferFull
	}
	if g.limiter != nil && !g.limiter.Allow() {
		return ErrThrottled
	}
	return nil
}
