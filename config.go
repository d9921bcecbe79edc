package sequin

import "time"

// Config holds configuration shared by the sequencing engines.
type Config struct {
	// InitialIndex is the index of the first job in the sequence.
	// The cursor returns here on every reset.
	InitialIndex int

	// InterJobDelay is the pause applied after each job settles,
	// before the cursor advances. The default pacing strategy returns
	// this fixed value; WithPace replaces it entirely.
	InterJobDelay time.Duration

	// TickInterval is how often the tick-driven engine checks for a
	// due job. Ignored by the self-continuing engine.
	TickInterval time.Duration

	// DrainPollInterval is how often WaitAndReset / WaitAndDispose
	// re-check for emptiness while draining.
	DrainPollInterval time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		InitialIndex:      0,
		InterJobDelay:     0,
		TickInterval:      50 * time.Millisecond,
		DrainPollInterval: 10 * time.Millisecond,
	}
}
