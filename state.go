package sequin

import (
	"math"
	"sync"

	"github.com/xraph/sequin/job"
)

// tracker is the shared core state of a sequencer: the pending buffer,
// the cursor, the generation counter, and the single executing slot.
// All mutation funnels through its mutex so admission's duplicate check
// and insert are atomic, and the slot can never hold more than one
// index. Methods take and release the mutex internally and never call
// out while holding it.
type tracker struct {
	mu sync.Mutex

	initial    int
	cursor     int
	generation uint64
	pending    map[int]*job.Job

	// executing is meaningful only while running is true.
	executing int
	running   bool

	// settled counts jobs settled since the last reset (drives pacing).
	settled int

	disposed bool
}

func newTracker(initial int) *tracker {
	return &tracker{
		initial: initial,
		cursor:  initial,
		pending: make(map[int]*job.Job),
	}
}

// admit stores a job in the pending buffer. The duplicate check covers
// both the buffer and the executing slot; on violation the buffer is
// unchanged.
func (t *tracker) admit(j *job.Job) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.disposed {
		return ErrDisposed
	}
	if _, exists := t.pending[j.Index]; exists {
		return ErrDuplicateIndex
	}
	if t.running && t.executing == j.Index {
		return ErrDuplicateIndex
	}
	t.pending[j.Index] = j
	return nil
}

// takeDue pops the job at the cursor and occupies the executing slot,
// returning the job and the generation captured at start. A nil job
// with nil error means nothing is due or the slot is busy. The
// reentrancy check should be unreachable given single-flight
// discipline; it is checked anyway.
func (t *tracker) takeDue() (*job.Job, uint64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	j, ok := t.pending[t.cursor]
	if !ok {
		return nil, 0, nil
	}
	if t.running {
		if t.executing == t.cursor {
			return nil, 0, ErrReentrantExecution
		}
		return nil, 0, nil
	}
	delete(t.pending, t.cursor)
	t.running = true
	t.executing = t.cursor
	return j, t.generation, nil
}

// settle releases the executing slot after a job finished and the
// inter-job delay elapsed. When gen is still the current generation it
// advances the cursor (if advance is true) and returns true; a stale
// gen means a reset happened mid-flight — the slot now belongs to the
// new epoch and must not be touched, so settle returns false and the
// caller retires its continuation.
func (t *tracker) settle(gen uint64, advance bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if gen != t.generation || t.disposed {
		return false
	}
	t.running = false
	t.settled++
	if advance {
		t.cursor++
	}
	return true
}

// reset clears the buffer and slot bookkeeping, bumps the generation,
// and returns the cursor to the initial index. Returns the new
// generation.
func (t *tracker) reset() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.pending = make(map[int]*job.Job)
	t.running = false
	t.cursor = t.initial
	t.settled = 0
	t.generation++
	return t.generation
}

// dispose marks the tracker permanently closed for admission.
// Returns false if it was already disposed.
func (t *tracker) dispose() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.disposed {
		return false
	}
	t.disposed = true
	return true
}

func (t *tracker) isDisposed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.disposed
}

// nextIndex derives the next free index: the initial index on an empty
// sequencer, otherwise one past the numeric maximum over pending and
// executing indices. Numeric maximum, never insertion order — jobs
// arrive out of numeric order.
func (t *tracker) nextIndex() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.pending) == 0 && !t.running {
		return t.initial
	}
	highest := math.MinInt
	for idx := range t.pending {
		if idx > highest {
			highest = idx
		}
	}
	if t.running && t.executing > highest {
		highest = t.executing
	}
	return highest + 1
}

// hasPending reports whether the buffer is non-empty or the slot is
// occupied.
func (t *tracker) hasPending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending) > 0 || t.running
}

// occupied returns how many jobs the sequencer currently holds
// (pending plus executing), for admission gating.
func (t *tracker) occupied() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := len(t.pending)
	if t.running {
		n++
	}
	return n
}

// settledCount returns how many jobs have settled since the last reset.
func (t *tracker) settledCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.settled
}
