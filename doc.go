// Package sequin provides index-ordered sequencing of asynchronous jobs.
// Jobs admitted in any order execute strictly in ascending index order,
// one at a time, even when arrivals are driven by a non-deterministic
// external source such as network chunks arriving out of order.
//
// Sequin is designed as a library, not a service. Import it, pick an
// engine, and submit jobs as ordinary Go functions.
//
// # Quick Start
//
//	seq := sequin.NewChain(
//	    sequin.WithInitialIndex(0),
//	    sequin.WithInterJobDelay(10*time.Millisecond),
//	)
//	_ = seq.Add(ctx, 2, handleChunk2) // buffered, not due yet
//	_ = seq.Add(ctx, 0, handleChunk0) // runs 0; 1 is missing, so stop
//	_ = seq.Add(ctx, 1, handleChunk1) // runs 1, then the buffered 2
//
// # Engines
//
// Two engines implement the same [Sequencer] contract with different
// scheduling models:
//
//   - [Chain] — self-continuing: after a job settles, the engine
//     advances and executes the next due job from within the same call,
//     no external driver needed. Job failures propagate out of the Add
//     call that drove them (by default).
//   - [Poller] — tick-driven: a periodic trigger asks "is the next job
//     due and is nothing executing?" and launches at most one job per
//     tick. Job failures are swallowed and the sequence advances (by
//     default), so one bad job cannot stall the whole sequence.
//
// Both enforce single-flight execution: at most one job runs at any
// instant. Reset discards buffered work and detaches any in-flight job
// from future bookkeeping via a generation counter; it never cancels a
// job that has already started.
package sequin
