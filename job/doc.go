// Package job defines the job entity consumed by the sequin engines.
//
// A [Job] is an index-tagged, zero-argument asynchronous unit of work.
// The body is an opaque [Func]; the engines only invoke it and await its
// completion or failure. Indices are caller-assigned and must be unique
// within one sequencer's active lifetime (pending plus executing).
//
// Lifecycle:
//
//	admitted → pending → executing → settled (discarded)
//
// A sequencer exclusively owns a job from admission until settlement.
// Callers keep no reference for correctness; the admitted *Job returned
// by Submit exists only so the caller can read the derived index.
package job
