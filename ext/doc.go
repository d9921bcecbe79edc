// Package ext defines the extension system for sequin.
//
// Extensions are notified of sequencer lifecycle events and can react
// to them — recording metrics, emitting webhooks, writing audit logs,
// etc. Each lifecycle hook is a separate interface so extensions opt in
// only to the events they care about.
//
// # Implementing an Extension
//
//	type MyExtension struct{}
//
//	func (e *MyExtension) Name() string { return "my-extension" }
//
//	// Opt in to specific hooks by implementing their interfaces.
//	func (e *MyExtension) OnJobCompleted(ctx context.Context, j *job.Job, elapsed time.Duration) error {
//	    log.Printf("job %d completed in %s", j.Index, elapsed)
//	    return nil
//	}
//
// # Lifecycle Hooks
//
//   - [JobAdmitted] — job was accepted into the pending buffer
//   - [JobStarted] — the engine began executing the job
//   - [JobCompleted] — job finished successfully
//   - [JobFailed] — job finished with an error
//   - [SequenceReset] — the sequence was reset to its initial index
//   - [Disposed] — the sequencer was permanently shut down
//
// The [Registry] fans out each event to all registered extensions that
// implement the corresponding hook interface.
package ext
