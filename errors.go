package sequin

import "errors"

var (
	// Admission errors.
	ErrDuplicateIndex = errors.New("sequin: index already pending or executing")
	ErrNilFunc        = errors.New("sequin: nil job body")

	// Lifecycle errors.
	ErrDisposed = errors.New("sequin: sequencer disposed")

	// Internal-consistency errors.
	ErrReentrantExecution = errors.New("sequin: due index is already executing")
)
