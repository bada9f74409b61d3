package centrality

import "errors"

// Sentinel errors returned at the entry points. The hot SSSP/accumulation
// loop has no recoverable error path; every error here is a precondition
// violation caught at the boundary before any scratch is touched.
var (
	// ErrNilNetwork indicates a nil *network.Network was passed in.
	ErrNilNetwork = errors.New("centrality: network is nil")

	// ErrOutputLengthMismatch indicates out's length does not equal net.V.
	ErrOutputLengthMismatch = errors.New("centrality: output buffer length mismatch")

	// ErrBadBlockCount is the panic message of WithMaxParallelBlocks when it
	// receives a negative block count (0 selects the default).
	ErrBadBlockCount = errors.New("centrality: block count must be >= 0")
)
