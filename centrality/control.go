package centrality

import "sync/atomic"

// Control carries the optional progress/cancellation/passthrough surface
// for a centrality computation. A nil *Control is valid everywhere a
// *Control parameter is accepted; it is treated as "no control requested".
//
// CurrentProgress and MaxProgress are written by the engine; callers only
// read them (typically from inside UpdateCallback). MaxParallelBlocks,
// UpdateCallback, ShouldAbort, and Context are set by the caller before the
// computation starts and are read-only to the engine thereafter.
type Control struct {
	// MaxParallelBlocks bounds the worker-block count. 0 means "use the
	// engine default"; 1 forces the sequential path; values > 1 enable the
	// parallel path when the network also satisfies the V >= 128 threshold.
	MaxParallelBlocks int

	// CurrentProgress is incremented once per source vertex processed,
	// across all worker blocks. Safe to read concurrently with the
	// computation; safe to increment only by the engine itself.
	CurrentProgress atomic.Int64

	// MaxProgress is set to net.V when the computation starts.
	MaxProgress int64

	// UpdateCallback, if non-nil, is invoked once per source processed,
	// from whichever worker goroutine processed that source. It must be
	// safe to call concurrently from multiple workers, or must serialize
	// internally; the engine does not serialize calls to it.
	UpdateCallback func(c *Control)

	// ShouldAbort, if non-nil, is polled once per source. A true result is
	// advisory: the source already in flight completes and contributes to
	// the result; the engine stops scheduling further sources but makes no
	// promise about how quickly in-flight blocks notice.
	ShouldAbort func() bool

	// Context is an opaque value passed through untouched; the engine
	// never inspects or dereferences it.
	Context any
}

// ControlOption configures a Control constructed via NewControl.
type ControlOption func(*Control)

// WithMaxParallelBlocks sets MaxParallelBlocks. Panics if n < 0, mirroring
// this module's convention for functional options that receive a
// structurally invalid argument (see dijkstra.WithMaxDistance).
func WithMaxParallelBlocks(n int) ControlOption {
	if n < 0 {
		panic(ErrBadBlockCount.Error())
	}
	return func(c *Control) { c.MaxParallelBlocks = n }
}

// WithUpdateCallback sets UpdateCallback.
func WithUpdateCallback(fn func(c *Control)) ControlOption {
	return func(c *Control) { c.UpdateCallback = fn }
}

// WithShouldAbort sets ShouldAbort.
func WithShouldAbort(fn func() bool) ControlOption {
	return func(c *Control) { c.ShouldAbort = fn }
}

// WithContext sets the opaque Context passthrough.
func WithContext(ctx any) ControlOption {
	return func(c *Control) { c.Context = ctx }
}

// NewControl builds a *Control from functional options. Passing no options
// yields a Control equivalent to the engine default (sequential-or-parallel
// auto-selection, no callback, no abort, nil Context).
func NewControl(opts ...ControlOption) *Control {
	c := &Control{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// tick increments progress and invokes the callback, if any. Called once
// per source vertex by whichever worker processed it.
func (c *Control) tick() {
	if c == nil {
		return
	}
	c.CurrentProgress.Add(1)
	if c.UpdateCallback != nil {
		c.UpdateCallback(c)
	}
}

// aborted reports whether the caller has requested cooperative cancellation.
func (c *Control) aborted() bool {
	return c != nil && c.ShouldAbort != nil && c.ShouldAbort()
}

// setMaxProgress initializes MaxProgress and zeroes CurrentProgress at the
// start of a computation. No-op on a nil Control.
func (c *Control) setMaxProgress(v int64) {
	if c == nil {
		return
	}
	c.MaxProgress = v
	c.CurrentProgress.Store(0)
}
