package centrality

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/katalvlaran/lvlath-centrality/network"
)

// kind selects which SSSP variant and accumulator a dispatch run uses.
type kind int

const (
	kindBetweennessUnweighted kind = iota
	kindBetweennessWeighted
	kindStress
)

// resolveBlockCount applies the spec's dispatch rule: the parallel path is
// only selected when V >= 128 and the resolved block count is > 1.
// MaxParallelBlocks == 0 means "use the engine default", taken here as
// runtime.GOMAXPROCS(0), mirroring the bounded-concurrency default in
// betweenness_approx.go's runtime.NumCPU() cap.
func resolveBlockCount(ctrl *Control, V int) int {
	if V < 128 {
		return 1
	}
	b := 0
	if ctrl != nil {
		b = ctrl.MaxParallelBlocks
	}
	if b == 0 {
		b = runtime.GOMAXPROCS(0)
	}
	if b < 1 {
		b = 1
	}
	if b > V {
		b = V
	}
	return b
}

// blockRange returns the [start, end) source-index range for block i of B
// blocks covering V sources, each of size ceil(V/B) except a truncated
// final block.
func blockRange(i, b, v int) (start, end int) {
	size := (v + b - 1) / b
	start = i * size
	end = start + size
	if end > v {
		end = v
	}
	return start, end
}

// dispatch runs the given kind of centrality computation over net, writing
// unnormalized contributions into out (len(out) == net.V, zeroed only at
// enabled indices per the spec's documented choice — see
// betweenness.go/stress.go entry points). ctrl may be nil.
func dispatch(net *network.Network, out []float64, ctrl *Control, k kind) error {
	V := net.V
	ctrl.setMaxProgress(int64(V))

	blocks := resolveBlockCount(ctrl, V)
	if blocks == 1 {
		localC := make([]float64, V)
		runBlock(net, localC, ctrl, k, 0, V)
		for v, c := range localC {
			out[v] += c
		}
		return nil
	}

	// Parallel path: one goroutine per block, bounded by GOMAXPROCS, with a
	// turnstile of closed channels forcing the reduction into the shared
	// out vector to happen in strictly increasing block-index order
	// regardless of which block's SSSP phase finishes first. This realizes
	// the spec's "enter the critical region in block-index order" choice
	// for bit-equal reproducibility at a fixed block count.
	sem := semaphore.NewWeighted(int64(runtime.GOMAXPROCS(0)))
	turnstiles := make([]chan struct{}, blocks+1)
	for i := range turnstiles {
		turnstiles[i] = make(chan struct{})
	}
	close(turnstiles[0])

	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < blocks; i++ {
		i := i
		start, end := blockRange(i, blocks, V)
		g.Go(func() error {
			if err := sem.Acquire(ctx, 1); err != nil {
				return err
			}
			localC := make([]float64, V)
			runBlock(net, localC, ctrl, k, start, end)
			sem.Release(1)

			<-turnstiles[i]
			for v, c := range localC {
				out[v] += c
			}
			close(turnstiles[i+1])
			return nil
		})
	}
	return g.Wait()
}

// runBlock runs one worker's contiguous source range [start, end) against
// its own arena(s), accumulating into localC. It allocates its scratch
// exactly once and resets it per source, per the spec's reuse discipline.
func runBlock(net *network.Network, localC []float64, ctrl *Control, k kind, start, end int) {
	V := net.V
	switch k {
	case kindBetweennessUnweighted, kindStress:
		arena := newUnweightedArena(V)
		queue := newSimpleQueue(V)
		for s := start; s < end; s++ {
			if ctrl.aborted() {
				return
			}
			if net.Enabled(s) {
				arena.reset(int32(s))
				runUnweightedSSSP(net, arena, queue, int32(s))
				sw := net.VertexWeight(s)
				if k == kindStress {
					accumulateStress(arena, int32(s), sw, localC)
				} else {
					accumulateBetweennessUnweighted(arena, int32(s), sw, localC)
				}
			}
			ctrl.tick()
		}
	case kindBetweennessWeighted:
		arena := newWeightedArena(V)
		pq := newPriorityQueue(V)
		for s := start; s < end; s++ {
			if ctrl.aborted() {
				return
			}
			if net.Enabled(s) {
				arena.reset(int32(s))
				runWeightedSSSP(net, arena, pq, int32(s))
				sw := net.VertexWeight(s)
				accumulateBetweennessWeighted(arena, int32(s), sw, localC)
			}
			ctrl.tick()
		}
	}
}
