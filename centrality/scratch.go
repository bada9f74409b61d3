package centrality

// predList is a growable, reusable predecessor list for one vertex. Reset
// is O(1) (slice it to zero length); subsequent appends reuse the backing
// array grown by previous sources, so a worker processing many sources from
// the same block pays allocation cost only for the first source that needs
// a given predecessor-list depth.
type predList struct {
	buf []int32
}

func (p *predList) reset() { p.buf = p.buf[:0] }

func (p *predList) add(v int32) { p.buf = append(p.buf, v) }

// unweightedArena owns the per-vertex scratch buffers for one worker
// running the unweighted (BFS) SSSP variant. One arena is allocated per
// worker block and reset(s) before each source it processes; it is never
// reallocated within a block.
type unweightedArena struct {
	P     []predList // P[v]: predecessors of v on a shortest path from the current source
	sigma []int64    // sigma[v]: number of shortest paths from source to v
	d     []int32    // d[v]: BFS layer distance; -1 means unvisited
	delta []float64  // delta[v]: Brandes dependency, reset to 0 per source
	S     []int32    // stack of vertices in finalization order
	sLen  int         // logical length of S (S is capacity-reused, not reallocated)
}

func newUnweightedArena(v int) *unweightedArena {
	a := &unweightedArena{
		P:     make([]predList, v),
		sigma: make([]int64, v),
		d:     make([]int32, v),
		delta: make([]float64, v),
		S:     make([]int32, v),
	}
	return a
}

// reset prepares the arena for a new source s: every buffer is overwritten
// in place (no allocation), per the spec's O(V) mandatory full reset.
func (a *unweightedArena) reset(s int32) {
	for i := range a.d {
		a.d[i] = -1
		a.sigma[i] = 0
		a.delta[i] = 0
		a.P[i].reset()
	}
	a.sLen = 0
	a.sigma[s] = 1
	a.d[s] = 0
}

func (a *unweightedArena) pushS(v int32) {
	a.S[a.sLen] = v
	a.sLen++
}

// weightedArena owns the per-vertex scratch buffers for one worker running
// the weighted (Dijkstra-style) SSSP variant. sigma and d are float64 here:
// sigma because it is rebuilt under the exp(-we) metric, d because distances
// are no longer integral.
type weightedArena struct {
	P     []predList // P[v]: predecessors of v on a shortest path from the current source
	sigma []float64  // sigma[v]: path-count accumulator (rebuilt on strict improvement)
	d     []float64  // d[v]: finalized distance; < 0 means unvisited
	seen  []float64  // seen[v]: tentative (non-finalized) distance; < 0 means none yet
	delta []float64  // delta[v]: Brandes dependency, reset to 0 per source
	S     []int32    // stack of vertices in finalization order
	sLen  int
}

func newWeightedArena(v int) *weightedArena {
	return &weightedArena{
		P:     make([]predList, v),
		sigma: make([]float64, v),
		d:     make([]float64, v),
		seen:  make([]float64, v),
		delta: make([]float64, v),
		S:     make([]int32, v),
	}
}

// reset prepares the arena for a new source s. sigma[s] is primed to 1 and
// seen[s] to 0; d[s] is left unvisited and is set when s is dequeued and
// finalized by the weighted SSSP loop itself (the initial heap entry for s
// carries itself as its own predecessor, so the first dequeue folds
// sigma[s] into itself once more, so sigma[s] becomes 2; every sigma that
// is later built from it is doubled too, which leaves each ratio
// sigma[v]/sigma[w] unchanged).
func (a *weightedArena) reset(s int32) {
	for i := range a.d {
		a.d[i] = -1
		a.seen[i] = -1
		a.sigma[i] = 0
		a.delta[i] = 0
		a.P[i].reset()
	}
	a.sLen = 0
	a.sigma[s] = 1
	a.seen[s] = 0
}

func (a *weightedArena) pushS(v int32) {
	a.S[a.sLen] = v
	a.sLen++
}
