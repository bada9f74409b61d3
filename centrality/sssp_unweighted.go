package centrality

import "github.com/katalvlaran/lvlath-centrality/network"

// runUnweightedSSSP runs a BFS from source s over net, populating arena's
// P, sigma, d and S. arena and queue must already belong to the calling
// worker and must have been reset for this source (see
// unweightedArena.reset) before this call.
//
// Edge-case policies (spec): a disabled neighbor is invisible to the
// traversal entirely. A self-loop never extends the DAG, since
// d[v]+1 == d[v] is always false. A multi-edge between v and w at BFS
// layer difference 1 is counted once per incident edge, since neighbors(v)
// lists one entry per incident edge.
func runUnweightedSSSP(net *network.Network, arena *unweightedArena, queue *simpleQueue, s int32) {
	queue.reset()
	queue.push(s)

	for {
		v, ok := queue.tryPop()
		if !ok {
			break
		}
		arena.pushS(v)

		neighbors := net.Neighbors(int(v))
		dv := arena.d[v]
		for _, w := range neighbors {
			if !net.Enabled(int(w)) {
				continue
			}
			switch {
			case arena.d[w] < 0:
				arena.d[w] = dv + 1
				queue.push(w)
				arena.sigma[w] += arena.sigma[v]
				arena.P[w].add(v)
			case arena.d[w] == dv+1:
				arena.sigma[w] += arena.sigma[v]
				arena.P[w].add(v)
			}
		}
	}
}
