package centrality

import (
	"math"

	"github.com/katalvlaran/lvlath-centrality/network"
)

// edgeWeightTransform converts a stored edge weight into the distance
// contribution used by the weighted SSSP. The source model carries edge
// "strength", converted to a length via exp(-we); this is applied
// uniformly for both the parallel and sequential paths, resolving the
// inconsistency between exp(-we) and 1/we documented in the original.
func edgeWeightTransform(we float64) float64 {
	return math.Exp(-we)
}

// runWeightedSSSP runs a Dijkstra-style traversal from source s over net,
// populating arena's P, sigma, d and S, using pq as scratch priority queue.
// arena and pq must already belong to the calling worker and must have
// been reset for this source (see weightedArena.reset) before this call.
func runWeightedSSSP(net *network.Network, arena *weightedArena, pq *priorityQueue, s int32) {
	pq.reset()
	pq.insert(0.0, s, s)

	for {
		item, ok := pq.extractMin()
		if !ok {
			break
		}
		v, prev, dist := item.vertex, item.predIndex, item.key

		if arena.d[v] >= 0 {
			// Stale heap entry for an already-finalized vertex.
			continue
		}
		arena.sigma[v] += arena.sigma[prev]
		arena.pushS(v)
		arena.d[v] = dist

		neighbors := net.Neighbors(int(v))
		edges := net.IncidentEdge(int(v))
		for i, w := range neighbors {
			if !net.Enabled(int(w)) {
				continue
			}
			we := edgeWeightTransform(net.EdgeWeight(edges[i]))
			vw := arena.d[v] + we

			switch {
			case arena.d[w] < 0 && (arena.seen[w] < 0 || vw < arena.seen[w]):
				arena.seen[w] = vw
				pq.insert(vw, w, v)
				arena.sigma[w] = 0
				arena.P[w].reset()
				arena.P[w].add(v)
			case vw == arena.seen[w]:
				arena.sigma[w] += arena.sigma[v]
				arena.P[w].add(v)
			}
		}
	}
}
