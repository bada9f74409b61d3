package centrality

import "github.com/katalvlaran/lvlath-centrality/network"

// ComputeBetweennessCentrality computes unnormalized betweenness centrality
// over net, writing one value per vertex into out. out must have length
// net.V. If net.Weighted, the weighted (Dijkstra-style) SSSP variant is
// used with the exp(-we) edge transform; otherwise the unweighted (BFS)
// variant is used.
//
// Per the spec's documented choice, only enabled vertices are zeroed at
// entry; a disabled vertex's slot in out is left untouched, so callers
// reusing an output buffer across runs must zero disabled slots themselves
// if they need a clean baseline.
//
// ctrl may be nil. Normalization (e.g. dividing by (N-1)(N-2)) is not
// performed here; apply it at the call site if needed.
func ComputeBetweennessCentrality(net *network.Network, out []float64, ctrl *Control) error {
	if net == nil {
		return ErrNilNetwork
	}
	if len(out) != net.V {
		return ErrOutputLengthMismatch
	}
	for v := 0; v < net.V; v++ {
		if net.Enabled(v) {
			out[v] = 0
		}
	}

	k := kindBetweennessUnweighted
	if net.Weighted {
		k = kindBetweennessWeighted
	}
	return dispatch(net, out, ctrl, k)
}
