package centrality

import "github.com/katalvlaran/lvlath-centrality/network"

// ComputeStressCentrality computes unnormalized stress centrality over net,
// writing one value per vertex into out. out must have length net.V.
// Stress is always defined on the unweighted SSSP DAG (see spec 4.7), even
// if net.Weighted — unlike betweenness, there is no weighted variant.
//
// Zeroing and ctrl semantics match ComputeBetweennessCentrality.
func ComputeStressCentrality(net *network.Network, out []float64, ctrl *Control) error {
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

	return dispatch(net, out, ctrl, kindStress)
}
