// SPDX-License-Identifier: MIT
// Package apsp is a test-only all-pairs-shortest-path oracle used to check
// the centrality package's per-source Dijkstra/BFS traversals against an
// independently computed ground truth.
//
// Contract:
//   - dist is a dense n×n matrix; +Inf means "no path"; the diagonal must be 0.
//   - Loop order is fixed (k → i → j) to match the deterministic accumulation
//     order used elsewhere in this codebase.
package apsp

import "math"

// FromNetwork builds the dense n×n distance matrix a network.Network implies,
// treating missing edges as +Inf and taking each incident edge's length from
// edgeWeight as given; callers that compare against centrality's
// weighted-arena distances pass an edgeWeight that already applies
// edgeWeightTransform. unweighted collapses every present edge to weight 1 instead.
func FromNetwork(v int, neighbors func(int) []int32, incident func(int) []int32, edgeWeight func(int32) float64, unweighted bool) [][]float64 {
	dist := make([][]float64, v)
	for i := range dist {
		dist[i] = make([]float64, v)
		for j := range dist[i] {
			if i == j {
				dist[i][j] = 0
			} else {
				dist[i][j] = math.Inf(1)
			}
		}
	}

	for u := 0; u < v; u++ {
		nbrs := neighbors(u)
		edges := incident(u)
		for k, nb := range nbrs {
			w := 1.0
			if !unweighted {
				w = edgeWeight(edges[k])
			}
			if w < dist[u][nb] {
				dist[u][nb] = w
			}
		}
	}

	FloydWarshall(dist)
	return dist
}

// FloydWarshall computes all-pairs shortest paths in-place on dist.
//
// Complexity: Time O(n^3), Extra space O(1) beyond the matrix itself.
func FloydWarshall(dist [][]float64) {
	n := len(dist)

	var (
		k, i, j int
		ik, kj  float64
		cand    float64
	)
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			ik = dist[i][k]
			if math.IsInf(ik, 1) {
				continue
			}
			for j = 0; j < n; j++ {
				kj = dist[k][j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < dist[i][j] {
					dist[i][j] = cand
				}
			}
		}
	}
}
