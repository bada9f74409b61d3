package centrality

// accumulateBetweennessUnweighted converts an unweighted SSSP result
// (arena.P, arena.sigma, arena.S) for source s into per-vertex Brandes
// dependency contributions added into localC, scaled by sourceWeight.
//
// S is popped in reverse finalization order, so every w is processed only
// after every x with w in P[x] has already contributed to delta[w] — the
// invariant that makes a single backward pass sufficient.
func accumulateBetweennessUnweighted(arena *unweightedArena, s int32, sourceWeight float64, localC []float64) {
	for arena.sLen > 0 {
		arena.sLen--
		w := arena.S[arena.sLen]
		sigmaW := float64(arena.sigma[w])
		for _, v := range arena.P[w].buf {
			arena.delta[v] += (float64(arena.sigma[v]) / sigmaW) * (1 + arena.delta[w])
		}
		if w != s {
			localC[w] += sourceWeight * arena.delta[w]
		}
	}
}

// accumulateBetweennessWeighted is accumulateBetweennessUnweighted's twin
// for the weighted SSSP variant, where sigma is already float64.
func accumulateBetweennessWeighted(arena *weightedArena, s int32, sourceWeight float64, localC []float64) {
	for arena.sLen > 0 {
		arena.sLen--
		w := arena.S[arena.sLen]
		sigmaW := arena.sigma[w]
		for _, v := range arena.P[w].buf {
			arena.delta[v] += (arena.sigma[v] / sigmaW) * (1 + arena.delta[w])
		}
		if w != s {
			localC[w] += sourceWeight * arena.delta[w]
		}
	}
}

// accumulateStress converts an unweighted SSSP result into stress
// centrality contributions. Unlike betweenness, the recurrence has no
// sigma ratio (every shortest-path instance counts, not every shortest-path
// fraction), and the contribution is scaled by sigma[w] itself: it counts
// total shortest-path instances through w across all source-target pairs.
func accumulateStress(arena *unweightedArena, s int32, sourceWeight float64, localC []float64) {
	for arena.sLen > 0 {
		arena.sLen--
		w := arena.S[arena.sLen]
		for _, v := range arena.P[w].buf {
			arena.delta[v] += 1 + arena.delta[w]
		}
		if w != s {
			localC[w] += float64(arena.sigma[w]) * sourceWeight * arena.delta[w]
		}
	}
}
