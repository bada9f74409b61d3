// Package network compiles a *core.Graph into an immutable, dense,
// int-indexed descriptor (Network) for the centrality package.
//
// What:
//   - Network mirrors the read-only network model consumed by the
//     centrality engine: vertex count, per-vertex enabled flag and weight,
//     per-vertex neighbor/incident-edge lists, and per-edge weight.
//
// Why:
//   - core.Graph indexes everything by string id through maps guarded by
//     RWMutex. A centrality run touches every vertex and edge once per
//     source vertex; paying map-lookup and lock cost inside that hot loop
//     would dominate runtime. Compile pays the string-keyed cost once and
//     hands the engine flat, lock-free, int-indexed slices.
//
// Usage:
//
//	net, err := network.Compile(g)
//	if err != nil { ... }
//	out := make([]float64, net.V)
//	err = centrality.ComputeBetweennessCentrality(net, out, nil)
//
// Options:
//   - WithDefaultVertexWeight overrides the fallback weight (1.0) applied
//     to vertices without a centrality.weight metadata entry.
//
// Errors:
//   - ErrNilGraph, ErrNegativeWeight, ErrBadMetadataType.
package network
