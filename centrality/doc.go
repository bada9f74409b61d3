// Package centrality computes betweenness and stress centrality over a
// network.Network using Brandes' algorithm.
//
// What:
//   - Two entry points, ComputeBetweennessCentrality and
//     ComputeStressCentrality, each running a per-source single-source
//     shortest-path pass (BFS for unweighted, a Dijkstra-style traversal
//     with lazy decrease-key for weighted betweenness) followed by a
//     Brandes-style backward dependency accumulation.
//   - Source vertices are partitioned into contiguous worker blocks and
//     processed in parallel once the network is large enough
//     (V >= 128) and more than one block is requested; each worker owns
//     its own scratch arena, reused across every source in its block.
//
// Why:
//   - The forward SSSP pass and the backward accumulation pass are the
//     only two passes Brandes' algorithm needs; everything else in this
//     package exists to make that pair of passes allocation-free per
//     source and safe to run across worker blocks concurrently.
//
// Complexity:
//   - Unweighted: O(V*(V+E)) sequential, O((V*(V+E))/B) parallel across
//     B worker blocks.
//   - Weighted: O(V*(V+E)*log V) sequential (heap operations dominate).
//
// Usage:
//
//	net, err := network.Compile(g)
//	out := make([]float64, net.V)
//	err = centrality.ComputeBetweennessCentrality(net, out, nil)
//
// Options:
//   - centrality.NewControl(WithMaxParallelBlocks(n), ...) configures the
//     optional progress/cancellation surface.
//
// Errors:
//   - ErrNilNetwork, ErrOutputLengthMismatch; ErrBadBlockCount's message is
//     the panic value of WithMaxParallelBlocks for a negative count.
package centrality
