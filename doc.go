// Package lvlathcentrality is the module root of lvlath-centrality: a
// betweenness/stress centrality engine built on lvlath's graph primitives.
//
// 🚀 What is lvlath-centrality?
//
//	A thread-safe module that adds Brandes-style centrality analysis on top
//	of the existing lvlath graph container and algorithm packages:
//
//	  • Core primitives: vertices & edges, mutated safely under R/W locks
//	  • Traversal: BFS, DFS, weighted Dijkstra (reused as building blocks
//	    and as cross-check oracles for the engine's own SSSP variants)
//	  • Builder: deterministic topology factories for tests and fixtures
//	  • Centrality engine: unweighted and weighted single-source shortest
//	    path accumulation, per-worker scratch arenas, and a parallel
//	    dispatcher that partitions source vertices into worker blocks
//
// Under the hood, everything is organized under these subpackages:
//
//	core/       — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	builder/    — deterministic topology factories (paths, stars, grids, random graphs)
//	bfs/ dfs/   — traversal algorithms
//	dijkstra/   — weighted shortest-path runner
//	network/    — compiles a *core.Graph into the dense, int-indexed descriptor the engine consumes
//	centrality/ — betweenness and stress centrality over network.Network
//
// See SPEC_FULL.md and DESIGN.md at the module root for the full design and
// grounding ledger behind the centrality engine.
//
//	go get github.com/katalvlaran/lvlath-centrality
package lvlathcentrality
