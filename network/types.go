// Package network compiles a *core.Graph into Network: an immutable, dense,
// int-indexed descriptor consumed by the centrality engine.
//
// The centrality engine treats the network container itself as an external
// collaborator — it never mutates a core.Graph and never walks
// map[string]*Vertex adjacency during a hot loop. Compile pays that
// string-keyed-map cost once, up front, and hands the engine flat slices
// indexed by a dense int vertex id.
//
// Complexity: Compile is O(V + E log d) (the neighbor sort cost is already
// paid by core.Graph.Neighbors; Compile does not re-sort).
package network

import (
	"errors"
)

// Sentinel errors returned by Compile and the metadata accessors.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to Compile.
	ErrNilGraph = errors.New("network: graph is nil")

	// ErrNegativeWeight indicates an edge or vertex weight was negative.
	ErrNegativeWeight = errors.New("network: negative weight")

	// ErrBadMetadataType indicates a reserved metadata key held a value of
	// the wrong Go type (e.g. centrality.weight stored as a string).
	ErrBadMetadataType = errors.New("network: metadata value has unexpected type")
)

// Reserved core.Vertex.Metadata keys read by Compile. core.Vertex only
// carries ID and a free-form Metadata map, so per-vertex weight/enabled
// state rides in it rather than growing core.Vertex itself.
const (
	// MetaWeight is the per-vertex weight key, float64, default 1.0.
	MetaWeight = "centrality.weight"

	// MetaEnabled is the per-vertex participation key, bool, default true.
	MetaEnabled = "centrality.enabled"
)

// Network is the compiled, read-only descriptor the centrality engine
// consumes. Every slice is indexed by the dense vertex id in [0, V); no
// method on Network mutates it after Compile returns.
type Network struct {
	// V is the vertex count.
	V int

	// Weighted reports whether edgeWeight carries meaningful values.
	// Mirrors core.Graph.Weighted() at compile time.
	Weighted bool

	// enabled[v] is false for vertices excluded from SSSP as both source
	// and neighbor.
	enabled []bool

	// vertexWeight[v] multiplies every contribution originating at v.
	vertexWeight []float64

	// neighbors[v] is the ordered sequence of neighbor vertex ids of v,
	// one entry per incident edge (multi-edges repeat a neighbor).
	neighbors [][]int32

	// incidentEdge[v] is parallel to neighbors[v]: incidentEdge[v][e] is
	// the dense edge id connecting v to neighbors[v][e].
	incidentEdge [][]int32

	// edgeWeight[e] is meaningful iff Weighted.
	edgeWeight []float64

	// ids[v] is the original core.Vertex.ID for dense index v, kept for
	// diagnostics and for callers that need to map results back by name.
	ids []string
}

// V is intentionally exported as a field above; the accessor methods below
// expose the per-vertex/per-edge slices without handing out the backing
// arrays for mutation.

// Enabled reports whether vertex v participates in SSSP as source or
// neighbor. Panics on an out-of-range v; Network is an internal descriptor
// the engine indexes directly, not a public query API over arbitrary input.
func (n *Network) Enabled(v int) bool { return n.enabled[v] }

// VertexWeight returns the multiplicative source weight of vertex v.
func (n *Network) VertexWeight(v int) float64 { return n.vertexWeight[v] }

// Neighbors returns the neighbor list of v, one entry per incident edge.
// The returned slice must not be mutated by the caller.
func (n *Network) Neighbors(v int) []int32 { return n.neighbors[v] }

// IncidentEdge returns the edge-id list of v, parallel to Neighbors(v).
// The returned slice must not be mutated by the caller.
func (n *Network) IncidentEdge(v int) []int32 { return n.incidentEdge[v] }

// EdgeWeight returns the raw stored weight of edge e (meaningful iff
// Weighted).
func (n *Network) EdgeWeight(e int32) float64 { return n.edgeWeight[e] }

// ID returns the original core.Vertex.ID backing dense index v.
func (n *Network) ID(v int) string { return n.ids[v] }
