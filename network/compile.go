package network

import (
	"fmt"

	"github.com/katalvlaran/lvlath-centrality/core"
)

// CompileOption configures Compile.
type CompileOption func(*compileConfig)

type compileConfig struct {
	defaultWeight float64
}

// WithDefaultVertexWeight overrides the fallback vertex weight used when a
// vertex has no centrality.weight metadata entry. Default is 1.0.
func WithDefaultVertexWeight(w float64) CompileOption {
	return func(c *compileConfig) { c.defaultWeight = w }
}

func defaultCompileConfig() compileConfig {
	return compileConfig{defaultWeight: 1.0}
}

// Compile builds a Network from g. Vertices are assigned dense ids in
// g.Vertices() order (already lexicographically sorted and deterministic),
// edges are assigned dense ids in g.Edges() order (sorted by Edge.ID).
// Per-vertex weight/enabled state is read from the reserved metadata keys
// MetaWeight/MetaEnabled (see SetVertexWeight/SetVertexEnabled); vertices
// missing either key fall back to the documented defaults.
//
// Returns ErrNilGraph if g is nil, ErrNegativeWeight if any edge or vertex
// weight is negative, and ErrBadMetadataType if a reserved key holds a
// value of the wrong Go type.
func Compile(g *core.Graph, opts ...CompileOption) (*Network, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := defaultCompileConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	ids := g.Vertices() // sorted, deterministic
	V := len(ids)
	vidx := make(map[string]int32, V)
	for i, id := range ids {
		vidx[id] = int32(i)
	}

	edges := g.Edges() // sorted by Edge.ID, deterministic
	E := len(edges)
	eidx := make(map[string]int32, E)
	edgeWeight := make([]float64, E)
	for i, e := range edges {
		eidx[e.ID] = int32(i)
		w := float64(e.Weight)
		if w < 0 {
			return nil, fmt.Errorf("%w: edge %s (%s->%s) weight=%d", ErrNegativeWeight, e.ID, e.From, e.To, e.Weight)
		}
		edgeWeight[i] = w
	}

	vmeta := g.VerticesMap()
	enabled := make([]bool, V)
	vertexWeight := make([]float64, V)
	for i, id := range ids {
		en, w, err := readVertexMeta(vmeta[id], cfg.defaultWeight)
		if err != nil {
			return nil, fmt.Errorf("network: vertex %s: %w", id, err)
		}
		if w < 0 {
			return nil, fmt.Errorf("%w: vertex %s weight=%g", ErrNegativeWeight, id, w)
		}
		enabled[i] = en
		vertexWeight[i] = w
	}

	neighbors := make([][]int32, V)
	incidentEdge := make([][]int32, V)
	for i, id := range ids {
		nbs, err := g.Neighbors(id)
		if err != nil {
			return nil, fmt.Errorf("network: neighbors of %s: %w", id, err)
		}
		nIDs := make([]int32, 0, len(nbs))
		nEdges := make([]int32, 0, len(nbs))
		for _, e := range nbs {
			other := e.To
			if e.To == id {
				other = e.From
			}
			nIDs = append(nIDs, vidx[other])
			nEdges = append(nEdges, eidx[e.ID])
		}
		neighbors[i] = nIDs
		incidentEdge[i] = nEdges
	}

	return &Network{
		V:            V,
		Weighted:     g.Weighted(),
		enabled:      enabled,
		vertexWeight: vertexWeight,
		neighbors:    neighbors,
		incidentEdge: incidentEdge,
		edgeWeight:   edgeWeight,
		ids:          ids,
	}, nil
}

// readVertexMeta extracts (enabled, weight) from a vertex's Metadata map,
// applying defaults for missing keys.
func readVertexMeta(v *core.Vertex, defaultWeight float64) (enabled bool, weight float64, err error) {
	enabled = true
	weight = defaultWeight
	if v == nil || v.Metadata == nil {
		return enabled, weight, nil
	}
	if raw, ok := v.Metadata[MetaEnabled]; ok {
		b, ok := raw.(bool)
		if !ok {
			return false, 0, fmt.Errorf("%w: %s", ErrBadMetadataType, MetaEnabled)
		}
		enabled = b
	}
	if raw, ok := v.Metadata[MetaWeight]; ok {
		f, ok := raw.(float64)
		if !ok {
			return false, 0, fmt.Errorf("%w: %s", ErrBadMetadataType, MetaWeight)
		}
		weight = f
	}
	return enabled, weight, nil
}
