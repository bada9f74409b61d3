package network

import "github.com/katalvlaran/lvlath-centrality/core"

// SetVertexWeight stores w under the reserved MetaWeight metadata key on v,
// initializing v.Metadata if necessary. Compile reads this key at compile
// time; mutating it after Compile has no effect on an already-compiled
// Network.
func SetVertexWeight(v *core.Vertex, w float64) {
	if v.Metadata == nil {
		v.Metadata = make(map[string]interface{}, 1)
	}
	v.Metadata[MetaWeight] = w
}

// SetVertexEnabled stores enabled under the reserved MetaEnabled metadata
// key on v, initializing v.Metadata if necessary.
func SetVertexEnabled(v *core.Vertex, enabled bool) {
	if v.Metadata == nil {
		v.Metadata = make(map[string]interface{}, 1)
	}
	v.Metadata[MetaEnabled] = enabled
}
