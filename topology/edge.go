// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package topology builds the edge->triangles and vertex->edges maps a
// subdivided triangle mesh needs before patches, cells, and winding numbers
// can be computed.
package topology

import "github.com/kriulin/trimeshbool/meshdata"

// Edge is a canonical, unordered vertex pair: the smaller id is always
// first, so two handles describing the same edge in either orientation
// compare and hash equal.
type Edge struct {
	V0, V1 meshdata.Vertp
}

// NewEdge canonicalizes (a, b) into an Edge with V0.ID() <= V1.ID().
func NewEdge(a *meshdata.Arena, v0, v1 meshdata.Vertp) Edge {
	if a.Vertex(v0).ID() <= a.Vertex(v1).ID() {
		return Edge{V0: v0, V1: v1}
	}
	return Edge{V0: v1, V1: v0}
}
