// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package meshdata

import "github.com/kriulin/trimeshbool/exact"

// planeOf computes the support plane of a face from its first three
// vertices (CCW winding gives an outward-pointing normal). A degenerate
// (collinear) lead triplet yields a zero normal; callers that need a
// meaningful plane for a degenerate face must supply non-collinear verts.
func planeOf(a *Arena, verts []Vertp) Plane {
	if len(verts) < 3 {
		return Plane{}
	}
	p0 := a.Vertex(verts[0]).CoExact()
	p1 := a.Vertex(verts[1]).CoExact()
	p2 := a.Vertex(verts[2]).CoExact()
	normal := p1.Sub(p0).Cross(p2.Sub(p0))
	offset := normal.Dot(p0)
	return Plane{Normal: normal, Offset: offset}
}
