// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cellgraph

import (
	"github.com/kriulin/trimeshbool/exact"
	"github.com/kriulin/trimeshbool/meshdata"
	"github.com/kriulin/trimeshbool/patch"
	"github.com/kriulin/trimeshbool/topology"
)

// FindAmbient locates the cell index of the unique unbounded cell, or
// NoIndex if the input is malformed in a way that makes the hull-edge probe
// inconsistent.
func FindAmbient(arena *meshdata.Arena, tm meshdata.Mesh, topo *topology.TriMeshTopology,
	pinfo *patch.PatchesInfo) int {

	vStar := maxXVertex(arena, tm)
	hullEdge := hullEdgeAt(arena, topo, vStar)

	probe := arena.Vertex(vStar).CoExact().Add(exact.Vec3FromInt(1, 0, 0))
	synthVertex := arena.AddOrFindVert(probe, meshdata.NoIndex)

	extra := &patch.ExtraTri{
		V0:   hullEdge.V0,
		V1:   hullEdge.V1,
		Flap: synthVertex,
	}

	tris := topo.EdgeTriangles(hullEdge)
	sorted := patch.RadialSort(arena, tm, hullEdge, tris, 0, extra)

	pos := indexOf(sorted, patch.ExtraTriIndex)
	if pos < 0 {
		return NoIndex
	}
	n := len(sorted)
	prevTri := sorted[(pos-1+n)%n]
	nextTri := sorted[(pos+1)%n]

	prevPatch := pinfo.Patches[pinfo.TriPatch[prevTri]]
	nextPatch := pinfo.Patches[pinfo.TriPatch[nextTri]]

	if prevPatch.CellAbove != nextPatch.CellAbove {
		return NoIndex
	}
	return prevPatch.CellAbove
}

func maxXVertex(arena *meshdata.Arena, tm meshdata.Mesh) meshdata.Vertp {
	idx := tm.VertexIndex()
	best := idx[0]
	bestX := arena.Vertex(best).CoExact().X
	for _, vp := range idx[1:] {
		x := arena.Vertex(vp).CoExact().X
		if x.Cmp(bestX) > 0 {
			best, bestX = vp, x
		}
	}
	return best
}

// hullEdgeAt picks the edge incident to v with the largest |dy/dx| projected
// onto the xy-plane (dx==0 treated as +Inf): this always lies on the convex
// hull when v has the maximal x-coordinate.
func hullEdgeAt(arena *meshdata.Arena, topo *topology.TriMeshTopology, v meshdata.Vertp) topology.Edge {
	edges := topo.VertEdges[v]
	var best topology.Edge
	haveBest := false
	var bestNum, bestDen exact.Scalar // compare |dy|/|dx| as num/den via cross-multiplication

	for _, e := range edges {
		other := e.V1
		if arena.Vertex(other).ID() == arena.Vertex(v).ID() {
			other = e.V0
		}
		d := arena.Vertex(other).CoExact().Sub(arena.Vertex(v).CoExact())
		dx, dy := absS(d.X), absS(d.Y)

		if !haveBest {
			best, bestNum, bestDen, haveBest = e, dy, dx, true
			continue
		}
		// compare dy/dx > bestNum/bestDen, i.e. dy*bestDen > bestNum*dx,
		// treating dx==0 as +Inf (always wins unless bestDen is also 0).
		if dx.IsZero() {
			if bestDen.IsZero() {
				continue // tie, keep iteration-order first
			}
			best, bestNum, bestDen = e, dy, dx
			continue
		}
		if bestDen.IsZero() {
			continue
		}
		if dy.Mul(bestDen).Cmp(bestNum.Mul(dx)) > 0 {
			best, bestNum, bestDen = e, dy, dx
		}
	}
	return best
}

func absS(s exact.Scalar) exact.Scalar {
	if s.Sign() < 0 {
		return s.Neg()
	}
	return s
}

func indexOf(xs []int, v int) int {
	for i, x := range xs {
		if x == v {
			return i
		}
	}
	return -1
}
