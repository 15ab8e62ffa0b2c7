// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package patch

import (
	"sort"

	"github.com/kriulin/trimeshbool/exact"
	"github.com/kriulin/trimeshbool/meshdata"
	"github.com/kriulin/trimeshbool/topology"
)

// ExtraTriIndex is the sentinel identifying the ambient-cell finder's
// synthetic probe triangle within a radial sort.
const ExtraTriIndex = int(^uint(0) >> 1) // INT_MAX

// ExtraTri supplies the synthetic triangle RadialSort should treat as index
// ExtraTriIndex, used only by the ambient-cell finder.
type ExtraTri struct {
	// V0, V1 are the flap-independent, canonical-order endpoints of the edge
	// being sorted around; V0 must equal the edge's own canonical first
	// endpoint so Rev is computed consistently with the real triangles.
	V0, V1 meshdata.Vertp
	Flap   meshdata.Vertp
}

// triRef is one entry being radially sorted: either a real triangle index
// into tm, or the sentinel ExtraTriIndex paired with extra.
type triRef struct {
	idx  int
	flap meshdata.Vertp
	rev  bool // true iff this triangle uses e in reversed (v1->v0) order
}

// RadialSort sorts the triangles in tris (all of which contain edge e)
// clockwise as seen looking from e.V0 to e.V1. pivotIdx names the element
// of tris to use as t0 (normally 0). If extra is non-nil it is appended to
// the candidate set under the index ExtraTriIndex.
func RadialSort(arena *meshdata.Arena, tm meshdata.Mesh, e topology.Edge, tris []int,
	pivotIdx int, extra *ExtraTri) []int {

	refs := make([]triRef, 0, len(tris)+1)
	for _, t := range tris {
		flap, rev := flapOf(arena, tm, e, t)
		refs = append(refs, triRef{idx: t, flap: flap, rev: rev})
	}
	if extra != nil {
		rev := arena.Vertex(extra.V0).ID() != arena.Vertex(e.V0).ID()
		refs = append(refs, triRef{idx: ExtraTriIndex, flap: extra.Flap, rev: rev})
	}

	pivot := refs[pivotIdx]
	isFirst := pivotIdx == 0
	sorted := radialSortRec(arena, e, refs, pivot, isFirst)

	out := make([]int, len(sorted))
	for i, r := range sorted {
		out[i] = r.idx
	}
	return out
}

// flapOf returns the flap vertex of triangle t relative to e, and whether t
// uses e reversed relative to e's own canonical orientation.
func flapOf(arena *meshdata.Arena, tm meshdata.Mesh, e topology.Edge, t int) (meshdata.Vertp, bool) {
	face := tm.Face(t)
	for side := 0; side < 3; side++ {
		a, b := face.Vert(side), face.Vert(side+1)
		if sameEdge(arena, a, b, e) {
			flap := face.Vert(side + 2)
			rev := arena.Vertex(a).ID() != arena.Vertex(e.V0).ID()
			return flap, rev
		}
	}
	panic("patch: RadialSort: triangle does not contain the given edge")
}

// UsesEdgeReversed reports whether triangle t traverses e in the direction
// e.V1 -> e.V0 rather than e's own canonical e.V0 -> e.V1 order.
func UsesEdgeReversed(arena *meshdata.Arena, tm meshdata.Mesh, e topology.Edge, t int) bool {
	_, rev := flapOf(arena, tm, e, t)
	return rev
}

func sameEdge(arena *meshdata.Arena, a, b meshdata.Vertp, e topology.Edge) bool {
	ea, eb := arena.Vertex(a).ID(), arena.Vertex(b).ID()
	e0, e1 := arena.Vertex(e.V0).ID(), arena.Vertex(e.V1).ID()
	return (ea == e0 && eb == e1) || (ea == e1 && eb == e0)
}

// radialSortRec implements the classify/recurse/merge step of the sort.
func radialSortRec(arena *meshdata.Arena, e topology.Edge, refs []triRef, pivot triRef, isFirst bool) []triRef {
	var g1, g2, g3, g4 []triRef

	// Orientation is measured with e in canonical order whatever the pivot's
	// own winding, so a reversed pivot yields the same cyclic direction.
	a0, a1 := arena.Vertex(e.V0).CoExact(), arena.Vertex(e.V1).CoExact()
	pivotFlap := arena.Vertex(pivot.flap).CoExact()

	for _, r := range refs {
		if r.idx == pivot.idx && r.flap == pivot.flap {
			continue
		}
		flap := arena.Vertex(r.flap).CoExact()
		sign := exact.Orient3D(a0, a1, pivotFlap, flap)

		switch {
		case sign == exact.Zero && r.flap == pivot.flap:
			g1 = append(g1, r)
		case sign == exact.Zero:
			g2 = append(g2, r)
		case sign == exact.Negative:
			g3 = append(g3, r)
		default:
			g4 = append(g4, r)
		}
	}

	g1 = sortBySignedIndex(g1)
	g2 = sortBySignedIndex(g2)
	if len(g3) > 1 {
		g3 = radialSortRec(arena, e, g3, g3[0], true)
	}
	if len(g4) > 1 {
		g4 = radialSortRec(arena, e, g4, g4[0], true)
	}

	out := make([]triRef, 0, len(refs))
	out = append(out, pivot)
	if isFirst {
		out = append(out, g1...)
		out = append(out, g4...)
		out = append(out, g2...)
		out = append(out, g3...)
	} else {
		out = append(out, g3...)
		out = append(out, g1...)
		out = append(out, g4...)
		out = append(out, g2...)
	}
	return out
}

// sortBySignedIndex sorts a coplanar group by a canonical tie-break: +idx
// if the triangle uses e in canonical orientation, -idx otherwise,
// ascending, magnitudes taken after sorting.
func sortBySignedIndex(g []triRef) []triRef {
	out := append([]triRef(nil), g...)
	sort.Slice(out, func(i, j int) bool {
		return signedIndex(out[i]) < signedIndex(out[j])
	})
	return out
}

func signedIndex(r triRef) int {
	if r.rev {
		return -r.idx
	}
	return r.idx
}
