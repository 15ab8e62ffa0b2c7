// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package patch partitions triangles into maximal manifold patches and
// radially sorts the triangles around a shared edge, the primitive the
// cell builder and ambient-cell finder both need.
package patch

import (
	"sort"

	"github.com/kriulin/trimeshbool/meshdata"
	"github.com/kriulin/trimeshbool/topology"
)

// NoIndex mirrors meshdata.NoIndex for patch/cell back-references.
const NoIndex = meshdata.NoIndex

// Patch is a maximal set of triangles connected through manifold edges,
// plus the two cell indices it bounds once the cell builder (package
// cellgraph) has run.
type Patch struct {
	Triangles []int
	CellAbove int
	CellBelow int
}

// PPEdgeKey is an unordered pair of patch indices, canonicalized so the
// smaller index is first, used as the key into PatchesInfo.PPEdge.
type PPEdgeKey struct {
	P, Q int
}

func ppKey(p, q int) PPEdgeKey {
	if p <= q {
		return PPEdgeKey{p, q}
	}
	return PPEdgeKey{q, p}
}

// PatchesInfo holds the patches themselves, the triangle->patch map, and a
// representative shared edge per patch pair.
type PatchesInfo struct {
	Patches  []*Patch
	TriPatch []int
	PPEdge   map[PPEdgeKey]topology.Edge
}

// Find partitions tm's triangles into maximal manifold patches via a
// grow-and-seed traversal. Seeds are taken in ascending triangle index and
// each patch is grown with a stack that pushes neighbours in side order, so
// the result is reproducible across machines.
func Find(arena *meshdata.Arena, tm meshdata.Mesh, topo *topology.TriMeshTopology) *PatchesInfo {
	n := tm.NumFaces()
	info := &PatchesInfo{
		TriPatch: make([]int, n),
		PPEdge:   make(map[PPEdgeKey]topology.Edge),
	}
	for i := range info.TriPatch {
		info.TriPatch[i] = NoIndex
	}

	for seed := 0; seed < n; seed++ {
		if info.TriPatch[seed] != NoIndex {
			continue
		}
		p := len(info.Patches)
		patch := &Patch{CellAbove: NoIndex, CellBelow: NoIndex}
		info.Patches = append(info.Patches, patch)
		info.TriPatch[seed] = p

		stack := []int{seed}
		for len(stack) > 0 {
			t := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			patch.Triangles = append(patch.Triangles, t)

			for side := 0; side < 3; side++ {
				face := tm.Face(t)
				e := topology.NewEdge(arena, face.Vert(side), face.Vert(side+1))
				tris := topo.EdgeTriangles(e)

				if len(tris) == 2 {
					nbr := otherTriangle(tris, t)
					if info.TriPatch[nbr] == NoIndex {
						info.TriPatch[nbr] = p
						stack = append(stack, nbr)
					}
					continue
				}

				// Non-manifold (or boundary with len==1, which contributes no
				// pairing): record a representative edge against every
				// already-assigned different patch sharing it.
				for _, t2 := range tris {
					if t2 == t {
						continue
					}
					p2 := info.TriPatch[t2]
					if p2 == NoIndex || p2 == p {
						continue
					}
					k := ppKey(p, p2)
					if _, ok := info.PPEdge[k]; !ok {
						info.PPEdge[k] = e
					}
				}
			}
		}
	}

	// Second pass: some pp_edge pairs may only become visible once both
	// patches exist (a triangle on edge e can be assigned to its patch after
	// e was first visited from the other side). Recompute by scanning every
	// non-manifold edge once the full partition is known, in a fixed order
	// (ascending by endpoint ids) so the representative chosen for a given
	// patch pair is reproducible across machines.
	for _, e := range nonManifoldEdgesSorted(arena, topo) {
		tris := topo.EdgeTriangles(e)
		sortedTris := append([]int(nil), tris...)
		sort.Ints(sortedTris)
		for i := 0; i < len(sortedTris); i++ {
			for j := i + 1; j < len(sortedTris); j++ {
				p1, p2 := info.TriPatch[sortedTris[i]], info.TriPatch[sortedTris[j]]
				if p1 == p2 {
					continue
				}
				k := ppKey(p1, p2)
				if _, ok := info.PPEdge[k]; !ok {
					info.PPEdge[k] = e
				}
			}
		}
	}

	return info
}

func nonManifoldEdgesSorted(arena *meshdata.Arena, topo *topology.TriMeshTopology) []topology.Edge {
	out := make([]topology.Edge, 0)
	for e, tris := range topo.EdgeTri {
		if len(tris) >= 3 {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a0, a1 := arena.Vertex(out[i].V0).ID(), arena.Vertex(out[i].V1).ID()
		b0, b1 := arena.Vertex(out[j].V0).ID(), arena.Vertex(out[j].V1).ID()
		if a0 != b0 {
			return a0 < b0
		}
		return a1 < b1
	})
	return out
}

func otherTriangle(tris []int, t int) int {
	if tris[0] == t {
		return tris[1]
	}
	return tris[0]
}
