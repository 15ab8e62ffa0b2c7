// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package detri reassembles a triangulated result mesh back into a
// polygonal mesh by dissolving the edges triangulation introduced, then
// collapsing the synthetic collinear vertices that leaves behind.
package detri

import "github.com/kriulin/trimeshbool/meshdata"

// MergeFace is one polygon under construction: a vertex sequence, the
// parallel per-side edge origin, the face it has been merged into (-1 if
// still standalone), and the original polygon index it traces back to.
type MergeFace struct {
	Verts    []meshdata.Vertp
	EdgeOrig []int
	MergeTo  int
	Orig     int
}

// MergeEdge is one edge of the merge graph: its canonical endpoints, a
// squared length for the dissolve-order heuristic, the two faces it borders
// (by index into FaceMergeState.Faces, meshdata.NoIndex if unset), a
// representative orig, and whether every triangle that used it had
// edge_orig == NoIndex (making it a candidate for dissolving).
type MergeEdge struct {
	V0, V1      meshdata.Vertp
	LenSq       float64
	LeftFace    int
	RightFace   int
	Orig        int
	Dissolvable bool
}

type edgeKey struct {
	A, B meshdata.Vertp
}

// FaceMergeState is the per-group working state for a dissolve pass: the
// faces being merged, the edges between them, and the canonical-pair lookup
// into Edges.
type FaceMergeState struct {
	Faces   []*MergeFace
	Edges   []*MergeEdge
	EdgeMap map[edgeKey]int
}

// Build constructs a FaceMergeState from the triangles at the given indices
// into tm, all belonging to the same original-polygon group.
func Build(arena *meshdata.Arena, tm meshdata.Mesh, triIndices []int) *FaceMergeState {
	st := &FaceMergeState{EdgeMap: make(map[edgeKey]int)}

	for _, t := range triIndices {
		face := tm.Face(t)
		mf := &MergeFace{
			Verts:    append([]meshdata.Vertp(nil), face.Verts()...),
			EdgeOrig: append([]int(nil), face.EdgeOrigs()...),
			MergeTo:  -1,
			Orig:     face.Orig(),
		}
		fi := len(st.Faces)
		st.Faces = append(st.Faces, mf)

		n := len(mf.Verts)
		for s := 0; s < n; s++ {
			a, b := mf.Verts[s], mf.Verts[(s+1)%n]
			eo := mf.EdgeOrig[s]
			forward := arena.Vertex(a).ID() < arena.Vertex(b).ID()

			key := canonicalKey(arena, a, b)
			idx, ok := st.EdgeMap[key]
			if !ok {
				idx = len(st.Edges)
				st.EdgeMap[key] = idx
				st.Edges = append(st.Edges, &MergeEdge{
					V0:          key.A,
					V1:          key.B,
					LenSq:       lenSq(arena, key.A, key.B),
					LeftFace:    meshdata.NoIndex,
					RightFace:   meshdata.NoIndex,
					Orig:        meshdata.NoIndex,
					Dissolvable: true,
				})
			}
			me := st.Edges[idx]
			if forward {
				me.LeftFace = fi
			} else {
				me.RightFace = fi
			}
			if eo != meshdata.NoIndex {
				me.Dissolvable = false
				if me.Orig == meshdata.NoIndex {
					me.Orig = eo
				}
			}
		}
	}
	return st
}

func canonicalKey(arena *meshdata.Arena, a, b meshdata.Vertp) edgeKey {
	if arena.Vertex(a).ID() < arena.Vertex(b).ID() {
		return edgeKey{a, b}
	}
	return edgeKey{b, a}
}

func lenSq(arena *meshdata.Arena, a, b meshdata.Vertp) float64 {
	pa, pb := arena.Vertex(a).Co(), arena.Vertex(b).Co()
	dx, dy, dz := pa.X-pb.X, pa.Y-pb.Y, pa.Z-pb.Z
	return dx*dx + dy*dy + dz*dz
}

// restVerts returns the n-2 vertices of face other than the shared edge at
// side s (face.Verts[s], face.Verts[s+1]), in cyclic order starting right
// after the edge's second endpoint.
func restVerts(verts []meshdata.Vertp, s int) []meshdata.Vertp {
	n := len(verts)
	out := make([]meshdata.Vertp, 0, n-2)
	for k := 2; k < n; k++ {
		out = append(out, verts[(s+k)%n])
	}
	return out
}

// restEdgeOrigs returns the n-1 edge origins tracing the boundary from the
// shared edge's second endpoint, around through restVerts, back to its first
// endpoint.
func restEdgeOrigs(edgeOrig []int, s int) []int {
	n := len(edgeOrig)
	out := make([]int, 0, n-1)
	for k := 1; k < n; k++ {
		out = append(out, edgeOrig[(s+k)%n])
	}
	return out
}
