// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package detri

import (
	"sort"

	"github.com/kriulin/trimeshbool/meshdata"
)

// Dissolve walks dissolvable edges longest-first, splicing the two adjacent
// faces together whenever doing so is BMesh-safe.
func Dissolve(st *FaceMergeState) {
	candidates := make([]int, 0, len(st.Edges))
	for i, e := range st.Edges {
		if e.Dissolvable {
			candidates = append(candidates, i)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		return st.Edges[candidates[i]].LenSq > st.Edges[candidates[j]].LenSq
	})

	for _, ei := range candidates {
		e := st.Edges[ei]
		if e.LeftFace == meshdata.NoIndex || e.RightFace == meshdata.NoIndex {
			continue
		}
		left, right := st.Faces[e.LeftFace], st.Faces[e.RightFace]
		if left.MergeTo != -1 || right.MergeTo != -1 {
			continue
		}
		if !dissolveSafe(st, ei, e) {
			continue
		}
		spliceFaces(st, ei, e)
	}
}

// dissolveSafe checks the two BMesh-safety conditions: no
// other edge also borders both left_face and right_face (would leave a
// disconnected boundary after the splice), and the two faces share no vertex
// besides the dissolved edge's own endpoints (would produce a repeated
// vertex in the merged face).
func dissolveSafe(st *FaceMergeState, ei int, e *MergeEdge) bool {
	for i, other := range st.Edges {
		if i == ei {
			continue
		}
		if (other.LeftFace == e.LeftFace && other.RightFace == e.RightFace) ||
			(other.LeftFace == e.RightFace && other.RightFace == e.LeftFace) {
			return false
		}
	}

	left, right := st.Faces[e.LeftFace], st.Faces[e.RightFace]
	inRight := make(map[meshdata.Vertp]bool, len(right.Verts))
	for _, v := range right.Verts {
		inRight[v] = true
	}
	for _, v := range left.Verts {
		if v == e.V0 || v == e.V1 {
			continue
		}
		if inRight[v] {
			return false
		}
	}
	return true
}

// spliceFaces merges right_face into left_face across edge ei: walk left up
// to the shared edge, then right's remaining vertices starting just after
// it, back around to just before it, then the rest of left.
func spliceFaces(st *FaceMergeState, ei int, e *MergeEdge) {
	leftIdx, rightIdx := e.LeftFace, e.RightFace
	left, right := st.Faces[leftIdx], st.Faces[rightIdx]

	sL := indexOfVert(left.Verts, e.V0) // left traverses V0 -> V1
	sR := indexOfVert(right.Verts, e.V1) // right traverses V1 -> V0

	mergedVerts := make([]meshdata.Vertp, 0, len(left.Verts)+len(right.Verts)-2)
	mergedVerts = append(mergedVerts, e.V0)
	mergedVerts = append(mergedVerts, restVerts(right.Verts, sR)...)
	mergedVerts = append(mergedVerts, e.V1)
	mergedVerts = append(mergedVerts, restVerts(left.Verts, sL)...)

	mergedEdgeOrig := make([]int, 0, len(left.EdgeOrig)+len(right.EdgeOrig)-2)
	mergedEdgeOrig = append(mergedEdgeOrig, restEdgeOrigs(right.EdgeOrig, sR)...)
	mergedEdgeOrig = append(mergedEdgeOrig, restEdgeOrigs(left.EdgeOrig, sL)...)

	left.Verts = mergedVerts
	left.EdgeOrig = mergedEdgeOrig
	right.MergeTo = leftIdx

	for i, other := range st.Edges {
		if i == ei {
			continue
		}
		if other.LeftFace == rightIdx {
			other.LeftFace = leftIdx
		}
		if other.RightFace == rightIdx {
			other.RightFace = leftIdx
		}
	}
	e.LeftFace = meshdata.NoIndex
	e.RightFace = meshdata.NoIndex
}

func indexOfVert(verts []meshdata.Vertp, v meshdata.Vertp) int {
	for i, x := range verts {
		if x == v {
			return i
		}
	}
	panic("detri: spliceFaces: shared edge endpoint not found in its own face")
}

// Collect returns the arena handles for every MergeFace that survived the
// dissolve pass (MergeTo == -1), allocating each as a new arena face.
func Collect(arena *meshdata.Arena, st *FaceMergeState) []meshdata.Facep {
	var out []meshdata.Facep
	for _, mf := range st.Faces {
		if mf.MergeTo != -1 {
			continue
		}
		out = append(out, arena.AddFace(mf.Verts, mf.Orig, mf.EdgeOrig))
	}
	return out
}
