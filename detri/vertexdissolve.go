// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package detri

import (
	"sort"

	"github.com/kriulin/trimeshbool/meshdata"
)

type occurrence struct {
	face int
	pos  int
}

// CollapseCollinearVertices erases synthetic vertices left behind by
// triangulation: a synthetic (orig == NoIndex), degree-2 vertex that is
// exactly collinear with its two neighbours in every face it appears in
// carries no geometric information and is erased from each face's vertex
// sequence.
func CollapseCollinearVertices(arena *meshdata.Arena, faces []meshdata.Facep) []meshdata.Facep {
	faceVals := make([]meshdata.Face, len(faces))
	occurrences := make(map[meshdata.Vertp][]occurrence)
	for fi, fp := range faces {
		f := arena.Face(fp)
		faceVals[fi] = f
		for pos, v := range f.Verts() {
			occurrences[v] = append(occurrences[v], occurrence{fi, pos})
		}
	}

	verts := make([]meshdata.Vertp, 0, len(occurrences))
	for v := range occurrences {
		verts = append(verts, v)
	}
	sort.Slice(verts, func(i, j int) bool { return verts[i] < verts[j] })

	removable := make(map[meshdata.Vertp]bool)
	for _, v := range verts {
		if arena.Vertex(v).Orig() != meshdata.NoIndex {
			continue
		}
		neighbors := make(map[meshdata.Vertp]bool)
		collinearEverywhere := true
		for _, o := range occurrences[v] {
			f := faceVals[o.face]
			if f.NumVerts() < 3 {
				collinearEverywhere = false
				break
			}
			prev, next := f.Vert(o.pos-1), f.Vert(o.pos+1)
			neighbors[prev] = true
			neighbors[next] = true
			if !collinear(arena, prev, v, next) {
				collinearEverywhere = false
			}
		}
		if collinearEverywhere && len(neighbors) == 2 {
			removable[v] = true
		}
	}
	if len(removable) == 0 {
		return faces
	}

	out := make([]meshdata.Facep, len(faces))
	for fi, f := range faceVals {
		verts, edgeOrig := dropRemoved(f, removable)
		if len(verts) == f.NumVerts() {
			out[fi] = faces[fi]
			continue
		}
		out[fi] = arena.AddFace(verts, f.Orig(), edgeOrig)
	}
	return out
}

func collinear(arena *meshdata.Arena, prev, v, next meshdata.Vertp) bool {
	pv := arena.Vertex(prev).CoExact()
	vv := arena.Vertex(v).CoExact()
	nv := arena.Vertex(next).CoExact()
	cross := vv.Sub(pv).Cross(nv.Sub(vv))
	return cross.IsZero()
}

func dropRemoved(f meshdata.Face, removable map[meshdata.Vertp]bool) ([]meshdata.Vertp, []int) {
	n := f.NumVerts()
	verts := make([]meshdata.Vertp, 0, n)
	edgeOrig := make([]int, 0, n)
	for i := 0; i < n; i++ {
		v := f.Vert(i)
		if removable[v] {
			continue
		}
		verts = append(verts, v)
		edgeOrig = append(edgeOrig, f.EdgeOrig(i))
	}
	return verts, edgeOrig
}
