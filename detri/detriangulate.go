// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package detri

import (
	"sort"

	"github.com/kriulin/trimeshbool/meshdata"
)

// Detriangulate groups tmOut's triangles by the pmIn polygon they trace
// back to, reassembles each group into a polygon (fast path for an
// untouched quad, the general merge-and-dissolve path otherwise), then
// collapses the collinear synthetic vertices that leaves behind.
func Detriangulate(arena *meshdata.Arena, tmOut, pmIn meshdata.Mesh) meshdata.Mesh {
	groups := groupByOrig(tmOut)

	origs := make([]int, 0, len(groups))
	for o := range groups {
		origs = append(origs, o)
	}
	sort.Ints(origs)

	var faces []meshdata.Facep
	for _, orig := range origs {
		tris := groups[orig]
		if len(tris) == 1 {
			faces = append(faces, tmOut.FaceHandle(tris[0]))
			continue
		}
		if orig != meshdata.NoIndex {
			if fp, ok := fastPathQuad(arena, tmOut, pmIn, orig, tris); ok {
				faces = append(faces, fp)
				continue
			}
		}
		st := Build(arena, tmOut, tris)
		Dissolve(st)
		faces = append(faces, Collect(arena, st)...)
	}

	faces = CollapseCollinearVertices(arena, faces)
	return meshdata.NewMesh(arena, faces)
}

func groupByOrig(tm meshdata.Mesh) map[int][]int {
	groups := make(map[int][]int)
	for t := 0; t < tm.NumFaces(); t++ {
		o := tm.Face(t).Orig()
		groups[o] = append(groups[o], t)
	}
	return groups
}

// fastPathQuad handles the common case directly: exactly two triangles
// whose shared edge is dissolvable and whose four outer vertices, in cyclic
// order, match pmIn's original quad up to rotation.
func fastPathQuad(arena *meshdata.Arena, tm, pmIn meshdata.Mesh, orig int, tris []int) (meshdata.Facep, bool) {
	if len(tris) != 2 {
		return 0, false
	}
	a, b := tm.Face(tris[0]), tm.Face(tris[1])
	if !a.IsTriangle() || !b.IsTriangle() {
		return 0, false
	}

	outer, sharedSideA, ok := outerQuadVerts(a, b)
	if !ok || a.EdgeOrig(sharedSideA) != meshdata.NoIndex {
		return 0, false
	}

	origFace := pmIn.Face(orig)
	if origFace.NumVerts() != 4 {
		return 0, false
	}
	if !cyclicMatch(outer, origFace.Verts()) {
		return 0, false
	}
	return pmIn.FaceHandle(orig), true
}

// outerQuadVerts finds the edge a and b share (traversed in opposite
// directions, as adjacent consistently-oriented triangles always do) and
// returns the surrounding quad's vertices in the cyclic order induced by a,
// along with the side index of the shared edge within a.
func outerQuadVerts(a, b meshdata.Face) ([]meshdata.Vertp, int, bool) {
	for i := 0; i < 3; i++ {
		x, y := a.Vert(i), a.Vert(i+1)
		for j := 0; j < 3; j++ {
			if b.Vert(j) == y && b.Vert(j+1) == x {
				return []meshdata.Vertp{y, a.Vert(i + 2), x, b.Vert(j + 2)}, i, true
			}
		}
	}
	return nil, 0, false
}

func cyclicMatch(outer, quad []meshdata.Vertp) bool {
	if len(outer) != 4 || len(quad) != 4 {
		return false
	}
	for k := 0; k < 4; k++ {
		match := true
		for i := 0; i < 4; i++ {
			if outer[i] != quad[(i+k)%4] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
