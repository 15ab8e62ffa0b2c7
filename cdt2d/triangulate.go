// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cdt2d

import (
	"fmt"

	"github.com/kriulin/trimeshbool/exact"
	"github.com/kriulin/trimeshbool/meshdata"
)

// TriangulatePolygon dispatches pre-topology triangulation for a single
// input face: a 3-gon is kept as-is, a 4-gon is split on its 0-2 diagonal
// with the new edge marked synthetic, and anything larger is projected onto
// the plane orthogonal to its normal's dominant axis and triangulated.
func TriangulatePolygon(arena *meshdata.Arena, f meshdata.Face, setters ...Option) ([]meshdata.Facep, error) {
	n := f.NumVerts()
	switch {
	case n < 3:
		return nil, fmt.Errorf("cdt2d: TriangulatePolygon: face has %d verts, need at least 3", n)
	case n == 3:
		return []meshdata.Facep{arena.AddFace(f.Verts(), f.Orig(), f.EdgeOrigs())}, nil
	case n == 4:
		return triangulateQuad(arena, f), nil
	default:
		return triangulateNGon(arena, f, setters...)
	}
}

func triangulateQuad(arena *meshdata.Arena, f meshdata.Face) []meshdata.Facep {
	v0, v1, v2, v3 := f.Vert(0), f.Vert(1), f.Vert(2), f.Vert(3)
	e0, e1, e2, e3 := f.EdgeOrig(0), f.EdgeOrig(1), f.EdgeOrig(2), f.EdgeOrig(3)
	orig := f.Orig()

	tri0 := arena.AddFace([]meshdata.Vertp{v0, v1, v2}, orig, []int{e0, e1, meshdata.NoIndex})
	tri1 := arena.AddFace([]meshdata.Vertp{v0, v2, v3}, orig, []int{meshdata.NoIndex, e2, e3})
	return []meshdata.Facep{tri0, tri1}
}

// triangulateNGon projects f onto its dominant-axis plane, listing the
// vertices in reverse when the dominant axis is y (projection onto the xz
// plane flips handedness), runs the Delaunay collaborator, and reassembles
// the result as arena faces with edge_orig recovered from the CDT's per-edge
// original list. Delaunay2D returns every triangle counterclockwise in the
// projected plane, which faces +x (yz), -y (xz) or +z (xy); each triangle is
// flipped when that disagrees with the sign of f's normal on the axis.
func triangulateNGon(arena *meshdata.Arena, f meshdata.Face, setters ...Option) ([]meshdata.Facep, error) {
	n := f.NumVerts()
	normal := f.Plane().Normal
	axis := normal.DominantAxis()
	reverse := axis == exact.AxisY
	nAxis := normal.Z
	switch axis {
	case exact.AxisX:
		nAxis = normal.X
	case exact.AxisY:
		nAxis = normal.Y
	}
	flip := (axis == exact.AxisY) != (nAxis.Sign() < 0)

	verts := make([]meshdata.Vertp, n)
	points := make([]exact.Vec2, n)
	pointOrig := make([]int, n)
	for i := 0; i < n; i++ {
		vi := i
		if reverse {
			vi = n - 1 - i
		}
		v := f.Vert(vi)
		verts[i] = v
		points[i] = exact.Project3(arena.Vertex(v).CoExact(), axis)
		pointOrig[i] = arena.Vertex(v).Orig()
	}

	boundary := make([][2]int, n)
	boundaryOrig := make([]int, n)
	for i := 0; i < n; i++ {
		side := i
		if reverse {
			// Side i of the reversed polygon (verts[i] -> verts[i+1]) is the
			// original side (n-2-i) mod n, traversed backwards (see Face.Reversed).
			side = ((n-2-i)%n + n) % n
		}
		boundary[i] = [2]int{i, (i + 1) % n}
		boundaryOrig[i] = f.EdgeOrig(side)
	}

	res, err := Delaunay2D(points, pointOrig, boundary, boundaryOrig, setters...)
	if err != nil {
		return nil, fmt.Errorf("cdt2d: TriangulatePolygon: %w", err)
	}

	edgeOrigOf := make(map[[2]int]int, len(res.Edges))
	for i, e := range res.Edges {
		edgeOrigOf[canonPair(e[0], e[1])] = res.EdgeOrig[i]
	}

	faces := make([]meshdata.Facep, 0, len(res.Triangles))
	for _, t := range res.Triangles {
		if flip {
			t[1], t[2] = t[2], t[1]
		}
		tv := []meshdata.Vertp{verts[t[0]], verts[t[1]], verts[t[2]]}
		te := make([]int, 3)
		for s := 0; s < 3; s++ {
			a, b := t[s], t[(s+1)%3]
			if o, ok := edgeOrigOf[canonPair(a, b)]; ok {
				te[s] = o
			} else {
				te[s] = meshdata.NoIndex
			}
		}
		faces = append(faces, arena.AddFace(tv, f.Orig(), te))
	}
	return faces, nil
}

func canonPair(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}
