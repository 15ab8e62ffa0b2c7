// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package patch

import (
	"testing"

	"github.com/kriulin/trimeshbool/exact"
	"github.com/kriulin/trimeshbool/meshdata"
	"github.com/kriulin/trimeshbool/topology"
)

// buildOpenBox builds an open (lidless) unit cube: 5 faces, 10 triangles, so
// every side edge of the missing top face is a boundary (len 1) and every
// other edge is manifold (len 2) -- a single patch covering all triangles.
func buildOpenBox(t *testing.T) (*meshdata.Arena, meshdata.Mesh) {
	t.Helper()
	a := meshdata.NewArena()
	v := make([]meshdata.Vertp, 8)
	coords := [8][3]int64{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	}
	for i, c := range coords {
		v[i] = a.AddOrFindVert(exact.Vec3FromInt(c[0], c[1], c[2]), i)
	}
	quad := func(fp []meshdata.Facep, a0, b, c, d meshdata.Vertp) []meshdata.Facep {
		fp = append(fp, a.AddFace([]meshdata.Vertp{a0, b, c}, 0,
			[]int{meshdata.NoIndex, meshdata.NoIndex, meshdata.NoIndex}))
		fp = append(fp, a.AddFace([]meshdata.Vertp{a0, c, d}, 0,
			[]int{meshdata.NoIndex, meshdata.NoIndex, meshdata.NoIndex}))
		return fp
	}
	var faces []meshdata.Facep
	faces = quad(faces, v[0], v[1], v[2], v[3]) // bottom
	faces = quad(faces, v[0], v[1], v[5], v[4]) // front
	faces = quad(faces, v[1], v[2], v[6], v[5]) // right
	faces = quad(faces, v[2], v[3], v[7], v[6]) // back
	faces = quad(faces, v[3], v[0], v[4], v[7]) // left
	return a, meshdata.NewMesh(a, faces)
}

// buildTwoTetrahedraSharingFace builds two tetrahedra glued on one shared
// triangular face, producing a non-manifold edge at each edge of that face
// (shared by 4 triangles instead of 2), exercising pp_edge recording.
func buildTwoTetrahedraSharingFace(t *testing.T) (*meshdata.Arena, meshdata.Mesh) {
	t.Helper()
	a := meshdata.NewArena()
	// shared base triangle
	b0 := a.AddOrFindVert(exact.Vec3FromInt(0, 0, 0), 0)
	b1 := a.AddOrFindVert(exact.Vec3FromInt(2, 0, 0), 1)
	b2 := a.AddOrFindVert(exact.Vec3FromInt(0, 2, 0), 2)
	apexUp := a.AddOrFindVert(exact.Vec3FromInt(0, 0, 1), 3)
	apexDown := a.AddOrFindVert(exact.Vec3FromInt(0, 0, -1), 4)

	noI := []int{meshdata.NoIndex, meshdata.NoIndex, meshdata.NoIndex}
	var faces []meshdata.Facep
	// base, shared by both tetrahedra (degenerate non-manifold sandwich).
	faces = append(faces, a.AddFace([]meshdata.Vertp{b0, b1, b2}, 0, noI))
	faces = append(faces, a.AddFace([]meshdata.Vertp{b0, b2, b1}, 0, noI))
	// up tetrahedron's three side faces
	faces = append(faces, a.AddFace([]meshdata.Vertp{b0, b1, apexUp}, 0, noI))
	faces = append(faces, a.AddFace([]meshdata.Vertp{b1, b2, apexUp}, 0, noI))
	faces = append(faces, a.AddFace([]meshdata.Vertp{b2, b0, apexUp}, 0, noI))
	// down tetrahedron's three side faces
	faces = append(faces, a.AddFace([]meshdata.Vertp{b1, b0, apexDown}, 0, noI))
	faces = append(faces, a.AddFace([]meshdata.Vertp{b2, b1, apexDown}, 0, noI))
	faces = append(faces, a.AddFace([]meshdata.Vertp{b0, b2, apexDown}, 0, noI))

	return a, meshdata.NewMesh(a, faces)
}

func TestFind_OpenBoxIsOnePatch(t *testing.T) {
	a, tm := buildOpenBox(t)
	topo := topology.Build(a, tm)
	info := Find(a, tm, topo)

	if got := len(info.Patches); got != 1 {
		t.Fatalf("len(Patches) = %v, want 1", got)
	}
	if got := len(info.Patches[0].Triangles); got != tm.NumFaces() {
		t.Errorf("patch triangle count = %v, want %v", got, tm.NumFaces())
	}
	for _, p := range info.TriPatch {
		if p != 0 {
			t.Errorf("tri_patch entry = %v, want 0", p)
		}
	}
}

func TestFind_NonManifoldEdgesSplitPatches(t *testing.T) {
	a, tm := buildTwoTetrahedraSharingFace(t)
	topo := topology.Build(a, tm)
	info := Find(a, tm, topo)

	// Every edge of each base triangle is non-manifold (4 triangles), so each
	// base triangle is a single-triangle patch; the 3 side faces of each
	// tetrahedron are joined by manifold edges into one patch. That gives 4
	// patches covering all 8 triangles.
	if got := len(info.Patches); got != 4 {
		t.Fatalf("len(Patches) = %v, want 4", got)
	}
	total := 0
	for _, p := range info.Patches {
		total += len(p.Triangles)
	}
	if total != tm.NumFaces() {
		t.Errorf("triangles across patches = %v, want %v", total, tm.NumFaces())
	}
	if len(info.PPEdge) == 0 {
		t.Errorf("expected at least one recorded pp_edge between the two patches")
	}
}

func TestFind_PatchPartitionIsDisjoint(t *testing.T) {
	a, tm := buildTwoTetrahedraSharingFace(t)
	topo := topology.Build(a, tm)
	info := Find(a, tm, topo)

	seen := make(map[int]bool)
	for _, p := range info.Patches {
		for _, tIdx := range p.Triangles {
			if seen[tIdx] {
				t.Errorf("triangle %d assigned to more than one patch", tIdx)
			}
			seen[tIdx] = true
		}
	}
}
