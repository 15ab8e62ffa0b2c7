// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cellgraph

import (
	"testing"

	"github.com/kriulin/trimeshbool/exact"
	"github.com/kriulin/trimeshbool/meshdata"
	"github.com/kriulin/trimeshbool/patch"
	"github.com/kriulin/trimeshbool/topology"
)

// buildClosedTetrahedron returns a single consistently outward-CCW-oriented
// tetrahedron: one connected manifold patch, no non-manifold edges.
func buildClosedTetrahedron(t *testing.T) (*meshdata.Arena, meshdata.Mesh) {
	t.Helper()
	a := meshdata.NewArena()
	A := a.AddOrFindVert(exact.Vec3FromInt(0, 0, 0), 0)
	B := a.AddOrFindVert(exact.Vec3FromInt(2, 0, 0), 1)
	C := a.AddOrFindVert(exact.Vec3FromInt(0, 2, 0), 2)
	D := a.AddOrFindVert(exact.Vec3FromInt(0, 0, 2), 3)

	noI := []int{meshdata.NoIndex, meshdata.NoIndex, meshdata.NoIndex}
	faces := []meshdata.Facep{
		a.AddFace([]meshdata.Vertp{A, C, B}, 0, noI), // opposite D
		a.AddFace([]meshdata.Vertp{A, B, D}, 1, noI), // opposite C
		a.AddFace([]meshdata.Vertp{A, D, C}, 2, noI), // opposite B
		a.AddFace([]meshdata.Vertp{B, C, D}, 3, noI), // opposite A
	}
	return a, meshdata.NewMesh(a, faces)
}

// buildBookOfPages returns n triangles all sharing the edge (0,0,0)-(0,0,1),
// with flap vertices spread evenly around the unit circle in the xy-plane,
// forming n single-triangle patches meeting at one non-manifold edge.
func buildBookOfPages(t *testing.T, n int) (*meshdata.Arena, meshdata.Mesh) {
	t.Helper()
	a := meshdata.NewArena()
	v0 := a.AddOrFindVert(exact.Vec3FromInt(0, 0, 0), 0)
	v1 := a.AddOrFindVert(exact.Vec3FromInt(0, 0, 1), 1)

	// Use integer lattice directions to stay exact: n=3 uses (1,0), (0,1),
	// (-1,-1) which are at distinct, non-collinear angles.
	dirs := [][2]int64{{1, 0}, {0, 1}, {-1, -1}, {1, -2}, {-2, 1}}
	if n > len(dirs) {
		t.Fatalf("buildBookOfPages: n=%d exceeds available directions", n)
	}
	noI := []int{meshdata.NoIndex, meshdata.NoIndex, meshdata.NoIndex}
	var faces []meshdata.Facep
	for i := 0; i < n; i++ {
		flap := a.AddOrFindVert(exact.Vec3FromInt(dirs[i][0], dirs[i][1], 0), 10+i)
		faces = append(faces, a.AddFace([]meshdata.Vertp{v0, v1, flap}, i, noI))
	}
	return a, meshdata.NewMesh(a, faces)
}

func TestBuild_IsolatedClosedPatchGetsTwoCells(t *testing.T) {
	a, tm := buildClosedTetrahedron(t)
	topo := topology.Build(a, tm)
	pinfo := patch.Find(a, tm, topo)
	if len(pinfo.Patches) != 1 {
		t.Fatalf("expected 1 patch, got %d", len(pinfo.Patches))
	}

	ci := Build(a, tm, topo, pinfo)
	if got := len(ci.Cells); got != 2 {
		t.Fatalf("len(Cells) = %d, want 2", got)
	}
	if err := Validate(pinfo, ci); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	p := pinfo.Patches[0]
	if p.CellAbove == p.CellBelow {
		t.Errorf("patch CellAbove == CellBelow == %d, want distinct", p.CellAbove)
	}
}

func TestBuild_BookOfThreePages(t *testing.T) {
	a, tm := buildBookOfPages(t, 3)
	topo := topology.Build(a, tm)
	pinfo := patch.Find(a, tm, topo)
	if len(pinfo.Patches) != 3 {
		t.Fatalf("expected 3 patches, got %d", len(pinfo.Patches))
	}

	ci := Build(a, tm, topo, pinfo)
	if err := Validate(pinfo, ci); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if got := len(ci.Cells); got != 3 {
		t.Errorf("len(Cells) = %d, want 3 (one wedge per consecutive page pair)", got)
	}
}

func TestValidate_OutOfRangeCellIndexReported(t *testing.T) {
	a, tm1 := buildClosedTetrahedron(t)
	topo1 := topology.Build(a, tm1)
	pinfo := patch.Find(a, tm1, topo1)
	ci := Build(a, tm1, topo1, pinfo)

	// Simulate a disconnected graph by adding an extra patch that
	// references a cell nothing else points to.
	orphan := &patch.Patch{CellAbove: 0, CellBelow: 0}
	pinfo.Patches = append(pinfo.Patches, orphan)
	pinfo.TriPatch = append(pinfo.TriPatch, len(pinfo.Patches)-1)

	// This does not actually disconnect (orphan references existing
	// cell 0), so instead directly test the out-of-range path, which is
	// a cheaper and equally valid way to exercise the validation branch.
	badPatch := &patch.Patch{CellAbove: 99, CellBelow: 0}
	pinfo.Patches[len(pinfo.Patches)-1] = badPatch

	if err := Validate(pinfo, ci); err == nil {
		t.Errorf("Validate() = nil, want an error for out-of-range cell index")
	}
}

func TestFindAmbient_ReturnsValidCellIndex(t *testing.T) {
	a, tm := buildBookOfPages(t, 3)
	topo := topology.Build(a, tm)
	pinfo := patch.Find(a, tm, topo)
	ci := Build(a, tm, topo, pinfo)
	if err := Validate(pinfo, ci); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	ambient := FindAmbient(a, tm, topo, pinfo)
	if ambient < 0 || ambient >= len(ci.Cells) {
		t.Errorf("FindAmbient() = %d, want index in [0, %d)", ambient, len(ci.Cells))
	}
}
