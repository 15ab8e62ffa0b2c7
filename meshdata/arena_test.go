// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package meshdata

import (
	"testing"

	"github.com/kriulin/trimeshbool/exact"
)

func TestArena_AddOrFindVert_Dedup(t *testing.T) {
	a := NewArena()
	p := exact.Vec3FromInt(1, 2, 3)

	v1 := a.AddOrFindVert(p, 0)
	v2 := a.AddOrFindVert(p, 1)

	if v1 != v2 {
		t.Errorf("AddOrFindVert(same coord) returned distinct handles %v, %v", v1, v2)
	}
	if got := a.NumVerts(); got != 1 {
		t.Errorf("NumVerts() = %v, want 1", got)
	}
}

func TestArena_AddOrFindVert_DistinctCoords(t *testing.T) {
	a := NewArena()
	v1 := a.AddOrFindVert(exact.Vec3FromInt(0, 0, 0), NoIndex)
	v2 := a.AddOrFindVert(exact.Vec3FromInt(1, 0, 0), NoIndex)

	if v1 == v2 {
		t.Errorf("distinct coords got same handle %v", v1)
	}
}

func TestArena_AddFace_PlaneOrientation(t *testing.T) {
	a := NewArena()
	v0 := a.AddOrFindVert(exact.Vec3FromInt(0, 0, 0), 0)
	v1 := a.AddOrFindVert(exact.Vec3FromInt(1, 0, 0), 1)
	v2 := a.AddOrFindVert(exact.Vec3FromInt(0, 1, 0), 2)

	fp := a.AddFace([]Vertp{v0, v1, v2}, 0, []int{NoIndex, NoIndex, NoIndex})
	face := a.Face(fp)

	want := exact.Vec3FromInt(0, 0, 1)
	if got := face.Plane().Normal; !got.Equal(want) {
		t.Errorf("face.Plane().Normal = %v, want %v", got, want)
	}
}

func TestFace_Reversed(t *testing.T) {
	a := NewArena()
	v0 := a.AddOrFindVert(exact.Vec3FromInt(0, 0, 0), 0)
	v1 := a.AddOrFindVert(exact.Vec3FromInt(1, 0, 0), 1)
	v2 := a.AddOrFindVert(exact.Vec3FromInt(0, 1, 0), 2)

	fp := a.AddFace([]Vertp{v0, v1, v2}, 7, []int{10, 11, 12})
	face := a.Face(fp)
	rev := face.Reversed()

	wantVerts := []Vertp{v2, v1, v0}
	for i, vp := range wantVerts {
		if rev.Vert(i) != vp {
			t.Errorf("rev.Vert(%d) = %v, want %v", i, rev.Vert(i), vp)
		}
	}
	if rev.Orig() != 7 {
		t.Errorf("rev.Orig() = %v, want 7", rev.Orig())
	}
	// side 0 of rev (v2->v1) is original side 1 (v1->v2) reversed: edgeOrig 11.
	if got := rev.EdgeOrig(0); got != 11 {
		t.Errorf("rev.EdgeOrig(0) = %v, want 11", got)
	}
}
