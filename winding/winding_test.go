// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package winding

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kriulin/trimeshbool/cellgraph"
	"github.com/kriulin/trimeshbool/patch"
)

// buildTwoCellChain returns a single patch p separating cell 0 (ambient,
// below) from cell 1 (above), both belonging to shape 0.
func buildTwoCellChain() (*patch.PatchesInfo, *cellgraph.CellsInfo) {
	p := &patch.Patch{Triangles: []int{5}, CellAbove: 1, CellBelow: 0}
	pinfo := &patch.PatchesInfo{Patches: []*patch.Patch{p}, TriPatch: []int{0}}
	ci := &cellgraph.CellsInfo{Cells: []*cellgraph.Cell{
		{Patches: []int{0}},
		{Patches: []int{0}},
	}}
	return pinfo, ci
}

func TestPropagate_SimpleChain(t *testing.T) {
	pinfo, ci := buildTwoCellChain()
	shapeOf := func(int) int { return 0 }

	Propagate(pinfo, ci, 0, 1, shapeOf, Union)

	if !ci.Cells[0].WindingAssigned {
		t.Fatalf("ambient cell winding not assigned")
	}
	if diff := cmp.Diff([]int{0}, ci.Cells[0].Winding); diff != "" {
		t.Errorf("ambient cell winding mismatch (-want +got):\n%s", diff)
	}
	if ci.Cells[0].Flag {
		t.Errorf("ambient cell flag = true, want false")
	}
	// Crossing from cell 0 (ambient) into cell 1: p.cell_below == 0, so
	// delta = +1, giving winding [1] and Union keep = true.
	if !ci.Cells[1].WindingAssigned {
		t.Fatalf("cell 1 winding not assigned")
	}
	if diff := cmp.Diff([]int{1}, ci.Cells[1].Winding); diff != "" {
		t.Errorf("cell 1 winding mismatch (-want +got):\n%s", diff)
	}
	if !ci.Cells[1].Flag {
		t.Errorf("cell 1 flag = false, want true (Union, w[0]=1)")
	}
}

func TestKeep_Intersection(t *testing.T) {
	if Keep(Isect, []int{1, 0}) {
		t.Errorf("Keep(Isect, [1,0]) = true, want false")
	}
	if !Keep(Isect, []int{1, 2}) {
		t.Errorf("Keep(Isect, [1,2]) = false, want true")
	}
}

func TestKeep_Difference(t *testing.T) {
	cases := []struct {
		w    []int
		want bool
	}{
		{[]int{0, 5}, false},
		{[]int{1, 0}, true},
		{[]int{1, 1}, false},
		{[]int{3}, true},
	}
	for _, c := range cases {
		if got := Keep(Difference, c.w); got != c.want {
			t.Errorf("Keep(Difference, %v) = %v, want %v", c.w, got, c.want)
		}
	}
}

func TestKeep_Union(t *testing.T) {
	if Keep(Union, []int{0, 0}) {
		t.Errorf("Keep(Union, [0,0]) = true, want false")
	}
	if !Keep(Union, []int{0, -1}) {
		t.Errorf("Keep(Union, [0,-1]) = false, want true")
	}
}

func TestKeep_NonePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Keep(None, ...) did not panic")
		}
	}()
	Keep(None, []int{0})
}
