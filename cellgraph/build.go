// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cellgraph

import (
	"sort"

	"github.com/kriulin/trimeshbool/meshdata"
	"github.com/kriulin/trimeshbool/patch"
	"github.com/kriulin/trimeshbool/topology"
)

type side int

const (
	sideAbove side = iota
	sideBelow
)

func getSide(p *patch.Patch, s side) int {
	if s == sideAbove {
		return p.CellAbove
	}
	return p.CellBelow
}

func setSide(p *patch.Patch, s side, c int) {
	if s == sideAbove {
		p.CellAbove = c
	} else {
		p.CellBelow = c
	}
}

// Build walks every pair of patches sharing a representative non-manifold
// edge, radially sorts the triangles on that edge, and stitches the
// (patch, side) -> cell adjacency together, merging cells via union-find
// when the construction order reveals two raw cell indices are really the
// same cell (see DESIGN.md).
func Build(arena *meshdata.Arena, tm meshdata.Mesh, topo *topology.TriMeshTopology,
	pinfo *patch.PatchesInfo) *CellsInfo {

	ci := &CellsInfo{}
	ds := newDisjointSet(0)

	pairs := make([]patch.PPEdgeKey, 0, len(pinfo.PPEdge))
	for k := range pinfo.PPEdge {
		pairs = append(pairs, k)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].P != pairs[j].P {
			return pairs[i].P < pairs[j].P
		}
		return pairs[i].Q < pairs[j].Q
	})

	processed := make(map[topology.Edge]bool, len(pairs))
	for _, k := range pairs {
		e := pinfo.PPEdge[k]
		if processed[e] {
			continue
		}
		processed[e] = true
		processSharedEdge(arena, tm, e, topo, pinfo, ci, ds)
	}

	bindIsolatedPatches(pinfo, ci, ds)
	finalize(pinfo, ci, ds)
	return ci
}

func processSharedEdge(arena *meshdata.Arena, tm meshdata.Mesh, e topology.Edge,
	topo *topology.TriMeshTopology, pinfo *patch.PatchesInfo, ci *CellsInfo, ds *disjointSet) {

	tris := topo.EdgeTriangles(e)
	sorted := patch.RadialSort(arena, tm, e, tris, 0, nil)
	n := len(sorted)
	if n == 0 {
		return
	}
	edgePatch := make([]int, n)
	edgeRev := make([]bool, n)
	for i, t := range sorted {
		edgePatch[i] = pinfo.TriPatch[t]
		edgeRev[i] = patch.UsesEdgeReversed(arena, tm, e, t)
	}

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		p, pNext := edgePatch[i], edgePatch[j]
		if p == pNext {
			continue
		}
		patchP := pinfo.Patches[p]
		patchNext := pinfo.Patches[pNext]

		followSide := sideBelow
		if !edgeRev[i] {
			followSide = sideAbove
		}
		prevSide := sideAbove
		if !edgeRev[j] {
			prevSide = sideBelow
		}

		follow := getSide(patchP, followSide)
		prev := getSide(patchNext, prevSide)

		switch {
		case follow == NoIndex && prev == NoIndex:
			c := ci.newCell()
			ds.grow(len(ci.Cells))
			setSide(patchP, followSide, c)
			setSide(patchNext, prevSide, c)
			ci.addPatchToCell(c, p)
			ci.addPatchToCell(c, pNext)
		case follow == NoIndex:
			setSide(patchP, followSide, prev)
			ci.addPatchToCell(prev, p)
		case prev == NoIndex:
			setSide(patchNext, prevSide, follow)
			ci.addPatchToCell(follow, pNext)
		default:
			rf, rp := ds.find(follow), ds.find(prev)
			if rf != rp {
				ds.union(rf, rp)
			}
		}
	}
}

// bindIsolatedPatches handles a case the per-pp_edge pass cannot reach: a
// patch entirely free of non-manifold edges (e.g. a single closed manifold
// shape with no self-intersections) never appears in any pp_edge, so the
// loop above never touches it, yet both of its sides must still be bound --
// such a patch trivially bounds exactly two cells, the volume it encloses
// and everything outside it.
func bindIsolatedPatches(pinfo *patch.PatchesInfo, ci *CellsInfo, ds *disjointSet) {
	for _, p := range pinfo.Patches {
		if p.CellAbove != NoIndex || p.CellBelow != NoIndex {
			continue
		}
		above := ci.newCell()
		ds.grow(len(ci.Cells))
		below := ci.newCell()
		ds.grow(len(ci.Cells))
		p.CellAbove = above
		p.CellBelow = below
	}
}

func finalize(pinfo *patch.PatchesInfo, ci *CellsInfo, ds *disjointSet) {
	if len(ci.Cells) == 0 {
		return
	}
	rootToFinal := make(map[int]int)
	var finalCells []*Cell
	mapped := func(raw int) int {
		root := ds.find(raw)
		if idx, ok := rootToFinal[root]; ok {
			return idx
		}
		idx := len(finalCells)
		rootToFinal[root] = idx
		finalCells = append(finalCells, &Cell{})
		return idx
	}

	for pIdx, p := range pinfo.Patches {
		if p.CellAbove == NoIndex || p.CellBelow == NoIndex {
			continue // left unset; Validate reports this.
		}
		above := mapped(p.CellAbove)
		below := mapped(p.CellBelow)
		p.CellAbove = above
		p.CellBelow = below
		addPatchOnce(finalCells[above], pIdx)
		addPatchOnce(finalCells[below], pIdx)
	}
	ci.Cells = finalCells
}

func addPatchOnce(c *Cell, p int) {
	for _, existing := range c.Patches {
		if existing == p {
			return
		}
	}
	c.Patches = append(c.Patches, p)
}
