// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package cellgraph builds a cell adjacency graph from a patch partition,
// validates it, and locates the ambient cell, turning a patch partition
// into the cells of 3-space those patches bound.
package cellgraph

import "github.com/kriulin/trimeshbool/patch"

// NoIndex mirrors patch.NoIndex / meshdata.NoIndex for cell indices.
const NoIndex = patch.NoIndex

// Cell is a connected open volume of 3-space: the patches bounding it, its
// per-shape winding vector, its keep/discard flag, and whether a winding
// number has been assigned yet.
type Cell struct {
	Patches         []int
	Winding         []int
	Flag            bool
	WindingAssigned bool
}

// CellsInfo holds the cells, indexed by position.
type CellsInfo struct {
	Cells []*Cell
}

// addPatchToCell appends p to cell c's patch list if not already present.
func (ci *CellsInfo) addPatchToCell(c, p int) {
	cell := ci.Cells[c]
	for _, existing := range cell.Patches {
		if existing == p {
			return
		}
	}
	cell.Patches = append(cell.Patches, p)
}

func (ci *CellsInfo) newCell() int {
	idx := len(ci.Cells)
	ci.Cells = append(ci.Cells, &Cell{})
	return idx
}
