// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package winding propagates per-shape winding numbers outward from the
// ambient cell across the patch/cell graph, and decides which cells
// survive a boolean operator.
package winding

import (
	"github.com/kriulin/trimeshbool/cellgraph"
	"github.com/kriulin/trimeshbool/patch"
)

// ShapeOf classifies a triangle index into [0, nshapes). Patches never cross
// shapes by construction, so any triangle in a patch identifies its shape.
type ShapeOf func(triangleIndex int) int

// Propagate runs a BFS outward from the ambient cell c0, assigning every
// cell's winding vector and keep/discard flag. It follows the
// enqueue/visit/dequeue shape of a generic graph walker, specialized to
// the fixed patch/cell adjacency and carrying no cancellation surface --
// the core exposes none.
func Propagate(pinfo *patch.PatchesInfo, ci *cellgraph.CellsInfo, c0, nshapes int,
	shapeOf ShapeOf, op Operator) {

	c0Cell := ci.Cells[c0]
	c0Cell.Winding = make([]int, nshapes)
	c0Cell.WindingAssigned = true
	c0Cell.Flag = false // ambient cell is never inside the result

	visited := make([]bool, len(ci.Cells))
	visited[c0] = true
	queue := []int{c0}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		cell := ci.Cells[c]

		for _, pIdx := range cell.Patches {
			p := pinfo.Patches[pIdx]
			var other int
			switch c {
			case p.CellAbove:
				other = p.CellBelow
			case p.CellBelow:
				other = p.CellAbove
			default:
				continue // not actually incident; defensive, should not happen
			}
			if visited[other] {
				continue
			}
			visited[other] = true

			delta := -1
			if p.CellBelow == c {
				delta = 1
			}
			shape := shapeOf(p.Triangles[0])

			otherCell := ci.Cells[other]
			otherCell.Winding = append([]int(nil), cell.Winding...)
			otherCell.Winding[shape] += delta
			otherCell.WindingAssigned = true
			otherCell.Flag = Keep(op, otherCell.Winding)

			queue = append(queue, other)
		}
	}
}
