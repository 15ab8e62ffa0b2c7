// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cellgraph

import "github.com/kriulin/trimeshbool/patch"

// Validate checks that every cell has at least one patch, every patch has
// both sides set, every index is in range, and the bipartite patch/cell
// graph is connected (flood-fill from patch 0, relying on ascending-index
// iteration for reproducibility).
func Validate(pinfo *patch.PatchesInfo, ci *CellsInfo) error {
	for i, c := range ci.Cells {
		if len(c.Patches) == 0 {
			return &ValidationError{Reason: "cell has no patches", Index: i}
		}
	}
	for i, p := range pinfo.Patches {
		if p.CellAbove == NoIndex || p.CellBelow == NoIndex {
			return &ValidationError{Reason: "patch missing a bound side", Index: i}
		}
		if p.CellAbove < 0 || p.CellAbove >= len(ci.Cells) ||
			p.CellBelow < 0 || p.CellBelow >= len(ci.Cells) {
			return &ValidationError{Reason: "patch cell index out of range", Index: i}
		}
	}
	if len(pinfo.Patches) == 0 {
		return nil
	}
	if !isConnected(pinfo, ci) {
		return &ValidationError{Reason: "patch/cell graph is disconnected"}
	}
	return nil
}

// ValidationError reports why the patch/cell graph failed validation. This
// is a recoverable condition reported to the log, not a panic.
type ValidationError struct {
	Reason string
	Index  int
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func isConnected(pinfo *patch.PatchesInfo, ci *CellsInfo) bool {
	visitedPatch := make([]bool, len(pinfo.Patches))
	visitedCell := make([]bool, len(ci.Cells))

	stack := []int{0}
	visitedPatch[0] = true
	count := 1

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		patchP := pinfo.Patches[p]

		for _, c := range []int{patchP.CellAbove, patchP.CellBelow} {
			if visitedCell[c] {
				continue
			}
			visitedCell[c] = true
			for _, p2 := range ci.Cells[c].Patches {
				if !visitedPatch[p2] {
					visitedPatch[p2] = true
					count++
					stack = append(stack, p2)
				}
			}
		}
	}

	return count == len(pinfo.Patches)
}
