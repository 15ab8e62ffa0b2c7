// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package winding

// Operator selects the boolean combination rule applied during extraction.
type Operator int

const (
	None Operator = iota
	Isect
	Union
	Difference
)

// Keep decides, from a cell's per-shape winding vector w, whether op keeps
// that cell. w has one entry per input shape.
func Keep(op Operator, w []int) bool {
	switch op {
	case Isect:
		for _, wi := range w {
			if wi == 0 {
				return false
			}
		}
		return true
	case Union:
		for _, wi := range w {
			if wi != 0 {
				return true
			}
		}
		return false
	case Difference:
		if w[0] == 0 {
			return false
		}
		if len(w) == 1 {
			return true
		}
		for _, wi := range w[1:] {
			if wi == 0 {
				return true
			}
		}
		return false
	case None:
		panic("winding: Keep called with operator None")
	default:
		panic("winding: unknown operator")
	}
}
