// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package meshdata

import (
	"github.com/golang/geo/r3"
	"github.com/kriulin/trimeshbool/exact"
)

// Vertex holds an exact-rational coordinate for predicates, an approximate
// float coordinate for length metrics only, a stable id for
// hashing/ordering, and an orig index back into the input.
type Vertex struct {
	id      int
	coExact exact.Vec3
	co      r3.Vector
	orig    int
}

// ID returns the vertex's stable integer id, used for canonical ordering and
// hashing everywhere the core needs a deterministic tie-break.
func (v Vertex) ID() int {
	return v.id
}

// CoExact returns the exact-rational coordinate used by every predicate.
func (v Vertex) CoExact() exact.Vec3 {
	return v.coExact
}

// Co returns the approximate float coordinate, valid only for length
// metrics (e.g. detri's dissolve-order edge-length sort), never for a
// geometric predicate.
func (v Vertex) Co() r3.Vector {
	return v.co
}

// Orig returns the input vertex index this vertex derives from, or NoIndex
// if it was synthesized by the pipeline (triangulation, self-intersection,
// or the ambient-cell finder's probe point).
func (v Vertex) Orig() int {
	return v.orig
}
