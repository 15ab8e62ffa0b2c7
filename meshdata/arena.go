// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package meshdata holds the core data model: vertices and faces owned by
// an arena and referenced everywhere else by opaque integer handle, and the
// read-only Mesh view over a face sequence.
package meshdata

import (
	"github.com/golang/geo/r3"
	"github.com/kriulin/trimeshbool/exact"
)

// NoIndex is the sentinel value for an absent index.
const NoIndex = -1

// Vertp is an opaque handle to a vertex owned by an Arena.
type Vertp int

// Facep is an opaque handle to a face owned by an Arena.
type Facep int

// Arena owns vertices and faces. The topological core never frees an
// entry; handles are stable for the lifetime of the arena.
type Arena struct {
	verts   []Vertex
	faces   []Face
	byCoord map[coordKey]Vertp
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{byCoord: make(map[coordKey]Vertp)}
}

// coordKey canonicalizes an exact coordinate for the vertex-dedup map. Exact
// rationals hash by their reduced string form so two equal values with
// different internal representations collide on the same key.
type coordKey string

func keyOf(co exact.Vec3) coordKey {
	return coordKey(co.X.String() + "," + co.Y.String() + "," + co.Z.String())
}

// AddOrFindVert returns the handle for a vertex at co, creating one (with
// approximate coordinate computed from co and the given orig index) if no
// existing vertex at that exact position is found.
func (a *Arena) AddOrFindVert(co exact.Vec3, orig int) Vertp {
	k := keyOf(co)
	if vp, ok := a.byCoord[k]; ok {
		return vp
	}
	vp := Vertp(len(a.verts))
	a.verts = append(a.verts, Vertex{
		id:       int(vp),
		coExact:  co,
		co:       approxOf(co),
		orig:     orig,
	})
	a.byCoord[k] = vp
	return vp
}

// AddFace allocates a new face from verts with the given orig and per-side
// edgeOrig, returning its handle. len(edgeOrig) must equal len(verts).
func (a *Arena) AddFace(verts []Vertp, orig int, edgeOrig []int) Facep {
	if len(edgeOrig) != len(verts) {
		panic("meshdata: Arena.AddFace: len(edgeOrig) != len(verts)")
	}
	fp := Facep(len(a.faces))
	vcopy := append([]Vertp(nil), verts...)
	ecopy := append([]int(nil), edgeOrig...)
	plane := planeOf(a, vcopy)
	a.faces = append(a.faces, Face{
		verts:    vcopy,
		orig:     orig,
		edgeOrig: ecopy,
		plane:    plane,
	})
	return fp
}

// Vertex dereferences a vertex handle.
func (a *Arena) Vertex(vp Vertp) Vertex {
	return a.verts[vp]
}

// Face dereferences a face handle.
func (a *Arena) Face(fp Facep) Face {
	return a.faces[fp]
}

// NumVerts returns the number of vertices the arena has ever allocated.
func (a *Arena) NumVerts() int {
	return len(a.verts)
}

// NumFaces returns the number of faces the arena has ever allocated.
func (a *Arena) NumFaces() int {
	return len(a.faces)
}

func approxOf(co exact.Vec3) r3.Vector {
	return r3.Vector{X: co.X.Float64(), Y: co.Y.Float64(), Z: co.Z.Float64()}
}
