// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package meshdata

import "github.com/kriulin/trimeshbool/exact"

// Plane is a face's cached support plane: normal . p == offset for every
// point p on the plane.
type Plane struct {
	Normal exact.Vec3
	Offset exact.Scalar
}

// Face is an ordered sequence of vertex handles, the input face it came
// from (or NoIndex if synthetic), a parallel sequence of per-side input
// edge origins, and a cached support plane.
type Face struct {
	verts    []Vertp
	orig     int
	edgeOrig []int
	plane    Plane
}

// NumVerts returns the number of vertices in the face.
func (f Face) NumVerts() int {
	return len(f.verts)
}

// Vert returns the vertex handle at side i, wrapping modulo NumVerts.
func (f Face) Vert(i int) Vertp {
	return f.verts[((i%len(f.verts))+len(f.verts))%len(f.verts)]
}

// Verts returns the face's vertex handles in order. The returned slice must
// not be mutated.
func (f Face) Verts() []Vertp {
	return f.verts
}

// EdgeOrig returns the input edge origin for side i (the edge from vertex i
// to vertex i+1), or NoIndex if that side was introduced by triangulation or
// self-intersection.
func (f Face) EdgeOrig(i int) int {
	return f.edgeOrig[((i%len(f.edgeOrig))+len(f.edgeOrig))%len(f.edgeOrig)]
}

// EdgeOrigs returns the face's per-side edge origins in order. The returned
// slice must not be mutated.
func (f Face) EdgeOrigs() []int {
	return f.edgeOrig
}

// Orig returns the input face index this face derives from, or NoIndex if
// synthetic.
func (f Face) Orig() int {
	return f.orig
}

// Plane returns the face's cached support plane.
func (f Face) Plane() Plane {
	return f.plane
}

// IsTriangle reports whether the face has exactly three vertices.
func (f Face) IsTriangle() bool {
	return len(f.verts) == 3
}

// Reversed returns a copy of f with vertex order and edge origins reversed,
// used when a kept triangle must be flipped to point away from the kept
// volume. The edge origins are rotated along with the reversal so
// edgeOrig[i] still names the edge between the new verts[i] and verts[i+1].
func (f Face) Reversed() Face {
	n := len(f.verts)
	rv := make([]Vertp, n)
	re := make([]int, n)
	for i := 0; i < n; i++ {
		rv[i] = f.verts[n-1-i]
	}
	for i := 0; i < n; i++ {
		// side i of the reversed face (rv[i] -> rv[i+1]) is the original side
		// (n-1-i-1) traversed backwards, i.e. original side (n-2-i) mod n.
		re[i] = f.edgeOrig[((n-2-i)%n+n)%n]
	}
	return Face{verts: rv, orig: f.orig, edgeOrig: re, plane: Plane{
		Normal: f.plane.Normal.Neg(),
		Offset: f.plane.Offset.Neg(),
	}}
}
