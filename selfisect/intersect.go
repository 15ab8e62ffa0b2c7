// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package selfisect holds the self-intersection / nary-intersection
// collaborator interfaces. The triangle-splitting pre-pass itself — slicing
// triangles along their pairwise 3D intersection curves so the topological
// core only ever sees a mesh with no improper crossings — is out of scope
// here. The module's default, PassthroughIntersector, returns its input
// unchanged, which is only correct when every crossing between triangles,
// within one shape or between shapes, already lies along shared edges. The
// topological core does not split crossing triangles itself: its
// patch/radial-sort machinery works only on edges the triangles share.
package selfisect

import "github.com/kriulin/trimeshbool/meshdata"

// ShapeOf maps a triangle index in a combined mesh back to the input shape
// (0..nshapes-1) it came from, the same function type boolean_trimesh takes.
type ShapeOf func(triangleIndex int) int

// Intersector is the self-intersection / nary-intersection collaborator.
// Swap in a real triangle-splitting implementation by satisfying this
// interface; the zero-value PassthroughIntersector is the module's default.
type Intersector interface {
	// SelfIntersect splits tm's own triangles along their pairwise 3D
	// intersection curves, returning a mesh with no improper self-crossings.
	SelfIntersect(arena *meshdata.Arena, tm meshdata.Mesh) (meshdata.Mesh, error)

	// NaryIntersect splits tm — a mesh combining nshapes labelled inputs,
	// shapeOf naming each triangle's source shape — along every pairwise
	// intersection curve between triangles of different shapes. If useSelf
	// is true, each shape's own self-intersections are resolved too, via
	// SelfIntersect, before the cross-shape pass.
	NaryIntersect(arena *meshdata.Arena, tm meshdata.Mesh, nshapes int, shapeOf ShapeOf, useSelf bool) (meshdata.Mesh, error)
}

// PassthroughIntersector is the module's default Intersector: it assumes its
// input already has no improper crossings and returns it unchanged.
type PassthroughIntersector struct{}

// SelfIntersect returns tm unchanged.
func (PassthroughIntersector) SelfIntersect(_ *meshdata.Arena, tm meshdata.Mesh) (meshdata.Mesh, error) {
	return tm, nil
}

// NaryIntersect returns tm unchanged, ignoring nshapes and shapeOf.
func (PassthroughIntersector) NaryIntersect(_ *meshdata.Arena, tm meshdata.Mesh, _ int, _ ShapeOf, useSelf bool) (meshdata.Mesh, error) {
	return tm, nil
}
