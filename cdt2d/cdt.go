// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package cdt2d computes constrained Delaunay triangulations of simple
// polygons by lifting the points onto the paraboloid z = x²+y², taking the
// lower hull, and projecting back. A flip-based recovery pass then restores
// the polygon boundary edges the unconstrained hull-derived triangulation
// might have cut across.
package cdt2d

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/kriulin/trimeshbool/exact"
	"github.com/markus-wa/quickhull-go/v2"
)

const defaultEps = 1e-9

// Options configures Delaunay2D via the functional-options convention.
type Options struct {
	Eps float64
}

// Option sets one field of Options.
type Option func(*Options) error

// WithEps sets quickhull's numerical tolerance. It must be positive.
func WithEps(eps float64) Option {
	return func(o *Options) error {
		if eps <= 0 {
			return fmt.Errorf("cdt2d.WithEps: eps must be positive, got %v", eps)
		}
		o.Eps = eps
		return nil
	}
}

// Result holds the triangulated output: vertices, triangles, boundary
// edges, and the original-index lineage of each.
type Result struct {
	Verts     []exact.Vec2
	Triangles [][3]int
	Edges     [][2]int
	VertOrig  []int
	EdgeOrig  []int
}

// Delaunay2D triangulates points, tries to recover every edge in boundary
// (each a pair of indices into points) that the unconstrained triangulation
// did not produce directly, and returns the result with per-vertex and
// per-edge orig carried through. Recovery is best effort: a boundary edge
// recoverConstraints cannot restore is absent from the result.
func Delaunay2D(points []exact.Vec2, pointOrig []int, boundary [][2]int, boundaryOrig []int,
	setters ...Option) (*Result, error) {

	opts := Options{Eps: defaultEps}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}
	if len(points) < 3 {
		return nil, errors.New("cdt2d.Delaunay2D: need at least 3 points")
	}

	tris, err := delaunayTriangles(points, opts.Eps)
	if err != nil {
		return nil, err
	}
	tris = recoverConstraints(points, tris, boundary)

	edges, edgeOrig := buildEdges(tris, boundary, boundaryOrig)
	return &Result{
		Verts:     points,
		Triangles: tris,
		Edges:     edges,
		VertOrig:  pointOrig,
		EdgeOrig:  edgeOrig,
	}, nil
}

// delaunayTriangles computes the unconstrained Delaunay triangulation of
// points by lifting them onto the paraboloid z = x²+y² and taking the lower
// hull, mirroring s2delaunay.NewTriangulation's use of quickhull-go for a
// convex-hull-derived triangulation.
func delaunayTriangles(points []exact.Vec2, eps float64) ([][3]int, error) {
	lifted := make([]r3.Vector, len(points))
	for i, p := range points {
		x, y := p.X.Float64(), p.Y.Float64()
		lifted[i] = r3.Vector{X: x, Y: y, Z: x*x + y*y}
	}

	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(lifted, true, true, eps)
	if len(ch.Indices)%3 != 0 {
		return nil, errors.New("cdt2d.delaunayTriangles: inconsistent hull index count")
	}

	var tris [][3]int
	for i := 0; i+2 < len(ch.Indices); i += 3 {
		a, b, c := ch.Indices[i], ch.Indices[i+1], ch.Indices[i+2]
		pa, pb, pc := lifted[a], lifted[b], lifted[c]
		normal := pb.Sub(pa).Cross(pc.Sub(pa))
		if normal.Z >= 0 {
			continue // upper-hull face; Delaunay triangulation is the lower hull only
		}
		tris = append(tris, orientCCW(points, [3]int{a, b, c}))
	}
	if len(tris) == 0 {
		return nil, errors.New("cdt2d.delaunayTriangles: lower hull is empty")
	}
	return tris, nil
}

// orientCCW reorders t so it winds counterclockwise in the 2D plane,
// decided with the exact predicate so triangle winding, unlike the hull
// construction itself, is deterministic.
func orientCCW(points []exact.Vec2, t [3]int) [3]int {
	a, b, c := points[t[0]], points[t[1]], points[t[2]]
	if exact.Orient2D(a, b, c) == exact.Negative {
		t[1], t[2] = t[2], t[1]
	}
	return t
}

func buildEdges(tris [][3]int, boundary [][2]int, boundaryOrig []int) ([][2]int, []int) {
	type ek struct{ a, b int }
	canon := func(a, b int) ek {
		if a < b {
			return ek{a, b}
		}
		return ek{b, a}
	}
	origOf := make(map[ek]int)
	for i, e := range boundary {
		k := canon(e[0], e[1])
		if _, ok := origOf[k]; !ok {
			origOf[k] = boundaryOrig[i]
		}
	}

	seen := make(map[ek]bool)
	var edges [][2]int
	var edgeOrig []int
	for _, t := range tris {
		for s := 0; s < 3; s++ {
			a, b := t[s], t[(s+1)%3]
			k := canon(a, b)
			if seen[k] {
				continue
			}
			seen[k] = true
			edges = append(edges, [2]int{k.a, k.b})
			if o, ok := origOf[k]; ok {
				edgeOrig = append(edgeOrig, o)
			} else {
				edgeOrig = append(edgeOrig, -1)
			}
		}
	}
	return edges, edgeOrig
}
