// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cdt2d

import "github.com/kriulin/trimeshbool/exact"

// recoverConstraints restores every boundary edge the unconstrained
// triangulation cut across, by repeatedly flipping the diagonal of the
// convex quad straddling it until the edge appears directly. This is a
// best-effort pass: only well-formed simple polygon input is guaranteed to
// recover cleanly, so a segment this cannot recover after a bounded number
// of flips is left as-is rather than looped on forever.
func recoverConstraints(points []exact.Vec2, tris [][3]int, boundary [][2]int) [][3]int {
	maxIters := len(tris)*4 + 16
	for _, seg := range boundary {
		recoverEdge(points, tris, seg[0], seg[1], maxIters)
	}
	return tris
}

func recoverEdge(points []exact.Vec2, tris [][3]int, u, v, maxIters int) {
	for iter := 0; iter < maxIters; iter++ {
		if edgePresent(tris, u, v) {
			return
		}
		ti, si, ok := crossingEdge(points, tris, u, v)
		if !ok {
			return // no flippable crossing found; give up on this segment
		}
		flipPair(tris, ti, si)
	}
}

func edgePresent(tris [][3]int, u, v int) bool {
	for _, t := range tris {
		for s := 0; s < 3; s++ {
			a, b := t[s], t[(s+1)%3]
			if (a == u && b == v) || (a == v && b == u) {
				return true
			}
		}
	}
	return false
}

// crossingEdge finds a triangle side that properly crosses segment (u, v)
// and whose quad (the side's two triangles) is convex, so flipping it is
// both legal and progress toward recovering the segment.
func crossingEdge(points []exact.Vec2, tris [][3]int, u, v int) (int, int, bool) {
	pu, pv := points[u], points[v]
	for ti, t := range tris {
		for s := 0; s < 3; s++ {
			a, b := t[s], t[(s+1)%3]
			if a == u || a == v || b == u || b == v {
				continue
			}
			if !segmentsCross(pu, pv, points[a], points[b]) {
				continue
			}
			oi, oj, found := findOpposite(tris, ti, a, b)
			if !found {
				continue
			}
			if quadConvex(points, tris[ti][(s+2)%3], a, tris[oi][oj], b) {
				return ti, s, true
			}
		}
	}
	return 0, 0, false
}

// findOpposite locates the other triangle sharing directed-reversed edge
// (a, b) with tris[ti], returning its index and the index of its apex
// vertex (the one not on the shared edge).
func findOpposite(tris [][3]int, ti, a, b int) (int, int, bool) {
	for tj, t := range tris {
		if tj == ti {
			continue
		}
		for s := 0; s < 3; s++ {
			if t[s] == b && t[(s+1)%3] == a {
				return tj, (s + 2) % 3, true
			}
		}
	}
	return 0, 0, false
}

// flipPair replaces the diagonal (a, b) shared by tris[ti] (side s) and its
// neighbour with the other diagonal of their quad.
func flipPair(tris [][3]int, ti, s int) {
	t := tris[ti]
	a, b, apexT := t[s], t[(s+1)%3], t[(s+2)%3]
	tj, apexOIdx, found := findOpposite(tris, ti, a, b)
	if !found {
		return
	}
	apexO := tris[tj][apexOIdx]

	tris[ti] = [3]int{apexT, apexO, b}
	tris[tj] = [3]int{apexO, apexT, a}
}

// quadConvex reports whether the quad (c, a, d, b) — the two triangles on
// either side of diagonal (a, b) with apexes c and d — is convex, meaning
// the diagonal can be safely flipped to (c, d).
func quadConvex(points []exact.Vec2, c, a, d, b int) bool {
	pc, pa, pd, pb := points[c], points[a], points[d], points[b]
	s1 := exact.Orient2D(pc, pa, pd)
	s2 := exact.Orient2D(pa, pd, pb)
	s3 := exact.Orient2D(pd, pb, pc)
	s4 := exact.Orient2D(pb, pc, pa)
	return s1 == s2 && s2 == s3 && s3 == s4 && s1 != exact.Zero
}

// segmentsCross reports whether open segments (p0,p1) and (p2,p3) properly
// cross: each segment's endpoints lie strictly on opposite sides of the
// other.
func segmentsCross(p0, p1, p2, p3 exact.Vec2) bool {
	d1 := exact.Orient2D(p2, p3, p0)
	d2 := exact.Orient2D(p2, p3, p1)
	d3 := exact.Orient2D(p0, p1, p2)
	d4 := exact.Orient2D(p0, p1, p3)
	return d1 != d2 && d1 != exact.Zero && d2 != exact.Zero &&
		d3 != d4 && d3 != exact.Zero && d4 != exact.Zero
}
