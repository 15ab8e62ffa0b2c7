// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package exact

// Sign is the result of an orientation predicate.
type Sign int

const (
	Negative Sign = -1
	Zero     Sign = 0
	Positive Sign = 1
)

// Orient3D returns the sign of the signed volume of tetrahedron (a,b,c,d):
// Positive if d lies above the plane through a,b,c (CCW winding seen from d's
// side), Negative if below, Zero if coplanar. This is the sole exact 3D
// predicate the topological core depends on.
func Orient3D(a, b, c, d Vec3) Sign {
	ab := b.Sub(a)
	ac := c.Sub(a)
	ad := d.Sub(a)
	// det [ab; ac; ad] = ab . (ac x ad)
	det := ab.Dot(ac.Cross(ad))
	switch det.Sign() {
	case -1:
		return Negative
	case 1:
		return Positive
	default:
		return Zero
	}
}

// Orient2D returns the sign of twice the signed area of triangle (a,b,c) in
// the plane: Positive if CCW, Negative if CW, Zero if collinear. Used by
// cdt2d's flip-based constraint recovery.
func Orient2D(a, b, c Vec2) Sign {
	det := b.Sub(a).Cross(c.Sub(a))
	switch det.Sign() {
	case -1:
		return Negative
	case 1:
		return Positive
	default:
		return Zero
	}
}
