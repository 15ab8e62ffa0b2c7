// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package exact provides the exact-rational arithmetic leaf dependency used by
// every geometric predicate in the mesh boolean engine: a rational scalar, 2D
// and 3D vectors built from it, and the orientation predicates the topological
// core relies on for determinism.
package exact

import "math/big"

// Scalar is an exact rational number. The zero value is 0/1.
type Scalar struct {
	r big.Rat
}

// NewInt returns the exact scalar equal to n.
func NewInt(n int64) Scalar {
	var s Scalar
	s.r.SetInt64(n)
	return s
}

// NewRat returns the exact scalar equal to num/den. It panics if den is zero.
func NewRat(num, den int64) Scalar {
	if den == 0 {
		panic("exact: NewRat: zero denominator")
	}
	var s Scalar
	s.r.SetFrac64(num, den)
	return s
}

// Float64 returns the nearest float64 approximation. It must only be used for
// the approximate-coordinate / length-metric purposes spec'd for co, never for
// a geometric predicate.
func (s Scalar) Float64() float64 {
	f, _ := s.r.Float64()
	return f
}

// Add returns s + o.
func (s Scalar) Add(o Scalar) Scalar {
	var out Scalar
	out.r.Add(&s.r, &o.r)
	return out
}

// Sub returns s - o.
func (s Scalar) Sub(o Scalar) Scalar {
	var out Scalar
	out.r.Sub(&s.r, &o.r)
	return out
}

// Mul returns s * o.
func (s Scalar) Mul(o Scalar) Scalar {
	var out Scalar
	out.r.Mul(&s.r, &o.r)
	return out
}

// Div returns s / o. It panics if o is zero.
func (s Scalar) Div(o Scalar) Scalar {
	if o.Sign() == 0 {
		panic("exact: Scalar.Div: division by zero")
	}
	var out Scalar
	out.r.Quo(&s.r, &o.r)
	return out
}

// Neg returns -s.
func (s Scalar) Neg() Scalar {
	var out Scalar
	out.r.Neg(&s.r)
	return out
}

// Sign returns -1, 0, or 1 matching the sign of s.
func (s Scalar) Sign() int {
	return s.r.Sign()
}

// Cmp compares s and o, returning -1, 0, or 1.
func (s Scalar) Cmp(o Scalar) int {
	return s.r.Cmp(&o.r)
}

// Equal reports whether s == o.
func (s Scalar) Equal(o Scalar) bool {
	return s.Cmp(o) == 0
}

// IsZero reports whether s == 0.
func (s Scalar) IsZero() bool {
	return s.Sign() == 0
}

// String returns the rational's canonical "num/den" form.
func (s Scalar) String() string {
	return s.r.RatString()
}
