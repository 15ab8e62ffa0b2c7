// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package exact

import "testing"

func TestOrient3D(t *testing.T) {
	a := Vec3FromInt(0, 0, 0)
	b := Vec3FromInt(1, 0, 0)
	c := Vec3FromInt(0, 1, 0)

	tests := []struct {
		name string
		d    Vec3
		want Sign
	}{
		{"above (+z)", Vec3FromInt(0, 0, 1), Positive},
		{"below (-z)", Vec3FromInt(0, 0, -1), Negative},
		{"coplanar", Vec3FromInt(1, 1, 0), Zero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Orient3D(a, b, c, tt.d); got != tt.want {
				t.Errorf("Orient3D(a,b,c,%v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}

func TestOrient2D(t *testing.T) {
	a := NewVec2(NewInt(0), NewInt(0))
	b := NewVec2(NewInt(1), NewInt(0))

	tests := []struct {
		name string
		c    Vec2
		want Sign
	}{
		{"ccw", NewVec2(NewInt(0), NewInt(1)), Positive},
		{"cw", NewVec2(NewInt(0), NewInt(-1)), Negative},
		{"collinear", NewVec2(NewInt(2), NewInt(0)), Zero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Orient2D(a, b, tt.c); got != tt.want {
				t.Errorf("Orient2D(a,b,%v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}
