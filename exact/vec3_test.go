// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package exact

import "testing"

func TestVec3_CrossDot(t *testing.T) {
	x := Vec3FromInt(1, 0, 0)
	y := Vec3FromInt(0, 1, 0)
	z := Vec3FromInt(0, 0, 1)

	if got := x.Cross(y); !got.Equal(z) {
		t.Errorf("x.Cross(y) = %v, want %v", got, z)
	}
	if got := x.Dot(y); !got.IsZero() {
		t.Errorf("x.Dot(y) = %v, want 0", got)
	}
	if got := x.Dot(x); !got.Equal(NewInt(1)) {
		t.Errorf("x.Dot(x) = %v, want 1", got)
	}
}

func TestVec3_DominantAxis(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		want Axis
	}{
		{"x dominant", Vec3FromInt(5, 1, -2), AxisX},
		{"y dominant", Vec3FromInt(1, -5, 2), AxisY},
		{"z dominant", Vec3FromInt(1, 2, 5), AxisZ},
		{"tie prefers later axis", Vec3FromInt(3, 3, 3), AxisZ},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.DominantAxis(); got != tt.want {
				t.Errorf("DominantAxis() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec3_IsZero(t *testing.T) {
	if !(Vec3{}).IsZero() {
		t.Errorf("zero value Vec3.IsZero() = false, want true")
	}
	if Vec3FromInt(0, 0, 1).IsZero() {
		t.Errorf("Vec3FromInt(0,0,1).IsZero() = true, want false")
	}
}
