package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3_AddSubScale(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	assert.Equal(t, Vec3{5, 7, 9}, a.Add(b))
	assert.Equal(t, Vec3{-3, -3, -3}, a.Sub(b))
	assert.Equal(t, Vec3{2, 4, 6}, a.Scale(2))
}

func TestVec3_Magnitude(t *testing.T) {
	v := Vec3{3, 4, 0}

	assert.Equal(t, 25.0, v.MagSq())
	assert.Equal(t, 5.0, v.Mag())
}

func TestVec3_Normalized(t *testing.T) {
	v := Vec3{0, 0, 10}.Normalized()
	assert.InDelta(t, 1.0, v.Mag(), 1e-9)
	assert.Equal(t, Vec3{0, 0, 1}, v)

	// Zero vector normalizes to zero, not NaN
	assert.Equal(t, Vec3{}, Vec3{}.Normalized())
}

func TestVec3_DistSq(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{4, 4, 0}
	assert.Equal(t, 25.0, a.DistSq(b))
}

func TestVec3_LateralSq(t *testing.T) {
	// Depth (Z) must not contribute to lateral distance
	v := Vec3{3, 4, 100}
	assert.Equal(t, 25.0, v.LateralSq())
}

func TestVec3_Lerp(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{10, 20, 30}

	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, Vec3{5, 10, 15}, a.Lerp(b, 0.5))
}

func TestVec3_Clamp(t *testing.T) {
	min := Vec3{-1, -1, 0}
	max := Vec3{1, 1, 10}

	tests := []struct {
		name     string
		in       Vec3
		expected Vec3
	}{
		{"inside", Vec3{0.5, -0.5, 5}, Vec3{0.5, -0.5, 5}},
		{"below", Vec3{-2, -2, -1}, Vec3{-1, -1, 0}},
		{"above", Vec3{2, 2, 11}, Vec3{1, 1, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.in.Clamp(min, max))
		})
	}
}
