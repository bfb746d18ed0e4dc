// Package vmath provides small 3D vector helpers for the simulation core.
package vmath

import "math"

// Vec3 is a float64 3D vector used for positions, velocities and scales.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// MagSq returns the squared magnitude. Hot-path distance tests use this
// to avoid the square root.
func (v Vec3) MagSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Mag returns the magnitude.
func (v Vec3) Mag() float64 {
	return math.Sqrt(v.MagSq())
}

// Normalized returns a unit-length copy of v, or the zero vector if v is zero.
func (v Vec3) Normalized() Vec3 {
	mag := v.Mag()
	if mag == 0 {
		return Vec3{}
	}
	inv := 1.0 / mag
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// DistSq returns the squared distance between v and o.
func (v Vec3) DistSq(o Vec3) float64 {
	return v.Sub(o).MagSq()
}

// LateralSq returns the squared distance from the depth axis (XY only).
func (v Vec3) LateralSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Lerp returns the linear interpolation between v and o at t.
// Presentation uses this with the loop's interpolation alpha.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
		Z: v.Z + (o.Z-v.Z)*t,
	}
}

// Clamp limits each component to [min, max] of the matching bounds component.
func (v Vec3) Clamp(min, max Vec3) Vec3 {
	return Vec3{
		X: clamp(v.X, min.X, max.X),
		Y: clamp(v.Y, min.Y, max.Y),
		Z: clamp(v.Z, min.Z, max.Z),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
