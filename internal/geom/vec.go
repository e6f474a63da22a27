package geom

import "math"

// Vec is an immutable 2D vector in canvas-local pixel coordinates.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(other Vec) Vec {
	return Vec{v.X + other.X, v.Y + other.Y}
}

func (v Vec) Sub(other Vec) Vec {
	return Vec{v.X - other.X, v.Y - other.Y}
}

func (v Vec) Scale(factor float64) Vec {
	return Vec{v.X * factor, v.Y * factor}
}

func (v Vec) Dot(other Vec) float64 {
	return v.X*other.X + v.Y*other.Y
}

func (v Vec) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec) DistanceTo(other Vec) float64 {
	return v.Sub(other).Length()
}

// Normalize returns v scaled to unit length. The zero vector maps to
// the zero vector rather than dividing by zero.
func (v Vec) Normalize() Vec {
	m := v.Length()
	if m == 0 {
		return Vec{}
	}
	return Vec{v.X / m, v.Y / m}
}

func (v Vec) IsValid() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
