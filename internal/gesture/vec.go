package gesture

import "math"

// Vec2 is a 2D translation in points. Negative Y moves the bar up.
type Vec2 struct {
	X float64
	Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Len returns the euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Lerp returns the point t of the way from a to b. t is not clamped.
func Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// Interpolate maps v from the input range [in0, in1] onto [out0, out1],
// clamping to the output endpoints. The input range may be descending.
func Interpolate(v, in0, in1, out0, out1 float64) float64 {
	if in0 == in1 {
		return out0
	}
	t := (v - in0) / (in1 - in0)
	if t <= 0 {
		return out0
	}
	if t >= 1 {
		return out1
	}
	return out0 + (out1-out0)*t
}
