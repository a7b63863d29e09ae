// Package components holds the simulation's entity state types.
package components

import "math"

// Vec2 is a 2D vector in local or world space.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Length returns the magnitude of v.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns v scaled to unit length, or the zero vector if v
// has no direction.
func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return v.Scale(1 / l)
}

// Perp returns v rotated a quarter turn.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Rotated returns v rotated by theta radians, clockwise from north.
func (v Vec2) Rotated(theta float64) Vec2 {
	sin, cos := math.Sincos(theta)
	return Vec2{X: v.X*cos + v.Y*sin, Y: -v.X*sin + v.Y*cos}
}

// Heading returns the unit forward vector for a rotation: the canonical
// north vector (0, -1) rotated by the given angle.
func Heading(rotation float64) Vec2 {
	return Vec2{X: 0, Y: -1}.Rotated(rotation)
}

// posMod reduces a into [0, b), unlike math.Mod which preserves sign.
func posMod(a, b float64) float64 {
	m := math.Mod(a, b)
	if m < 0 {
		m += b
	}
	return m
}
