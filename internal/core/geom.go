// Package core holds the types shared by games and the platform layer:
// geometry, the screen buffer, input frames, sound cues and seeded
// randomness. It imports nothing outside the standard library so game logic
// stays testable without a terminal.
package core

import "cmp"

// Rect is an axis-aligned box in world pixels. (X, Y) is the top-left
// corner and Y grows downward.
type Rect struct {
	X, Y float64
	W, H float64
}

func NewRect(x, y, w, h float64) Rect { return Rect{X: x, Y: y, W: w, H: h} }

func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// Center returns the midpoint of r.
func (r Rect) Center() (x, y float64) {
	return r.CenterX(), r.Y + r.H/2
}

// Intersects reports whether r and o share interior area. Boxes that only
// touch along an edge do not intersect, so a body resting on a platform is
// not colliding with it.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether (x, y) lies in r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(x, y float64) bool {
	return r.X <= x && x < r.Right() && r.Y <= y && y < r.Bottom()
}

// Inflate grows r by d on all four sides. A negative d shrinks it.
func (r Rect) Inflate(d float64) Rect {
	return NewRect(r.X-d, r.Y-d, r.W+2*d, r.H+2*d)
}

// Clamp limits v to [lo, hi]. When lo > hi, lo wins.
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return max(lo, min(v, hi))
}
