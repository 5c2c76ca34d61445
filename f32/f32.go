// SPDX-License-Identifier: Unlicense OR MIT

/*
Package f32 contains the float32 geometry used by layout, events
and drawing.

The coordinate space has the origin in the top left
corner with the axes extending right and down.
*/
package f32

import "fmt"

// A Point is a two dimensional position.
type Point struct {
	X, Y float32
}

// A Vector is a two dimensional displacement.
type Vector struct {
	X, Y float32
}

// A Size is an amount of space in two dimensions.
type Size struct {
	Width, Height float32
}

// A Rectangle is an axis aligned area with its top left corner
// at (X, Y).
type Rectangle struct {
	X, Y          float32
	Width, Height float32
}

// Origin is the top left corner of the coordinate space.
var Origin = Point{}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h float32) Size {
	return Size{Width: w, Height: h}
}

// Rect returns the rectangle at p with size sz.
func Rect(p Point, sz Size) Rectangle {
	return Rectangle{X: p.X, Y: p.Y, Width: sz.Width, Height: sz.Height}
}

// Add returns p translated by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from p2 to p.
func (p Point) Sub(p2 Point) Vector {
	return Vector{X: p.X - p2.X, Y: p.Y - p2.Y}
}

// Vec returns the vector from the origin to p.
func (p Point) Vec() Vector {
	return Vector(p)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Add returns v+v2.
func (v Vector) Add(v2 Vector) Vector {
	return Vector{X: v.X + v2.X, Y: v.Y + v2.Y}
}

// Neg returns -v.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Add returns the size grown by s2 on both axes.
func (s Size) Add(s2 Size) Size {
	return Size{Width: s.Width + s2.Width, Height: s.Height + s2.Height}
}

// Sub returns the size shrunk by s2, saturating at zero.
func (s Size) Sub(s2 Size) Size {
	return Size{Width: max(s.Width-s2.Width, 0), Height: max(s.Height-s2.Height, 0)}
}

// Min returns the per-axis minimum of s and s2.
func (s Size) Min(s2 Size) Size {
	return Size{Width: min(s.Width, s2.Width), Height: min(s.Height, s2.Height)}
}

// Max returns the per-axis maximum of s and s2.
func (s Size) Max(s2 Size) Size {
	return Size{Width: max(s.Width, s2.Width), Height: max(s.Height, s2.Height)}
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

// Position returns the top left corner of r.
func (r Rectangle) Position() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns r's width and height.
func (r Rectangle) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Center returns the center point of r.
func (r Rectangle) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p lies inside r. Points on any edge,
// including the right and bottom ones, are inside.
func (r Rectangle) Contains(p Point) bool {
	return r.X <= p.X && p.X <= r.X+r.Width &&
		r.Y <= p.Y && p.Y <= r.Y+r.Height
}

// Translate offsets r with the vector v.
func (r Rectangle) Translate(v Vector) Rectangle {
	r.X += v.X
	r.Y += v.Y
	return r
}

// Intersect returns the intersection of r and s, and whether it
// is non-empty.
func (r Rectangle) Intersect(s Rectangle) (Rectangle, bool) {
	x := max(r.X, s.X)
	y := max(r.Y, s.Y)
	lr := min(r.X+r.Width, s.X+s.Width)
	bt := min(r.Y+r.Height, s.Y+s.Height)
	if lr <= x || bt <= y {
		return Rectangle{}, false
	}
	return Rectangle{X: x, Y: y, Width: lr - x, Height: bt - y}, true
}

// Union returns the smallest rectangle containing r and s.
func (r Rectangle) Union(s Rectangle) Rectangle {
	x := min(r.X, s.X)
	y := min(r.Y, s.Y)
	lr := max(r.X+r.Width, s.X+s.Width)
	bt := max(r.Y+r.Height, s.Y+s.Height)
	return Rectangle{X: x, Y: y, Width: lr - x, Height: bt - y}
}

// Empty reports whether r represents the empty area.
func (r Rectangle) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Expand grows r by d on every side.
func (r Rectangle) Expand(d float32) Rectangle {
	return Rectangle{X: r.X - d, Y: r.Y - d, Width: r.Width + 2*d, Height: r.Height + 2*d}
}

func (r Rectangle) String() string {
	return fmt.Sprintf("%v-%v", r.Position(), r.Size())
}
