// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"

	"latticeui.org/f32"
)

// Length is the sizing policy of a widget along one axis.
type Length struct {
	kind  lengthKind
	value uint16
}

type lengthKind uint8

const (
	shrink lengthKind = iota
	fill
	fillPortion
	units
)

var (
	// Shrink sizes a widget to its content.
	Shrink = Length{kind: shrink}
	// Fill makes a widget take all the space available to it.
	Fill = Length{kind: fill}
)

// FillPortion makes a widget take a share of the available space
// relative to its siblings. Fill is equivalent to FillPortion(1).
func FillPortion(n uint16) Length {
	return Length{kind: fillPortion, value: n}
}

// Units is a fixed length.
func Units(n uint16) Length {
	return Length{kind: units, value: n}
}

// FillFactor returns the weight of l when distributing leftover
// space. Non-filling lengths have weight 0.
func (l Length) FillFactor() uint16 {
	switch l.kind {
	case fill:
		return 1
	case fillPortion:
		return l.value
	default:
		return 0
	}
}

// IsFill reports whether l claims leftover space.
func (l Length) IsFill() bool {
	return l.FillFactor() != 0
}

// UnitsValue returns the fixed length and true if l is a Units
// length.
func (l Length) UnitsValue() (uint16, bool) {
	return l.value, l.kind == units
}

func (l Length) String() string {
	switch l.kind {
	case shrink:
		return "Shrink"
	case fill:
		return "Fill"
	case fillPortion:
		return fmt.Sprintf("FillPortion(%d)", l.value)
	case units:
		return fmt.Sprintf("Units(%d)", l.value)
	default:
		panic("unreachable")
	}
}

// Padding is the space between the edges of a widget and its
// content.
type Padding struct {
	Top, Right, Bottom, Left uint16
}

// UniformPadding returns a Padding with p on all edges.
func UniformPadding(p uint16) Padding {
	return Padding{Top: p, Right: p, Bottom: p, Left: p}
}

// Pad2 returns a Padding with v on the top and bottom edges and h on
// the left and right edges.
func Pad2(v, h uint16) Padding {
	return Padding{Top: v, Right: h, Bottom: v, Left: h}
}

// Horizontal returns the total horizontal padding.
func (p Padding) Horizontal() float32 {
	return float32(p.Left) + float32(p.Right)
}

// Vertical returns the total vertical padding.
func (p Padding) Vertical() float32 {
	return float32(p.Top) + float32(p.Bottom)
}

// Size returns the total padding on both axes.
func (p Padding) Size() f32.Size {
	return f32.Size{Width: p.Horizontal(), Height: p.Vertical()}
}

// PadSize returns sz grown by p.
func PadSize(sz f32.Size, p Padding) f32.Size {
	return sz.Add(p.Size())
}

// Alignment is the placement of a widget inside extra space on one
// axis.
type Alignment uint8

const (
	Start Alignment = iota
	Center
	End
	// Stretch resizes the widget to the extra space.
	Stretch
)

func (a Alignment) String() string {
	switch a {
	case Start:
		return "Start"
	case Center:
		return "Center"
	case End:
		return "End"
	case Stretch:
		return "Stretch"
	default:
		panic("unreachable")
	}
}

// Axis is the Horizontal or Vertical direction.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// Main returns the length of sz along a.
func (a Axis) Main(sz f32.Size) float32 {
	if a == Horizontal {
		return sz.Width
	}
	return sz.Height
}

// Cross returns the length of sz across a.
func (a Axis) Cross(sz f32.Size) float32 {
	if a == Horizontal {
		return sz.Height
	}
	return sz.Width
}

// Pack converts main and cross axis lengths to width and height.
func (a Axis) Pack(main, cross float32) (float32, float32) {
	if a == Horizontal {
		return main, cross
	}
	return cross, main
}

// Size converts main and cross axis lengths to a Size.
func (a Axis) Size(main, cross float32) f32.Size {
	w, h := a.Pack(main, cross)
	return f32.Size{Width: w, Height: h}
}

// Lengths returns the main and cross axis policies of a widget with
// the given width and height.
func (a Axis) Lengths(width, height Length) (main, cross Length) {
	if a == Horizontal {
		return width, height
	}
	return height, width
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}
