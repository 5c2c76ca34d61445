// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"latticeui.org/f32"
)

// Limits is the window of acceptable sizes handed to a widget
// during layout. Every operation returns a new Limits; the receiver
// is never modified.
//
// The fill size is the size a widget resolves to when it wants to
// take as much space as its Length allows. It always lies between
// min and max.
type Limits struct {
	min, max, fill f32.Size
}

// Inf is the unbounded length.
var Inf = float32(math.Inf(1))

// NoLimits imposes no constraint at all.
var NoLimits = Limits{max: f32.Size{Width: Inf, Height: Inf}}

// NewLimits returns the Limits between min and max. A max smaller
// than min is raised to min.
func NewLimits(min, max f32.Size) Limits {
	max = max.Max(min)
	return Limits{min: min, max: max, fill: min}
}

// RigidLimits returns the Limits that can only be satisfied by sz.
func RigidLimits(sz f32.Size) Limits {
	return Limits{min: sz, max: sz, fill: sz}
}

// Min returns the minimum size.
func (l Limits) Min() f32.Size { return l.min }

// Max returns the maximum size.
func (l Limits) Max() f32.Size { return l.max }

// Fill returns the fill size.
func (l Limits) Fill() f32.Size { return l.fill }

// Width applies the horizontal sizing policy w.
func (l Limits) Width(w Length) Limits {
	l.min.Width, l.max.Width, l.fill.Width = applyLength(w, l.min.Width, l.max.Width)
	return l
}

// Height applies the vertical sizing policy h.
func (l Limits) Height(h Length) Limits {
	l.min.Height, l.max.Height, l.fill.Height = applyLength(h, l.min.Height, l.max.Height)
	return l
}

// applyLength returns the minimum, maximum and fill lengths of the
// window [lo, hi] under length.
func applyLength(length Length, lo, hi float32) (float32, float32, float32) {
	switch length.kind {
	case shrink:
		return lo, hi, lo
	case fill, fillPortion:
		return lo, hi, hi
	case units:
		v := clamp(float32(length.value), lo, hi)
		return v, v, v
	default:
		panic("unreachable")
	}
}

// MaxWidth lowers the maximum width to w, never below the minimum.
func (l Limits) MaxWidth(w uint32) Limits {
	l.max.Width = max(l.min.Width, min(l.max.Width, float32(w)))
	l.fill.Width = min(l.fill.Width, l.max.Width)
	return l
}

// MaxHeight lowers the maximum height to h, never below the minimum.
func (l Limits) MaxHeight(h uint32) Limits {
	l.max.Height = max(l.min.Height, min(l.max.Height, float32(h)))
	l.fill.Height = min(l.fill.Height, l.max.Height)
	return l
}

// MinWidth raises the minimum width to w, never above the maximum.
func (l Limits) MinWidth(w uint32) Limits {
	l.min.Width = min(max(l.min.Width, float32(w)), l.max.Width)
	l.fill.Width = max(l.fill.Width, l.min.Width)
	return l
}

// MinHeight raises the minimum height to h, never above the maximum.
func (l Limits) MinHeight(h uint32) Limits {
	l.min.Height = min(max(l.min.Height, float32(h)), l.max.Height)
	l.fill.Height = max(l.fill.Height, l.min.Height)
	return l
}

// Pad shrinks the limits by the total padding on each axis.
func (l Limits) Pad(p Padding) Limits {
	return l.Shrink(p.Size())
}

// Shrink subtracts sz from every bound, saturating at zero.
func (l Limits) Shrink(sz f32.Size) Limits {
	return Limits{
		min:  l.min.Sub(sz),
		max:  l.max.Sub(sz),
		fill: l.fill.Sub(sz),
	}
}

// Loose removes the minimum size.
func (l Limits) Loose() Limits {
	return Limits{max: l.max}
}

// Resolve returns the size a widget with intrinsic content size sz
// occupies within l.
func (l Limits) Resolve(sz f32.Size) f32.Size {
	return f32.Size{
		Width:  clamp(max(min(sz.Width, l.max.Width), l.fill.Width), l.min.Width, l.max.Width),
		Height: clamp(max(min(sz.Height, l.max.Height), l.fill.Height), l.min.Height, l.max.Height),
	}
}

// Clamp returns sz clamped into the window of l.
func (l Limits) Clamp(sz f32.Size) f32.Size {
	return sz.Max(l.min).Min(l.max)
}

func (l Limits) String() string {
	return fmt.Sprintf("Limits{min: %v, max: %v, fill: %v}", l.min, l.max, l.fill)
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
