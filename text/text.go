// SPDX-License-Identifier: Unlicense OR MIT

// Package text measures and breaks text into lines using a
// collection of font faces.
package text

import (
	"latticeui.org/f32"
)

// A Line is a single laid out line of text.
type Line struct {
	Text string
	// Width is the advance of the line.
	Width float32
}

// A Layout contains the measurements of a body of text as
// a list of Lines.
type Layout struct {
	Lines []Line
	// Ascent is the height above the baseline of a line.
	Ascent float32
	// LineHeight is the distance between consecutive baselines.
	LineHeight float32
}

// Size returns the width of the widest line and the total height
// of the lines.
func (l Layout) Size() f32.Size {
	var w float32
	for _, line := range l.Lines {
		w = max(w, line.Width)
	}
	return f32.Sz(w, l.LineHeight*float32(len(l.Lines)))
}
