// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"latticeui.org/f32"
	"latticeui.org/layout"
	"latticeui.org/render"
)

// Space is an empty widget occupying space.
//
// Its layout depends on its width and height.
type Space struct {
	width, height layout.Length
}

func NewSpace(width, height layout.Length) *Space {
	return &Space{width: width, height: height}
}

// HorizontalSpace fills width and shrinks vertically.
func HorizontalSpace(width layout.Length) *Space {
	return NewSpace(width, layout.Shrink)
}

// VerticalSpace fills height and shrinks horizontally.
func VerticalSpace(height layout.Length) *Space {
	return NewSpace(layout.Shrink, height)
}

func (s *Space) Width() layout.Length  { return s.width }
func (s *Space) Height() layout.Length { return s.height }

func (s *Space) Layout(_ render.Renderer, l layout.Limits) layout.Node {
	return layout.NewNode(l.Width(s.width).Height(s.height).Resolve(f32.Size{}))
}

func (s *Space) Draw(render.Renderer, render.Defaults, layout.Layout, f32.Point, f32.Rectangle) {}

func (s *Space) HashLayout(h *layout.Hasher) {
	h.WriteKind("space")
	h.WriteLength(s.width)
	h.WriteLength(s.height)
}
