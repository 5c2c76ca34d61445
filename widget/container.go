// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"
	"math"

	"latticeui.org/f32"
	"latticeui.org/io/clipboard"
	"latticeui.org/io/event"
	"latticeui.org/layout"
	"latticeui.org/op"
	"latticeui.org/render"
	"latticeui.org/widget/overlay"
)

// ContainerStyle is the background and border of a Container. The zero
// value draws nothing.
type ContainerStyle struct {
	// Text overrides the text color inherited by the content.
	Text         *color.NRGBA
	Background   color.NRGBA
	BorderRadius float32
	BorderWidth  float32
	BorderColor  color.NRGBA
}

// Container positions a single child inside padding and aligns it.
//
// Its layout depends on its padding, width, height, maximum width and
// height, alignment and content.
type Container[M any] struct {
	padding   layout.Padding
	width     layout.Length
	height    layout.Length
	maxWidth  uint32
	maxHeight uint32
	halign    layout.Alignment
	valign    layout.Alignment
	style     ContainerStyle
	content   Element[M]
}

func NewContainer[M any](content Element[M]) *Container[M] {
	return &Container[M]{
		width:     layout.Shrink,
		height:    layout.Shrink,
		maxWidth:  math.MaxUint32,
		maxHeight: math.MaxUint32,
		halign:    layout.Start,
		valign:    layout.Start,
		content:   content,
	}
}

func (c *Container[M]) WithPadding(p layout.Padding) *Container[M] {
	c.padding = p
	return c
}

func (c *Container[M]) WithWidth(w layout.Length) *Container[M] {
	c.width = w
	return c
}

func (c *Container[M]) WithHeight(h layout.Length) *Container[M] {
	c.height = h
	return c
}

func (c *Container[M]) WithMaxWidth(w uint32) *Container[M] {
	c.maxWidth = w
	return c
}

func (c *Container[M]) WithMaxHeight(h uint32) *Container[M] {
	c.maxHeight = h
	return c
}

// WithAlignment aligns the content inside the container.
func (c *Container[M]) WithAlignment(h, v layout.Alignment) *Container[M] {
	c.halign, c.valign = h, v
	return c
}

// CenterX centers the content horizontally.
func (c *Container[M]) CenterX() *Container[M] {
	c.halign = layout.Center
	return c
}

// CenterY centers the content vertically.
func (c *Container[M]) CenterY() *Container[M] {
	c.valign = layout.Center
	return c
}

func (c *Container[M]) WithStyle(s ContainerStyle) *Container[M] {
	c.style = s
	return c
}

func (c *Container[M]) Width() layout.Length  { return c.width }
func (c *Container[M]) Height() layout.Length { return c.height }

func (c *Container[M]) Layout(r render.Renderer, l layout.Limits) layout.Node {
	inner := l.Loose().
		MaxWidth(c.maxWidth).
		MaxHeight(c.maxHeight).
		Width(c.width).
		Height(c.height).
		Pad(c.padding)
	content := c.content.Layout(r, inner.Loose())
	size := inner.Resolve(content.Size())
	content.MoveTo(f32.Pt(float32(c.padding.Left), float32(c.padding.Top)))
	content.Align(c.halign, c.valign, size)
	outer := l.Clamp(layout.PadSize(size, c.padding))
	return layout.WithChildren(outer, []layout.Node{content})
}

func (c *Container[M]) Event(e event.Event, l layout.Layout, cursor f32.Point, r render.Renderer, cb clipboard.Clipboard, msgs *[]M) event.Status {
	l.MustHaveChildren(1)
	return c.content.Event(e, l.Child(0), cursor, r, cb, msgs)
}

func (c *Container[M]) Draw(r render.Renderer, d render.Defaults, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) {
	l.MustHaveChildren(1)
	s := c.style
	if s.Background.A != 0 || (s.BorderWidth > 0 && s.BorderColor.A != 0) {
		r.Fill(op.Quad{
			Bounds:       l.Bounds(),
			Background:   s.Background,
			BorderRadius: s.BorderRadius,
			BorderWidth:  s.BorderWidth,
			BorderColor:  s.BorderColor,
		})
	}
	if s.Text != nil {
		d.Text.Color = *s.Text
	}
	c.content.Draw(r, d, l.Child(0), cursor, viewport)
}

func (c *Container[M]) HashLayout(h *layout.Hasher) {
	h.WriteKind("container")
	h.WritePadding(c.padding)
	h.WriteLength(c.width)
	h.WriteLength(c.height)
	h.WriteUint32(c.maxWidth)
	h.WriteUint32(c.maxHeight)
	h.WriteAlignment(c.halign)
	h.WriteAlignment(c.valign)
	c.content.HashLayout(h)
}

func (c *Container[M]) Overlay(l layout.Layout) (overlay.Element[M], bool) {
	l.MustHaveChildren(1)
	return c.content.Overlay(l.Child(0))
}
