// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"math"

	"latticeui.org/f32"
	"latticeui.org/io/clipboard"
	"latticeui.org/io/event"
	"latticeui.org/layout"
	"latticeui.org/render"
	"latticeui.org/widget/overlay"
)

// flexBox is the implementation shared by Row and Column.
type flexBox[M any] struct {
	kind       string
	axis       layout.Axis
	spacing    uint16
	padding    layout.Padding
	width      layout.Length
	height     layout.Length
	maxWidth   uint32
	maxHeight  uint32
	alignItems layout.Alignment
	children   []Element[M]
}

func newFlexBox[M any](kind string, axis layout.Axis, children []Element[M]) flexBox[M] {
	return flexBox[M]{
		kind:       kind,
		axis:       axis,
		width:      layout.Shrink,
		height:     layout.Shrink,
		maxWidth:   math.MaxUint32,
		maxHeight:  math.MaxUint32,
		alignItems: layout.Start,
		children:   children,
	}
}

func (b *flexBox[M]) Width() layout.Length  { return b.width }
func (b *flexBox[M]) Height() layout.Length { return b.height }

// Children returns the children in order.
func (b *flexBox[M]) Children() []Element[M] {
	return b.children
}

func (b *flexBox[M]) Layout(r render.Renderer, l layout.Limits) layout.Node {
	l = l.MaxWidth(b.maxWidth).
		MaxHeight(b.maxHeight).
		Width(b.width).
		Height(b.height)
	f := layout.Flex{
		Axis:    b.axis,
		Padding: b.padding,
		Spacing: float32(b.spacing),
		Align:   b.alignItems,
	}
	return layout.Resolve(f, r, l, b.children)
}

func (b *flexBox[M]) Event(e event.Event, l layout.Layout, cursor f32.Point, r render.Renderer, c clipboard.Clipboard, msgs *[]M) event.Status {
	return DispatchEvent(b.children, e, l, cursor, r, c, msgs)
}

func (b *flexBox[M]) Draw(r render.Renderer, d render.Defaults, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) {
	DrawChildren(b.children, r, d, l, cursor, viewport)
}

func (b *flexBox[M]) HashLayout(h *layout.Hasher) {
	h.WriteKind(b.kind)
	h.WriteLength(b.width)
	h.WriteLength(b.height)
	h.WriteUint32(b.maxWidth)
	h.WriteUint32(b.maxHeight)
	h.WriteAlignment(b.alignItems)
	h.WriteUint16(b.spacing)
	h.WritePadding(b.padding)
	for _, c := range b.children {
		c.HashLayout(h)
	}
}

func (b *flexBox[M]) Overlay(l layout.Layout) (overlay.Element[M], bool) {
	return FirstOverlay(b.children, l)
}

// Row distributes its children horizontally.
//
// Its layout depends on its width, height, maximum width and height,
// item alignment, spacing, padding and children.
type Row[M any] struct {
	flexBox[M]
}

func NewRow[M any](children ...Element[M]) *Row[M] {
	return &Row[M]{newFlexBox("row", layout.Horizontal, children)}
}

// Push appends a child.
func (r *Row[M]) Push(child Element[M]) *Row[M] {
	r.children = append(r.children, child)
	return r
}

// WithSpacing sets the horizontal space between children.
func (r *Row[M]) WithSpacing(spacing uint16) *Row[M] {
	r.spacing = spacing
	return r
}

func (r *Row[M]) WithPadding(p layout.Padding) *Row[M] {
	r.padding = p
	return r
}

func (r *Row[M]) WithWidth(w layout.Length) *Row[M] {
	r.width = w
	return r
}

func (r *Row[M]) WithHeight(h layout.Length) *Row[M] {
	r.height = h
	return r
}

func (r *Row[M]) WithMaxWidth(w uint32) *Row[M] {
	r.maxWidth = w
	return r
}

func (r *Row[M]) WithMaxHeight(h uint32) *Row[M] {
	r.maxHeight = h
	return r
}

// WithAlignItems sets the vertical alignment of the children.
func (r *Row[M]) WithAlignItems(a layout.Alignment) *Row[M] {
	r.alignItems = a
	return r
}

// Column distributes its children vertically.
//
// Its layout depends on the same fields as Row.
type Column[M any] struct {
	flexBox[M]
}

func NewColumn[M any](children ...Element[M]) *Column[M] {
	return &Column[M]{newFlexBox("column", layout.Vertical, children)}
}

// Push appends a child.
func (c *Column[M]) Push(child Element[M]) *Column[M] {
	c.children = append(c.children, child)
	return c
}

// WithSpacing sets the vertical space between children.
func (c *Column[M]) WithSpacing(spacing uint16) *Column[M] {
	c.spacing = spacing
	return c
}

func (c *Column[M]) WithPadding(p layout.Padding) *Column[M] {
	c.padding = p
	return c
}

func (c *Column[M]) WithWidth(w layout.Length) *Column[M] {
	c.width = w
	return c
}

func (c *Column[M]) WithHeight(h layout.Length) *Column[M] {
	c.height = h
	return c
}

func (c *Column[M]) WithMaxWidth(w uint32) *Column[M] {
	c.maxWidth = w
	return c
}

func (c *Column[M]) WithMaxHeight(h uint32) *Column[M] {
	c.maxHeight = h
	return c
}

// WithAlignItems sets the horizontal alignment of the children.
func (c *Column[M]) WithAlignItems(a layout.Alignment) *Column[M] {
	c.alignItems = a
	return c
}
