// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"latticeui.org/f32"
	"latticeui.org/font"
	"latticeui.org/io/clipboard"
	"latticeui.org/io/event"
	"latticeui.org/io/pointer"
	"latticeui.org/layout"
	"latticeui.org/op"
	"latticeui.org/render"
)

// CheckboxAppearance is the look of the box in one interaction state.
type CheckboxAppearance struct {
	Background   color.NRGBA
	Checkmark    color.NRGBA
	BorderRadius float32
	BorderWidth  float32
	BorderColor  color.NRGBA
}

type CheckboxStyle struct {
	Active  CheckboxAppearance
	Hovered CheckboxAppearance
}

// Checkbox is a box with a label that toggles when pressed.
//
// Its layout depends on its label, width, box size, spacing, text
// size and font.
type Checkbox[M any] struct {
	checked   bool
	label     string
	onToggle  func(bool) M
	width     layout.Length
	size      uint16
	spacing   uint16
	textSize  uint16
	font      font.Font
	textColor *color.NRGBA
	style     CheckboxStyle
}

// NewCheckbox returns a checkbox in state checked. Pressing it
// produces onToggle(!checked).
func NewCheckbox[M any](checked bool, label string, onToggle func(bool) M, style CheckboxStyle) *Checkbox[M] {
	return &Checkbox[M]{
		checked:  checked,
		label:    label,
		onToggle: onToggle,
		width:    layout.Shrink,
		size:     20,
		spacing:  15,
		style:    style,
	}
}

// WithSize sets the size of the box.
func (c *Checkbox[M]) WithSize(size uint16) *Checkbox[M] {
	c.size = size
	return c
}

func (c *Checkbox[M]) WithWidth(w layout.Length) *Checkbox[M] {
	c.width = w
	return c
}

// WithSpacing sets the space between the box and the label.
func (c *Checkbox[M]) WithSpacing(spacing uint16) *Checkbox[M] {
	c.spacing = spacing
	return c
}

func (c *Checkbox[M]) WithTextSize(size uint16) *Checkbox[M] {
	c.textSize = size
	return c
}

func (c *Checkbox[M]) WithFont(f font.Font) *Checkbox[M] {
	c.font = f
	return c
}

func (c *Checkbox[M]) WithTextColor(col color.NRGBA) *Checkbox[M] {
	c.textColor = &col
	return c
}

func (c *Checkbox[M]) Width() layout.Length  { return c.width }
func (c *Checkbox[M]) Height() layout.Length { return layout.Shrink }

func (c *Checkbox[M]) textSizeFor(r render.Renderer) uint16 {
	if c.textSize != 0 {
		return c.textSize
	}
	return r.DefaultSize()
}

func (c *Checkbox[M]) Layout(r render.Renderer, l layout.Limits) layout.Node {
	box := NewSpace(layout.Units(c.size), layout.Units(c.size))
	label := NewText(c.label).
		WithFont(c.font).
		WithWidth(c.width).
		WithSize(c.textSizeFor(r))
	f := layout.Flex{
		Axis:    layout.Horizontal,
		Spacing: float32(c.spacing),
		Align:   layout.Center,
	}
	return layout.Resolve(f, r, l.Width(c.width), []Leaf{box, label})
}

func (c *Checkbox[M]) Event(e event.Event, l layout.Layout, cursor f32.Point, _ render.Renderer, _ clipboard.Clipboard, msgs *[]M) event.Status {
	pe, ok := e.(pointer.Event)
	if !ok || !pe.IsPrimaryPress() {
		return event.Ignored
	}
	if !l.Bounds().Contains(cursor) {
		return event.Ignored
	}
	*msgs = append(*msgs, c.onToggle(!c.checked))
	return event.Captured
}

func (c *Checkbox[M]) Draw(r render.Renderer, d render.Defaults, l layout.Layout, cursor f32.Point, _ f32.Rectangle) {
	l.MustHaveChildren(2)
	box := l.Child(0).Bounds()
	label := l.Child(1).Bounds()

	a := c.style.Active
	if l.Bounds().Contains(cursor) {
		a = c.style.Hovered
	}
	r.Fill(op.Quad{
		Bounds:       box,
		Background:   a.Background,
		BorderRadius: a.BorderRadius,
		BorderWidth:  a.BorderWidth,
		BorderColor:  a.BorderColor,
	})
	if c.checked {
		inset := box.Width / 4
		r.Fill(op.Quad{
			Bounds:       box.Expand(-inset),
			Background:   a.Checkmark,
			BorderRadius: a.BorderRadius / 2,
		})
	}
	fg := d.Text.Color
	if c.textColor != nil {
		fg = *c.textColor
	}
	r.Fill(op.Text{
		Content: c.label,
		Bounds:  label,
		Color:   fg,
		Size:    float32(c.textSizeFor(r)),
		Font:    c.font,
		HAlign:  layout.Start,
		VAlign:  layout.Center,
	})
}

func (c *Checkbox[M]) HashLayout(h *layout.Hasher) {
	h.WriteKind("checkbox")
	h.WriteString(c.label)
	h.WriteLength(c.width)
	h.WriteUint16(c.size)
	h.WriteUint16(c.spacing)
	h.WriteUint16(c.textSize)
	writeFont(h, c.font)
}
