// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"latticeui.org/f32"
	"latticeui.org/font"
	"latticeui.org/layout"
	"latticeui.org/op"
	"latticeui.org/render"
)

// Text is a label.
//
// Its layout depends on its content, size, font, width and height.
type Text struct {
	content       string
	size          uint16
	font          font.Font
	width, height layout.Length
	color         *color.NRGBA
	halign        layout.Alignment
	valign        layout.Alignment
}

func NewText(content string) *Text {
	return &Text{content: content, width: layout.Shrink, height: layout.Shrink}
}

// WithSize sets the text size. Zero means the renderer default.
func (t *Text) WithSize(size uint16) *Text {
	t.size = size
	return t
}

func (t *Text) WithFont(f font.Font) *Text {
	t.font = f
	return t
}

func (t *Text) WithWidth(w layout.Length) *Text {
	t.width = w
	return t
}

func (t *Text) WithHeight(h layout.Length) *Text {
	t.height = h
	return t
}

// WithColor overrides the inherited text color.
func (t *Text) WithColor(c color.NRGBA) *Text {
	t.color = &c
	return t
}

// WithAlignment positions the text inside its bounds.
func (t *Text) WithAlignment(h, v layout.Alignment) *Text {
	t.halign, t.valign = h, v
	return t
}

func (t *Text) Width() layout.Length  { return t.width }
func (t *Text) Height() layout.Length { return t.height }

func (t *Text) textSize(r render.Renderer) uint16 {
	if t.size != 0 {
		return t.size
	}
	return r.DefaultSize()
}

func (t *Text) Layout(r render.Renderer, l layout.Limits) layout.Node {
	l = l.Width(t.width).Height(t.height)
	sz := r.Measure(t.content, t.textSize(r), t.font, l.Max())
	return layout.NewNode(l.Resolve(sz))
}

func (t *Text) Draw(r render.Renderer, d render.Defaults, l layout.Layout, _ f32.Point, _ f32.Rectangle) {
	fg := d.Text.Color
	if t.color != nil {
		fg = *t.color
	}
	r.Fill(op.Text{
		Content: t.content,
		Bounds:  l.Bounds(),
		Color:   fg,
		Size:    float32(t.textSize(r)),
		Font:    t.font,
		HAlign:  t.halign,
		VAlign:  t.valign,
	})
}

func (t *Text) HashLayout(h *layout.Hasher) {
	h.WriteKind("text")
	h.WriteString(t.content)
	h.WriteUint16(t.size)
	writeFont(h, t.font)
	h.WriteLength(t.width)
	h.WriteLength(t.height)
}

func writeFont(h *layout.Hasher, f font.Font) {
	h.WriteString(string(f.Typeface))
	h.WriteString(string(f.Variant))
	h.WriteUint32(uint32(f.Style))
	h.WriteUint32(uint32(f.Weight))
}
