// SPDX-License-Identifier: Unlicense OR MIT

// Package render defines the renderer widgets measure text with and
// emit drawing primitives to.
package render

import (
	"image/color"

	"golang.org/x/image/colornames"

	"latticeui.org/f32"
	"latticeui.org/font"
	"latticeui.org/op"
	"latticeui.org/text"
)

// Renderer is the backend a widget tree is laid out and drawn with.
type Renderer interface {
	// DefaultSize is the text size used when a widget leaves it
	// unspecified.
	DefaultSize() uint16
	// Measure returns the size of content laid out within bounds.
	Measure(content string, size uint16, fnt font.Font, bounds f32.Size) f32.Size
	// Fill emits a primitive. Primitives emitted later are drawn on
	// top of earlier ones.
	Fill(p op.Primitive)
}

// Defaults are the inherited style values passed down while drawing.
type Defaults struct {
	Text TextDefaults
}

type TextDefaults struct {
	Color color.NRGBA
}

// DefaultDefaults draws text black.
var DefaultDefaults = Defaults{
	Text: TextDefaults{Color: NRGBA(colornames.Black)},
}

// Clip draws the primitives emitted by draw restricted to bounds.
func Clip(r Renderer, bounds f32.Rectangle, draw func(r Renderer)) {
	rec := &recorder{Renderer: r}
	draw(rec)
	r.Fill(op.Clip{Bounds: bounds, Ops: rec.ops})
}

type recorder struct {
	Renderer
	ops op.Ops
}

func (r *recorder) Fill(p op.Primitive) {
	r.ops.Add(p)
}

// Canvas is a Renderer recording primitives into an op list and
// measuring text with a text.Shaper.
type Canvas struct {
	Ops    op.Ops
	shaper *text.Shaper
	size   uint16
}

// NewCanvas returns a Canvas measuring with s. Text without an
// explicit size uses textSize.
func NewCanvas(s *text.Shaper, textSize uint16) *Canvas {
	return &Canvas{shaper: s, size: textSize}
}

func (c *Canvas) DefaultSize() uint16 {
	return c.size
}

func (c *Canvas) Measure(content string, size uint16, fnt font.Font, bounds f32.Size) f32.Size {
	return c.shaper.Measure(content, float32(size), fnt, bounds)
}

func (c *Canvas) Fill(p op.Primitive) {
	c.Ops.Add(p)
}

// Shaper returns the shaper c measures with.
func (c *Canvas) Shaper() *text.Shaper {
	return c.shaper
}

// NRGBA converts a color from the colornames palette.
func NRGBA(c color.RGBA) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// RGB returns an opaque color from its 0xRRGGBB value.
func RGB(c uint32) color.NRGBA {
	return ARGB(0xff000000 | c)
}

// ARGB returns a color from its 0xAARRGGBB value.
func ARGB(c uint32) color.NRGBA {
	return color.NRGBA{A: uint8(c >> 24), R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}
