// SPDX-License-Identifier: Unlicense OR MIT

/*
Package raster implements a software rasterizer for primitive lists.

Quads with rounded corners are filled with the anti-aliasing vector
rasterizer of golang.org/x/image/vector; text is drawn with the glyphs
of the faces of a text.Shaper.
*/
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"latticeui.org/f32"
	"latticeui.org/layout"
	"latticeui.org/op"
	"latticeui.org/text"
)

// Rasterizer draws primitive lists onto images.
type Rasterizer struct {
	shaper *text.Shaper
	vr     vector.Rasterizer
}

// New returns a Rasterizer drawing text with the faces of s. A nil
// shaper draws no text.
func New(s *text.Shaper) *Rasterizer {
	return &Rasterizer{shaper: s}
}

// Frame draws the primitives of frame onto frameBuf, in order.
func (r *Rasterizer) Frame(frame *op.Ops, frameBuf *image.RGBA) {
	if frame == nil {
		return
	}
	r.draw(frame.List(), frameBuf, frameBuf.Bounds())
}

func (r *Rasterizer) draw(list []op.Primitive, dst *image.RGBA, clip image.Rectangle) {
	for _, p := range list {
		switch p := p.(type) {
		case op.Quad:
			r.quad(p, dst, clip)
		case op.Text:
			r.text(p, dst, clip)
		case op.Clip:
			bounds := pixelBounds(p.Bounds).Intersect(clip)
			if bounds.Empty() {
				break
			}
			r.draw(p.Ops.List(), dst, bounds)
		}
	}
}

func (r *Rasterizer) quad(q op.Quad, dst *image.RGBA, clip image.Rectangle) {
	b := q.Bounds
	if q.BorderWidth > 0 && q.BorderColor.A != 0 {
		r.fill(dst, clip, b, q.BorderRadius, q.BorderColor)
		bw := min(q.BorderWidth, b.Width/2, b.Height/2)
		b = b.Expand(-bw)
		r.fill(dst, clip, b, max(q.BorderRadius-bw, 0), q.Background)
		return
	}
	r.fill(dst, clip, b, q.BorderRadius, q.Background)
}

// fill paints the rectangle b with corners of radius onto dst, within
// clip.
func (r *Rasterizer) fill(dst *image.RGBA, clip image.Rectangle, b f32.Rectangle, radius float32, col color.NRGBA) {
	if col.A == 0 || b.Empty() {
		return
	}
	src := image.NewUniform(col)
	radius = min(radius, b.Width/2, b.Height/2)
	if radius <= 0 {
		draw.Draw(dst, pixelBounds(b).Intersect(clip), src, image.Point{}, draw.Over)
		return
	}
	area := pixelBounds(b).Intersect(clip)
	if area.Empty() {
		return
	}
	// Corners outside area are not visible; cut unbounded edges off.
	pad := radius + 1
	b, _ = b.Intersect(f32.Rectangle{
		X:      float32(area.Min.X) - pad,
		Y:      float32(area.Min.Y) - pad,
		Width:  float32(area.Dx()) + 2*pad,
		Height: float32(area.Dy()) + 2*pad,
	})
	vr := &r.vr
	vr.Reset(area.Dx(), area.Dy())
	vr.DrawOp = draw.Over
	off := f32.Vector{X: -float32(area.Min.X), Y: -float32(area.Min.Y)}
	roundedRect(vr, b.Translate(off), radius)
	vr.Draw(dst, area, src, image.Point{})
}

// roundedRect adds the outline of b with circular corners of radius
// to vr.
func roundedRect(vr *vector.Rasterizer, b f32.Rectangle, radius float32) {
	// Control point distance of a cubic approximating a quarter circle.
	const k = 0.5522848
	c := radius * (1 - k)
	x0, y0 := b.X, b.Y
	x1, y1 := b.X+b.Width, b.Y+b.Height
	vr.MoveTo(x0+radius, y0)
	vr.LineTo(x1-radius, y0)
	vr.CubeTo(x1-c, y0, x1, y0+c, x1, y0+radius)
	vr.LineTo(x1, y1-radius)
	vr.CubeTo(x1, y1-c, x1-c, y1, x1-radius, y1)
	vr.LineTo(x0+radius, y1)
	vr.CubeTo(x0+c, y1, x0, y1-c, x0, y1-radius)
	vr.LineTo(x0, y0+radius)
	vr.CubeTo(x0, y0+c, x0+c, y0, x0+radius, y0)
	vr.ClosePath()
}

func (r *Rasterizer) text(t op.Text, dst *image.RGBA, clip image.Rectangle) {
	if r.shaper == nil || t.Color.A == 0 {
		return
	}
	face := r.shaper.Face(t.Font, t.Size)
	if face == nil {
		return
	}
	area := pixelBounds(t.Bounds).Intersect(clip)
	if area.Empty() {
		return
	}
	l := r.shaper.Layout(t.Font, t.Size, t.Content, t.Bounds.Width)
	sz := l.Size()
	y := t.Bounds.Y + align(t.VAlign, t.Bounds.Height-sz.Height)
	d := xfont.Drawer{
		Dst:  dst.SubImage(area).(*image.RGBA),
		Src:  image.NewUniform(t.Color),
		Face: face,
	}
	for _, line := range l.Lines {
		x := t.Bounds.X + align(t.HAlign, t.Bounds.Width-line.Width)
		d.Dot = fixed.Point26_6{
			X: fixed.Int26_6(x * 64),
			Y: fixed.Int26_6((y + l.Ascent) * 64),
		}
		d.DrawString(line.Text)
		y += l.LineHeight
	}
}

// align returns the offset of content in a space extra units larger
// than it.
func align(a layout.Alignment, extra float32) float32 {
	switch a {
	case layout.Center:
		return extra / 2
	case layout.End:
		return extra
	default:
		return 0
	}
}

// pixelBounds returns the pixels covered by r. Unbounded edges are
// saturated.
func pixelBounds(r f32.Rectangle) image.Rectangle {
	return image.Rect(
		toPixel(math.Floor(float64(r.X))),
		toPixel(math.Floor(float64(r.Y))),
		toPixel(math.Ceil(float64(r.X+r.Width))),
		toPixel(math.Ceil(float64(r.Y+r.Height))),
	)
}

func toPixel(v float64) int {
	const limit = 1 << 30
	return int(max(min(v, limit), -limit))
}
