// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"latticeui.org/f32"
	"latticeui.org/layout"
	"latticeui.org/op"
	"latticeui.org/render"
)

// DefaultProgressBarHeight is the height of a ProgressBar without an
// explicit height.
const DefaultProgressBarHeight = 30

type ProgressBarStyle struct {
	Background   color.NRGBA
	Bar          color.NRGBA
	BorderRadius float32
}

// ProgressBar shows the position of a value in a range.
//
// Its layout depends on its width and height.
type ProgressBar struct {
	lo, hi, value float32
	width, height layout.Length
	style         ProgressBarStyle
}

// NewProgressBar returns a bar for value in [lo, hi]. Values outside
// the range are clamped into it.
func NewProgressBar(lo, hi, value float32, style ProgressBarStyle) *ProgressBar {
	return &ProgressBar{
		lo:     lo,
		hi:     hi,
		value:  max(min(value, hi), lo),
		width:  layout.Fill,
		height: layout.Units(DefaultProgressBarHeight),
		style:  style,
	}
}

func (p *ProgressBar) WithWidth(w layout.Length) *ProgressBar {
	p.width = w
	return p
}

func (p *ProgressBar) WithHeight(h layout.Length) *ProgressBar {
	p.height = h
	return p
}

// Value returns the clamped value.
func (p *ProgressBar) Value() float32 {
	return p.value
}

func (p *ProgressBar) Width() layout.Length  { return p.width }
func (p *ProgressBar) Height() layout.Length { return p.height }

func (p *ProgressBar) Layout(_ render.Renderer, l layout.Limits) layout.Node {
	return layout.NewNode(l.Width(p.width).Height(p.height).Resolve(f32.Size{}))
}

func (p *ProgressBar) Draw(r render.Renderer, _ render.Defaults, l layout.Layout, _ f32.Point, _ f32.Rectangle) {
	bounds := l.Bounds()
	r.Fill(op.Quad{
		Bounds:       bounds,
		Background:   p.style.Background,
		BorderRadius: p.style.BorderRadius,
	})
	var active float32
	if p.hi > p.lo {
		active = bounds.Width * (p.value - p.lo) / (p.hi - p.lo)
	}
	if active <= 0 {
		return
	}
	bar := bounds
	bar.Width = active
	r.Fill(op.Quad{
		Bounds:       bar,
		Background:   p.style.Bar,
		BorderRadius: p.style.BorderRadius,
	})
}

func (p *ProgressBar) HashLayout(h *layout.Hasher) {
	h.WriteKind("progress_bar")
	h.WriteLength(p.width)
	h.WriteLength(p.height)
}
