// SPDX-License-Identifier: Unlicense OR MIT

package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"latticeui.org/f32"
	"latticeui.org/font/gofont"
	"latticeui.org/layout"
	"latticeui.org/op"
	"latticeui.org/text"
)

var (
	red  = color.NRGBA{R: 0xff, A: 0xff}
	blue = color.NRGBA{B: 0xff, A: 0xff}
)

func frame(prims ...op.Primitive) *op.Ops {
	var ops op.Ops
	for _, p := range prims {
		ops.Add(p)
	}
	return &ops
}

func TestQuad(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	New(nil).Frame(frame(op.Quad{
		Bounds:     f32.Rectangle{X: 2, Y: 2, Width: 4, Height: 4},
		Background: red,
	}), img)
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, img.RGBAAt(2, 2))
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, img.RGBAAt(5, 5))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(6, 6))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(1, 2))
}

func TestRoundedQuad(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	New(nil).Frame(frame(op.Quad{
		Bounds:       f32.Rectangle{Width: 40, Height: 40},
		Background:   red,
		BorderRadius: 20,
	}), img)
	assert.Equal(t, color.RGBA{}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, img.RGBAAt(20, 20))
}

func TestBorder(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	New(nil).Frame(frame(op.Quad{
		Bounds:      f32.Rectangle{Width: 10, Height: 10},
		Background:  red,
		BorderWidth: 2,
		BorderColor: blue,
	}), img)
	assert.Equal(t, color.RGBA{B: 0xff, A: 0xff}, img.RGBAAt(1, 1))
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, img.RGBAAt(5, 5))
}

func TestLaterPrimitivesOnTop(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	New(nil).Frame(frame(
		op.Quad{Bounds: f32.Rectangle{Width: 10, Height: 10}, Background: red},
		op.Quad{Bounds: f32.Rectangle{Width: 5, Height: 10}, Background: blue},
	), img)
	assert.Equal(t, color.RGBA{B: 0xff, A: 0xff}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, img.RGBAAt(9, 0))
}

func TestClip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	var inner op.Ops
	inner.Add(op.Quad{Bounds: f32.Rectangle{Width: 10, Height: 10}, Background: red})
	New(nil).Frame(frame(op.Clip{
		Bounds: f32.Rectangle{X: 5, Width: 5, Height: 5},
		Ops:    inner,
	}), img)
	assert.Equal(t, color.RGBA{}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, img.RGBAAt(7, 2))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(7, 7))
}

func TestText(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 40))
	r := New(text.NewShaper(gofont.Regular()))
	r.Frame(frame(op.Text{
		Content: "Hello",
		Bounds:  f32.Rectangle{Width: 100, Height: 40},
		Color:   red,
		Size:    20,
		HAlign:  layout.Center,
		VAlign:  layout.Center,
	}), img)
	inked := 0
	for y := 0; y < 40; y++ {
		for x := 0; x < 100; x++ {
			if img.RGBAAt(x, y).A != 0 {
				inked++
			}
		}
	}
	assert.Greater(t, inked, 0)
	// Centered: the left edge stays blank.
	for y := 0; y < 40; y++ {
		assert.Equal(t, uint8(0), img.RGBAAt(0, y).A)
	}
}

func TestOffscreenQuad(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	assert.NotPanics(t, func() {
		New(nil).Frame(frame(op.Quad{
			Bounds:       f32.Rectangle{X: -50, Y: 20, Width: layout.Inf, Height: 5},
			Background:   red,
			BorderRadius: 3,
		}), img)
	})
	assert.Equal(t, color.RGBA{}, img.RGBAAt(5, 5))
}
