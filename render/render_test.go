// SPDX-License-Identifier: Unlicense OR MIT

package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"

	"latticeui.org/f32"
	"latticeui.org/font"
	"latticeui.org/font/gofont"
	"latticeui.org/layout"
	"latticeui.org/op"
	"latticeui.org/text"
)

func TestCanvasRecords(t *testing.T) {
	c := NewCanvas(text.NewShaper(gofont.Collection()), 20)
	assert.Equal(t, uint16(20), c.DefaultSize())

	c.Fill(op.Quad{Bounds: f32.Rectangle{Width: 4, Height: 4}})
	Clip(c, f32.Rectangle{Width: 2, Height: 2}, func(r Renderer) {
		r.Fill(op.Text{Content: "inner"})
		// Measuring inside a clip goes to the wrapped renderer.
		assert.NotEqual(t, f32.Size{}, r.Measure("inner", 12, font.Font{}, f32.Sz(layout.Inf, layout.Inf)))
	})
	require.Equal(t, 2, c.Ops.Len())
	clip, ok := c.Ops.List()[1].(op.Clip)
	require.True(t, ok)
	require.Equal(t, 1, clip.Ops.Len())
	assert.Equal(t, "inner", clip.Ops.List()[0].(op.Text).Content)
}

func TestColors(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff}, RGB(0x123456))
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, NRGBA(colornames.Red))
	assert.Equal(t, color.NRGBA{A: 0xff}, DefaultDefaults.Text.Color)
}
