// SPDX-License-Identifier: Unlicense OR MIT

package headless

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"latticeui.org/f32"
	"latticeui.org/font/gofont"
	"latticeui.org/op"
	"latticeui.org/text"
)

var (
	red   = color.NRGBA{R: 0xff, A: 0xff}
	blue  = color.NRGBA{B: 0xff, A: 0xff}
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func rgb(s Screenshot, x, y int) [3]byte {
	i := (y*s.Size.X + x) * 3
	return [3]byte{s.Pix[i], s.Pix[i+1], s.Pix[i+2]}
}

func newTestWindow(t *testing.T, sz image.Point) *Window {
	t.Helper()
	w := NewWindow(Settings{})
	w.Resize(sz)
	return w
}

func TestUninitializedFramebuffer(t *testing.T) {
	w := NewWindow(Settings{})
	assert.PanicsWithValue(t, "headless: uninitialized framebuffer", func() { w.Screenshot() })
	assert.PanicsWithValue(t, "headless: uninitialized framebuffer", func() {
		w.Present(&op.Ops{}, white, f32.Rectangle{Width: 10, Height: 10})
	})
}

func TestScreenshotTopLeftOrigin(t *testing.T) {
	w := newTestWindow(t, image.Pt(4, 3))
	var ops op.Ops
	// Only the top row is red.
	ops.Add(op.Quad{Bounds: f32.Rectangle{Width: 4, Height: 1}, Background: red})
	w.Present(&ops, blue, f32.Rectangle{Width: 4, Height: 3})

	// The framebuffer keeps the top row last.
	assert.Equal(t, []byte{0, 0, 0xff, 0xff}, w.fb[:4])
	assert.Equal(t, []byte{0xff, 0, 0, 0xff}, w.fb[len(w.fb)-4:])

	s := w.Screenshot()
	require.Len(t, s.Pix, 4*3*3)
	for x := 0; x < 4; x++ {
		assert.Equal(t, [3]byte{0xff, 0, 0}, rgb(s, x, 0))
		assert.Equal(t, [3]byte{0, 0, 0xff}, rgb(s, x, 1))
		assert.Equal(t, [3]byte{0, 0, 0xff}, rgb(s, x, 2))
	}
}

func TestFlipImageY(t *testing.T) {
	tests := []struct {
		height int
		in     []byte
		want   []byte
	}{
		{0, []byte{}, []byte{}},
		{1, []byte{1, 2}, []byte{1, 2}},
		{2, []byte{1, 2, 3, 4}, []byte{3, 4, 1, 2}},
		{3, []byte{1, 2, 3, 4, 5, 6}, []byte{5, 6, 3, 4, 1, 2}},
	}
	for _, tc := range tests {
		pix := make([]byte, len(tc.in))
		copy(pix, tc.in)
		flipImageY(2, tc.height, pix)
		assert.Equal(t, tc.want, pix, "height %d", tc.height)
	}
}

func TestViewportClipsFrame(t *testing.T) {
	w := newTestWindow(t, image.Pt(10, 10))
	var ops op.Ops
	ops.Add(op.Quad{Bounds: f32.Rectangle{Width: 10, Height: 10}, Background: red})
	w.Present(&ops, white, f32.Rectangle{Width: 5, Height: 10})
	s := w.Screenshot()
	assert.Equal(t, [3]byte{0xff, 0, 0}, rgb(s, 2, 5))
	assert.Equal(t, [3]byte{0xff, 0xff, 0xff}, rgb(s, 7, 5))
}

func TestResizeClears(t *testing.T) {
	w := newTestWindow(t, image.Pt(2, 2))
	w.Present(&op.Ops{}, red, f32.Rectangle{Width: 2, Height: 2})
	w.Resize(image.Pt(3, 1))
	assert.Equal(t, image.Pt(3, 1), w.Size())
	s := w.Screenshot()
	assert.Equal(t, make([]byte, 9), s.Pix)
}

func TestDebugLines(t *testing.T) {
	w := NewWindow(Settings{Shaper: text.NewShaper(gofont.Regular())})
	w.Resize(image.Pt(100, 50))
	w.Present(&op.Ops{}, white, f32.Rectangle{Width: 100, Height: 50}, "fps 60")
	s := w.Screenshot()
	// The debug band covers the top of the window only.
	assert.NotEqual(t, [3]byte{0xff, 0xff, 0xff}, rgb(s, 99, 0))
	assert.Equal(t, [3]byte{0xff, 0xff, 0xff}, rgb(s, 99, 49))
}

func TestEncodePNG(t *testing.T) {
	w := newTestWindow(t, image.Pt(3, 2))
	var ops op.Ops
	ops.Add(op.Quad{Bounds: f32.Rectangle{Y: 1, Width: 3, Height: 1}, Background: red})
	w.Present(&ops, blue, f32.Rectangle{Width: 3, Height: 2})

	var buf bytes.Buffer
	require.NoError(t, w.Screenshot().EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
	r, g, b, a := img.At(0, 0).RGBA()
	assert.Equal(t, [4]uint32{0, 0, 0xffff, 0xffff}, [4]uint32{r, g, b, a})
	r, g, b, a = img.At(0, 1).RGBA()
	assert.Equal(t, [4]uint32{0xffff, 0, 0, 0xffff}, [4]uint32{r, g, b, a})
}
