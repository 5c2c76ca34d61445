// SPDX-License-Identifier: Unlicense OR MIT

// Package headless implements headless windows for rendering
// an operation list to an image.
//
// The framebuffer of a Window stores its rows bottom-up, the way a
// GPU framebuffer is read back; Screenshot returns them top-down.
package headless

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"latticeui.org/f32"
	"latticeui.org/op"
	"latticeui.org/raster"
	"latticeui.org/text"
)

// Settings configure a Window.
type Settings struct {
	// Shaper provides the faces text is drawn with. Without a shaper
	// text is not drawn.
	Shaper *text.Shaper
	// DebugTextSize is the size of the debug lines passed to
	// Present. Zero means 16.
	DebugTextSize float32
}

// Window is a headless window.
type Window struct {
	size     image.Point
	settings Settings
	// fb holds the RGBA pixels of the window, bottom row first.
	fb      []byte
	scratch *image.RGBA
	ras     *raster.Rasterizer
	log     *logrus.Entry
}

// Screenshot is a copy of the content of a Window.
type Screenshot struct {
	Size image.Point
	// Pix holds the RGB values of the pixels, row by row starting at
	// the top left corner.
	Pix []byte
}

// NewWindow creates a new headless window. The window has no
// framebuffer until it is resized.
func NewWindow(s Settings) *Window {
	if s.DebugTextSize == 0 {
		s.DebugTextSize = 16
	}
	return &Window{
		settings: s,
		ras:      raster.New(s.Shaper),
		log:      logrus.WithField("component", "headless"),
	}
}

// Resize replaces the framebuffer with a cleared one of size.
func (w *Window) Resize(size image.Point) {
	size.X, size.Y = max(size.X, 0), max(size.Y, 0)
	w.size = size
	w.fb = make([]byte, size.X*size.Y*4)
	w.scratch = image.NewRGBA(image.Rectangle{Max: size})
	w.log.WithField("size", size).Info("framebuffer resized")
}

// Size returns the window size.
func (w *Window) Size() image.Point {
	return w.size
}

func (w *Window) mustHaveFramebuffer() {
	if w.fb == nil {
		panic("headless: uninitialized framebuffer")
	}
}

// Present clears the window with background and draws the primitives
// of frame, clipped to viewport. The debug lines, if any, are drawn
// above the frame in the top left corner.
func (w *Window) Present(frame *op.Ops, background color.NRGBA, viewport f32.Rectangle, debug ...string) {
	w.mustHaveFramebuffer()
	img := w.scratch
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	clip := viewportBounds(viewport).Intersect(img.Bounds())
	if !clip.Empty() {
		w.ras.Frame(frame, img.SubImage(clip).(*image.RGBA))
	}
	if len(debug) > 0 {
		w.ras.Frame(w.debugOps(debug), img)
	}
	w.upload(img)
	w.log.WithField("viewport", viewport).Debug("frame presented")
}

func (w *Window) debugOps(lines []string) *op.Ops {
	var ops op.Ops
	size := w.settings.DebugTextSize
	h := size * 1.25
	bounds := f32.Rectangle{Width: float32(w.size.X), Height: h * float32(len(lines))}
	ops.Add(op.Quad{Bounds: bounds, Background: color.NRGBA{A: 0xb0}})
	for i, l := range lines {
		ops.Add(op.Text{
			Content: l,
			Bounds:  f32.Rectangle{X: 4, Y: float32(i) * h, Width: bounds.Width - 8, Height: h},
			Color:   color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
			Size:    size,
		})
	}
	return &ops
}

// upload copies img to the framebuffer, bottom row first.
func (w *Window) upload(img *image.RGBA) {
	stride := w.size.X * 4
	for y := 0; y < w.size.Y; y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+stride]
		dst := (w.size.Y - 1 - y) * stride
		copy(w.fb[dst:dst+stride], src)
	}
}

// Screenshot reads the content of the window.
func (w *Window) Screenshot() Screenshot {
	w.mustHaveFramebuffer()
	n := w.size.X * w.size.Y
	pix := make([]byte, n*3)
	for i := 0; i < n; i++ {
		copy(pix[i*3:i*3+3], w.fb[i*4:i*4+3])
	}
	flipImageY(w.size.X*3, w.size.Y, pix)
	return Screenshot{Size: w.size, Pix: pix}
}

func flipImageY(stride, height int, pixels []byte) {
	// The framebuffer origin is in the lower left corner.
	row := make([]uint8, stride)
	for y := 0; y < height/2; y++ {
		y1 := height - y - 1
		dest := y1 * stride
		src := y * stride
		copy(row, pixels[dest:])
		copy(pixels[dest:], pixels[src:src+len(row)])
		copy(pixels[src:], row)
	}
}

// Image returns the screenshot as an opaque image.
func (s Screenshot) Image() *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: s.Size})
	for i := 0; i < s.Size.X*s.Size.Y; i++ {
		copy(img.Pix[i*4:i*4+3], s.Pix[i*3:i*3+3])
		img.Pix[i*4+3] = 0xff
	}
	return img
}

// EncodePNG writes the screenshot to out in PNG format.
func (s Screenshot) EncodePNG(out io.Writer) error {
	if err := png.Encode(out, s.Image()); err != nil {
		return fmt.Errorf("headless: encode png: %w", err)
	}
	return nil
}

func viewportBounds(r f32.Rectangle) image.Rectangle {
	pt := func(x, y float32) image.Point {
		const limit = 1 << 30
		clamp := func(v float64) int { return int(max(min(v, limit), -limit)) }
		return image.Pt(clamp(math.Round(float64(x))), clamp(math.Round(float64(y))))
	}
	return image.Rectangle{Min: pt(r.X, r.Y), Max: pt(r.X+r.Width, r.Y+r.Height)}
}
