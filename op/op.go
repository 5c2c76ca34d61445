// SPDX-License-Identifier: Unlicense OR MIT

/*
Package op implements the drawing primitives widgets emit.

Ops represents a list of primitives. Widgets add primitives to a list
through a render.Renderer while drawing; a compositor then replays the
list in order, later primitives painting over earlier ones.

Drawing a bordered square:

	ops := new(op.Ops)
	op.Quad{
		Bounds:      f32.Rectangle{Width: 20, Height: 20},
		Background:  color.NRGBA{R: 0xff, A: 0xff},
		BorderWidth: 1,
		BorderColor: color.NRGBA{A: 0xff},
	}.Add(ops)

Clipping

A Clip primitive carries its own nested list; everything in it is
restricted to the clip bounds:

	var inner op.Ops
	op.Text{Content: "clipped", Bounds: r}.Add(&inner)
	op.Clip{Bounds: r, Ops: inner}.Add(ops)

*/
package op

import (
	"fmt"
	"image/color"

	"latticeui.org/f32"
	"latticeui.org/font"
	"latticeui.org/layout"
)

// Ops holds a list of primitives.
type Ops struct {
	list []Primitive
}

// Primitive is one of Quad, Text or Clip.
type Primitive interface {
	// Add appends the primitive to o.
	Add(o *Ops)
	isPrimitive()
}

// Quad is a filled rectangle with an optional border and rounded
// corners.
type Quad struct {
	Bounds       f32.Rectangle
	Background   color.NRGBA
	BorderRadius float32
	BorderWidth  float32
	BorderColor  color.NRGBA
}

// Text is a run of text drawn inside Bounds.
type Text struct {
	Content string
	Bounds  f32.Rectangle
	Color   color.NRGBA
	// Size is the text size in pixels.
	Size float32
	Font font.Font
	// HAlign and VAlign position the text inside Bounds.
	HAlign, VAlign layout.Alignment
}

// Clip restricts its nested primitives to Bounds.
type Clip struct {
	Bounds f32.Rectangle
	Ops    Ops
}

// Reset the Ops, preparing it for re-use. Reset invalidates
// any recorded Clip lists built from it.
func (o *Ops) Reset() {
	clear(o.list)
	o.list = o.list[:0]
}

// Add appends p.
func (o *Ops) Add(p Primitive) {
	o.list = append(o.list, p)
}

// List returns the recorded primitives in order. The slice is valid
// until the next Reset or Add.
func (o *Ops) List() []Primitive {
	return o.list
}

// Len returns the number of top-level primitives.
func (o *Ops) Len() int {
	return len(o.list)
}

func (q Quad) Add(o *Ops) { o.Add(q) }
func (t Text) Add(o *Ops) { o.Add(t) }
func (c Clip) Add(o *Ops) { o.Add(c) }

func (Quad) isPrimitive() {}
func (Text) isPrimitive() {}
func (Clip) isPrimitive() {}

func (q Quad) String() string {
	return fmt.Sprintf("quad(%v)", q.Bounds)
}

func (t Text) String() string {
	return fmt.Sprintf("text(%q, %v)", t.Content, t.Bounds)
}

func (c Clip) String() string {
	return fmt.Sprintf("clip(%v, %d ops)", c.Bounds, c.Ops.Len())
}
