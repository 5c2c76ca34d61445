// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"latticeui.org/f32"
	"latticeui.org/io/clipboard"
	"latticeui.org/io/event"
	"latticeui.org/layout"
	"latticeui.org/op"
	"latticeui.org/render"
	"latticeui.org/widget/overlay"
)

// Widget is the contract every node of a widget tree producing
// messages of type M satisfies.
type Widget[M any] interface {
	Width() layout.Length
	Height() layout.Length
	// Layout returns a node whose size lies within l.
	Layout(r render.Renderer, l layout.Limits) layout.Node
	// Event handles e, appending any produced messages to msgs.
	// Containers pass e to every child and merge the results.
	Event(e event.Event, l layout.Layout, cursor f32.Point, r render.Renderer, c clipboard.Clipboard, msgs *[]M) event.Status
	// Draw must not modify the widget.
	Draw(r render.Renderer, d render.Defaults, l layout.Layout, cursor f32.Point, viewport f32.Rectangle)
	// HashLayout writes a type discriminant followed by every field
	// affecting the layout.
	HashLayout(h *layout.Hasher)
}

// Overlayer is implemented by widgets that may show an overlay.
type Overlayer[M any] interface {
	Overlay(l layout.Layout) (overlay.Element[M], bool)
}

// Leaf is a widget that produces no messages.
type Leaf interface {
	Width() layout.Length
	Height() layout.Length
	Layout(r render.Renderer, l layout.Limits) layout.Node
	Draw(r render.Renderer, d render.Defaults, l layout.Layout, cursor f32.Point, viewport f32.Rectangle)
	HashLayout(h *layout.Hasher)
}

// Base provides the default Event, which ignores every event.
type Base[M any] struct{}

func (Base[M]) Event(event.Event, layout.Layout, f32.Point, render.Renderer, clipboard.Clipboard, *[]M) event.Status {
	return event.Ignored
}

type leaf[M any] struct {
	Base[M]
	Leaf
}

// Element owns a widget.
type Element[M any] struct {
	widget Widget[M]
	offset f32.Vector
}

// New returns an Element owning w.
func New[M any](w Widget[M]) Element[M] {
	return Element[M]{widget: w}
}

// FromLeaf returns an Element owning w.
func FromLeaf[M any](w Leaf) Element[M] {
	return New[M](leaf[M]{Leaf: w})
}

// Translate returns e with the overlays it produces moved by v.
func (e Element[M]) Translate(v f32.Vector) Element[M] {
	e.offset = e.offset.Add(v)
	return e
}

func (e Element[M]) Width() layout.Length  { return e.widget.Width() }
func (e Element[M]) Height() layout.Length { return e.widget.Height() }

func (e Element[M]) Layout(r render.Renderer, l layout.Limits) layout.Node {
	return e.widget.Layout(r, l)
}

func (e Element[M]) Event(ev event.Event, l layout.Layout, cursor f32.Point, r render.Renderer, c clipboard.Clipboard, msgs *[]M) event.Status {
	return e.widget.Event(ev, l, cursor, r, c, msgs)
}

func (e Element[M]) Draw(r render.Renderer, d render.Defaults, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) {
	e.widget.Draw(r, d, l, cursor, viewport)
}

func (e Element[M]) HashLayout(h *layout.Hasher) {
	e.widget.HashLayout(h)
}

// Overlay returns the overlay of the widget, if it has one.
func (e Element[M]) Overlay(l layout.Layout) (overlay.Element[M], bool) {
	o, ok := e.widget.(Overlayer[M])
	if !ok {
		return overlay.Element[M]{}, false
	}
	oe, ok := o.Overlay(l)
	if !ok {
		return overlay.Element[M]{}, false
	}
	return oe.Translate(e.offset), true
}

// Explain returns e drawing an outline of color around the bounds of
// every layout node below it.
func (e Element[M]) Explain(c color.NRGBA) Element[M] {
	e.widget = &explain[M]{content: e.widget, color: c}
	return e
}

// Map returns an Element producing f(m) for every message m produced
// by e, in order. Overlays of e are mapped as well.
func Map[A, B any](e Element[A], f func(A) B) Element[B] {
	return Element[B]{widget: &mapped[A, B]{content: e, f: f}, offset: e.offset}
}

type mapped[A, B any] struct {
	content Element[A]
	f       func(A) B
	scratch []A
}

func (m *mapped[A, B]) Width() layout.Length  { return m.content.Width() }
func (m *mapped[A, B]) Height() layout.Length { return m.content.Height() }

func (m *mapped[A, B]) Layout(r render.Renderer, l layout.Limits) layout.Node {
	return m.content.Layout(r, l)
}

func (m *mapped[A, B]) Event(e event.Event, l layout.Layout, cursor f32.Point, r render.Renderer, c clipboard.Clipboard, msgs *[]B) event.Status {
	m.scratch = m.scratch[:0]
	status := m.content.Event(e, l, cursor, r, c, &m.scratch)
	for _, msg := range m.scratch {
		*msgs = append(*msgs, m.f(msg))
	}
	clear(m.scratch)
	return status
}

func (m *mapped[A, B]) Draw(r render.Renderer, d render.Defaults, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) {
	m.content.Draw(r, d, l, cursor, viewport)
}

func (m *mapped[A, B]) HashLayout(h *layout.Hasher) {
	m.content.HashLayout(h)
}

func (m *mapped[A, B]) Overlay(l layout.Layout) (overlay.Element[B], bool) {
	// The offset is applied by the outer Element.
	inner := m.content
	inner.offset = f32.Vector{}
	o, ok := inner.Overlay(l)
	if !ok {
		return overlay.Element[B]{}, false
	}
	return overlay.Map(o, m.f), true
}

type explain[M any] struct {
	content Widget[M]
	color   color.NRGBA
}

func (x *explain[M]) Width() layout.Length  { return x.content.Width() }
func (x *explain[M]) Height() layout.Length { return x.content.Height() }

func (x *explain[M]) Layout(r render.Renderer, l layout.Limits) layout.Node {
	return x.content.Layout(r, l)
}

func (x *explain[M]) Event(e event.Event, l layout.Layout, cursor f32.Point, r render.Renderer, c clipboard.Clipboard, msgs *[]M) event.Status {
	return x.content.Event(e, l, cursor, r, c, msgs)
}

func (x *explain[M]) Draw(r render.Renderer, d render.Defaults, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) {
	x.content.Draw(r, d, l, cursor, viewport)
	explainLayout(r, x.color, l)
}

func (x *explain[M]) HashLayout(h *layout.Hasher) {
	x.content.HashLayout(h)
}

func (x *explain[M]) Overlay(l layout.Layout) (overlay.Element[M], bool) {
	return New(x.content).Overlay(l)
}

func explainLayout(r render.Renderer, c color.NRGBA, l layout.Layout) {
	r.Fill(op.Quad{Bounds: l.Bounds(), BorderWidth: 1, BorderColor: c})
	for _, child := range l.Children() {
		explainLayout(r, c, child)
	}
}
