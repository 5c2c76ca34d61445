// SPDX-License-Identifier: Unlicense OR MIT

// Package overlay implements widgets drawn above the widget tree, such
// as drop-down menus. An overlay is laid out against the whole
// viewport and receives input before the tree below it sees the
// cursor.
package overlay

import (
	"latticeui.org/f32"
	"latticeui.org/io/clipboard"
	"latticeui.org/io/event"
	"latticeui.org/layout"
	"latticeui.org/render"
)

// Overlay is the contract of an overlay producing messages of type M.
type Overlay[M any] interface {
	// Layout lays the overlay out inside a viewport of size bounds,
	// anchored at position.
	Layout(r render.Renderer, bounds f32.Size, position f32.Point) layout.Node
	Event(e event.Event, l layout.Layout, cursor f32.Point, r render.Renderer, c clipboard.Clipboard, msgs *[]M) event.Status
	Draw(r render.Renderer, d render.Defaults, l layout.Layout, cursor f32.Point)
	// HashLayout writes the fields affecting the layout, including
	// the anchor position.
	HashLayout(h *layout.Hasher, position f32.Point)
}

// Element is an Overlay anchored at a position.
type Element[M any] struct {
	position f32.Point
	overlay  Overlay[M]
}

// New anchors o at position.
func New[M any](position f32.Point, o Overlay[M]) Element[M] {
	return Element[M]{position: position, overlay: o}
}

// Translate returns e with its anchor moved by v.
func (e Element[M]) Translate(v f32.Vector) Element[M] {
	e.position = e.position.Add(v)
	return e
}

// Position returns the anchor.
func (e Element[M]) Position() f32.Point {
	return e.position
}

// Layout computes the layout of e in a viewport of size bounds.
func (e Element[M]) Layout(r render.Renderer, bounds f32.Size) layout.Node {
	return e.overlay.Layout(r, bounds, e.position)
}

func (e Element[M]) Event(ev event.Event, l layout.Layout, cursor f32.Point, r render.Renderer, c clipboard.Clipboard, msgs *[]M) event.Status {
	return e.overlay.Event(ev, l, cursor, r, c, msgs)
}

func (e Element[M]) Draw(r render.Renderer, d render.Defaults, l layout.Layout, cursor f32.Point) {
	e.overlay.Draw(r, d, l, cursor)
}

func (e Element[M]) HashLayout(h *layout.Hasher) {
	e.overlay.HashLayout(h, e.position)
}

// Map returns an Element producing f(m) for every message m of e.
func Map[A, B any](e Element[A], f func(A) B) Element[B] {
	return Element[B]{position: e.position, overlay: &mapped[A, B]{content: e.overlay, f: f}}
}

type mapped[A, B any] struct {
	content Overlay[A]
	f       func(A) B
	scratch []A
}

func (m *mapped[A, B]) Layout(r render.Renderer, bounds f32.Size, position f32.Point) layout.Node {
	return m.content.Layout(r, bounds, position)
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

func (m *mapped[A, B]) Draw(r render.Renderer, d render.Defaults, l layout.Layout, cursor f32.Point) {
	m.content.Draw(r, d, l, cursor)
}

func (m *mapped[A, B]) HashLayout(h *layout.Hasher, position f32.Point) {
	m.content.HashLayout(h, position)
}
