// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"latticeui.org/f32"
	"latticeui.org/io/clipboard"
	"latticeui.org/io/event"
	"latticeui.org/layout"
	"latticeui.org/render"
	"latticeui.org/widget/overlay"
)

// DispatchEvent passes e to every child with its matching child
// layout and merges the results. No child is skipped, even after
// another captured the event. DispatchEvent panics if l does not have
// one child per element.
func DispatchEvent[M any](children []Element[M], e event.Event, l layout.Layout, cursor f32.Point, r render.Renderer, c clipboard.Clipboard, msgs *[]M) event.Status {
	l.MustHaveChildren(len(children))
	status := event.Ignored
	for i, child := range children {
		status = status.Merge(child.Event(e, l.Child(i), cursor, r, c, msgs))
	}
	return status
}

// DrawChildren draws every child with its matching child layout.
func DrawChildren[M any](children []Element[M], r render.Renderer, d render.Defaults, l layout.Layout, cursor f32.Point, viewport f32.Rectangle) {
	l.MustHaveChildren(len(children))
	for i, child := range children {
		child.Draw(r, d, l.Child(i), cursor, viewport)
	}
}

// FirstOverlay returns the overlay of the first child that has one.
func FirstOverlay[M any](children []Element[M], l layout.Layout) (overlay.Element[M], bool) {
	l.MustHaveChildren(len(children))
	for i, child := range children {
		if o, ok := child.Overlay(l.Child(i)); ok {
			return o, true
		}
	}
	return overlay.Element[M]{}, false
}
