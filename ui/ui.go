// SPDX-License-Identifier: Unlicense OR MIT

/*
Package ui drives a widget tree for one frame: it lays the tree out,
routes a batch of events through it and draws it.

A UserInterface is built anew for every frame from the application's
current widget tree. Layouts are expensive, so the layout of a frame
is kept in a Cache and reused by the next frame when the fingerprint of
the tree and the viewport bounds are unchanged:

	cache := ui.Cache{}
	for {
		u := ui.Build(view(), bounds, cache, r)
		u.Update(events, cursor, r, clip, &msgs)
		u.Draw(r, defaults, cursor)
		cache = u.IntoCache()
		// Apply msgs to the application state.
	}

The overlay of the tree, if any, is above the base tree: it is drawn
last and the base tree does not see the cursor while the cursor is
over it.
*/
package ui

import (
	"github.com/sirupsen/logrus"

	"latticeui.org/f32"
	"latticeui.org/io/clipboard"
	"latticeui.org/io/event"
	"latticeui.org/layout"
	"latticeui.org/render"
	"latticeui.org/widget"
	"latticeui.org/widget/overlay"
)

// Cache is the layout of a previous frame. The zero Cache is empty.
type Cache struct {
	hash   uint64
	bounds f32.Size
	base   layout.Node
	valid  bool
}

// Option configures Build.
type Option func(*options)

type options struct {
	noCache bool
}

// WithoutCache makes Build lay the tree out even if the cache holds
// an identical layout.
func WithoutCache() Option {
	return func(o *options) {
		o.noCache = true
	}
}

// UserInterface is a laid out widget tree.
type UserInterface[M any] struct {
	root   widget.Element[M]
	hash   uint64
	bounds f32.Size
	base   layout.Node

	overlay     overlay.Element[M]
	overlayNode layout.Node
	hasOverlay  bool

	log *logrus.Entry
}

// offscreen is the cursor position handed to the base tree while the
// cursor is over the overlay.
var offscreen = f32.Pt(-1, -1)

// Build lays out root in bounds. The layout held by cache is reused
// if it was computed for the same fingerprint and bounds.
func Build[M any](root widget.Element[M], bounds f32.Size, cache Cache, r render.Renderer, opts ...Option) *UserInterface[M] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	h := layout.NewHasher()
	root.HashLayout(h)
	u := &UserInterface[M]{
		root:   root,
		hash:   h.Sum64(),
		bounds: bounds,
		log:    logrus.WithField("component", "ui"),
	}
	if !o.noCache && cache.valid && cache.hash == u.hash && cache.bounds == bounds {
		u.log.WithField("hash", u.hash).Debug("layout cache hit")
		u.base = cache.base
	} else {
		u.log.WithFields(logrus.Fields{"hash": u.hash, "bounds": bounds}).Debug("layout cache miss")
		u.base = root.Layout(r, layout.NewLimits(f32.Size{}, bounds))
	}
	return u
}

// Relayout lays the tree out again for new bounds.
func (u *UserInterface[M]) Relayout(bounds f32.Size, r render.Renderer) {
	u.bounds = bounds
	u.base = u.root.Layout(r, layout.NewLimits(f32.Size{}, bounds))
}

// Layout returns the root node of the base tree.
func (u *UserInterface[M]) Layout() layout.Node {
	return u.base
}

// Hash returns the layout fingerprint of the tree.
func (u *UserInterface[M]) Hash() uint64 {
	return u.hash
}

// IntoCache returns the layout of the frame for use by the next one.
func (u *UserInterface[M]) IntoCache() Cache {
	return Cache{
		hash:   u.hash,
		bounds: u.bounds,
		base:   u.base,
		valid:  true,
	}
}

// Update routes every event through the base tree and then through
// the overlay, appending the messages produced to msgs. It returns
// the merged status of each event.
func (u *UserInterface[M]) Update(events []event.Event, cursor f32.Point, r render.Renderer, c clipboard.Clipboard, msgs *[]M) []event.Status {
	u.layoutOverlay(r)
	base := layout.NewLayout(&u.base)
	baseCursor := u.baseCursor(cursor)
	statuses := make([]event.Status, len(events))
	for i, e := range events {
		statuses[i] = u.root.Event(e, base, baseCursor, r, c, msgs)
	}
	if !u.hasOverlay {
		return statuses
	}
	ol := layout.NewLayout(&u.overlayNode)
	for i, e := range events {
		statuses[i] = statuses[i].Merge(u.overlay.Event(e, ol, cursor, r, c, msgs))
	}
	return statuses
}

// Draw draws the base tree and then the overlay above it.
func (u *UserInterface[M]) Draw(r render.Renderer, d render.Defaults, cursor f32.Point) {
	u.layoutOverlay(r)
	viewport := f32.Rectangle{Width: u.bounds.Width, Height: u.bounds.Height}
	u.root.Draw(r, d, layout.NewLayout(&u.base), u.baseCursor(cursor), viewport)
	if u.hasOverlay {
		u.overlay.Draw(r, d, layout.NewLayout(&u.overlayNode), cursor)
	}
}

// layoutOverlay asks the base tree for its overlay and lays it out in
// the viewport.
func (u *UserInterface[M]) layoutOverlay(r render.Renderer) {
	u.overlay, u.hasOverlay = u.root.Overlay(layout.NewLayout(&u.base))
	if u.hasOverlay {
		u.overlayNode = u.overlay.Layout(r, u.bounds)
	}
}

func (u *UserInterface[M]) baseCursor(cursor f32.Point) f32.Point {
	if !u.hasOverlay {
		return cursor
	}
	if layout.NewLayout(&u.overlayNode).Bounds().Contains(cursor) {
		return offscreen
	}
	return cursor
}
