// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"golang.org/x/exp/slices"

	"latticeui.org/f32"
	"latticeui.org/font"
	"latticeui.org/io/clipboard"
	"latticeui.org/io/event"
	"latticeui.org/io/pointer"
	"latticeui.org/layout"
	"latticeui.org/op"
	"latticeui.org/render"
	"latticeui.org/widget/overlay"
)

// PickListState is the application-owned state of a PickList.
type PickListState struct {
	Menu overlay.MenuState
}

// IsOpen reports whether the menu of options is shown.
func (s *PickListState) IsOpen() bool {
	return s.Menu.Open
}

type PickListStyle struct {
	Text         color.NRGBA
	Background   color.NRGBA
	BorderRadius float32
	BorderWidth  float32
	BorderColor  color.NRGBA
	Menu         overlay.MenuStyle
}

// PickList shows the selected option and drops down a menu of options
// when pressed.
//
// Its layout depends on its width, padding, text size, font and
// options.
type PickList[M any] struct {
	state      *PickListState
	options    []string
	selected   string
	onSelected func(string) M
	width      layout.Length
	padding    layout.Padding
	textSize   uint16
	font       font.Font
	style      PickListStyle
}

func NewPickList[M any](state *PickListState, options []string, selected string, onSelected func(string) M, style PickListStyle) *PickList[M] {
	return &PickList[M]{
		state:      state,
		options:    options,
		selected:   selected,
		onSelected: onSelected,
		width:      layout.Shrink,
		padding:    layout.UniformPadding(5),
		style:      style,
	}
}

func (p *PickList[M]) WithWidth(w layout.Length) *PickList[M] {
	p.width = w
	return p
}

func (p *PickList[M]) WithPadding(pad layout.Padding) *PickList[M] {
	p.padding = pad
	return p
}

func (p *PickList[M]) WithTextSize(size uint16) *PickList[M] {
	p.textSize = size
	return p
}

func (p *PickList[M]) WithFont(f font.Font) *PickList[M] {
	p.font = f
	return p
}

func (p *PickList[M]) Width() layout.Length  { return p.width }
func (p *PickList[M]) Height() layout.Length { return layout.Shrink }

func (p *PickList[M]) size(r render.Renderer) uint16 {
	if p.textSize != 0 {
		return p.textSize
	}
	return r.DefaultSize()
}

func (p *PickList[M]) Layout(r render.Renderer, l layout.Limits) layout.Node {
	outer := l
	l = l.Width(p.width).Height(layout.Shrink).Pad(p.padding)
	size := p.size(r)
	var labels float32
	if p.width == layout.Shrink {
		for _, o := range p.options {
			labels = max(labels, r.Measure(o, size, p.font, l.Max()).Width)
		}
	}
	// Room for the widest option, the arrow and the space before it.
	intrinsic := f32.Sz(labels+float32(size)+float32(p.padding.Left), float32(size))
	return layout.NewNode(outer.Clamp(layout.PadSize(l.Resolve(intrinsic), p.padding)))
}

func (p *PickList[M]) Event(e event.Event, l layout.Layout, cursor f32.Point, _ render.Renderer, _ clipboard.Clipboard, _ *[]M) event.Status {
	pe, ok := e.(pointer.Event)
	if !ok || !pe.IsPrimaryPress() {
		return event.Ignored
	}
	if p.state.Menu.Open {
		// The cursor is moved off-screen while it is over the menu;
		// any other press closes it.
		p.state.Menu.Open = cursor.X < 0 || cursor.Y < 0
		return event.Captured
	}
	if l.Bounds().Contains(cursor) {
		p.state.Menu.Open = true
		p.state.Menu.Hovered = slices.Index(p.options, p.selected)
		return event.Captured
	}
	return event.Ignored
}

func (p *PickList[M]) Draw(r render.Renderer, d render.Defaults, l layout.Layout, _ f32.Point, _ f32.Rectangle) {
	bounds := l.Bounds()
	s := p.style
	r.Fill(op.Quad{
		Bounds:       bounds,
		Background:   s.Background,
		BorderRadius: s.BorderRadius,
		BorderWidth:  s.BorderWidth,
		BorderColor:  s.BorderColor,
	})
	size := float32(p.size(r))
	inner := f32.Rectangle{
		X:      bounds.X + float32(p.padding.Left),
		Y:      bounds.Y,
		Width:  max(bounds.Width-p.padding.Horizontal(), 0),
		Height: bounds.Height,
	}
	r.Fill(op.Text{
		Content: "▼",
		Bounds:  inner,
		Color:   s.Text,
		Size:    size * 0.7,
		HAlign:  layout.End,
		VAlign:  layout.Center,
	})
	if p.selected == "" {
		return
	}
	r.Fill(op.Text{
		Content: p.selected,
		Bounds:  inner,
		Color:   s.Text,
		Size:    size,
		Font:    p.font,
		HAlign:  layout.Start,
		VAlign:  layout.Center,
	})
}

func (p *PickList[M]) HashLayout(h *layout.Hasher) {
	h.WriteKind("pick_list")
	h.WriteLength(p.width)
	h.WritePadding(p.padding)
	h.WriteUint16(p.textSize)
	writeFont(h, p.font)
	h.WriteUint64(uint64(len(p.options)))
	for _, o := range p.options {
		h.WriteString(o)
	}
}

// Overlay returns the menu of options while the pick list is open.
func (p *PickList[M]) Overlay(l layout.Layout) (overlay.Element[M], bool) {
	if !p.state.Menu.Open {
		return overlay.Element[M]{}, false
	}
	bounds := l.Bounds()
	m := overlay.NewMenu(&p.state.Menu, p.options, p.onSelected, p.style.Menu).
		Target(bounds.Size()).
		Padding(p.padding).
		Font(p.font).
		TextSize(p.textSize)
	return overlay.New[M](bounds.Position(), m), true
}
