// SPDX-License-Identifier: Unlicense OR MIT

package overlay

import (
	"image/color"

	"latticeui.org/f32"
	"latticeui.org/font"
	"latticeui.org/io/clipboard"
	"latticeui.org/io/event"
	"latticeui.org/io/pointer"
	"latticeui.org/layout"
	"latticeui.org/op"
	"latticeui.org/render"
)

// MenuState is the interaction state of a Menu. It is owned by the
// application and survives widget tree rebuilds.
type MenuState struct {
	// Open reports whether the menu is shown.
	Open bool
	// Hovered is the index of the option under the cursor, or -1.
	Hovered int
}

// MenuStyle is the appearance of a Menu.
type MenuStyle struct {
	Text               color.NRGBA
	Background         color.NRGBA
	BorderWidth        float32
	BorderColor        color.NRGBA
	SelectedText       color.NRGBA
	SelectedBackground color.NRGBA
}

// Menu is a list of options shown below, or above when there is no
// room below, a target rectangle.
type Menu[M any] struct {
	state        *MenuState
	options      []string
	onSelect     func(string) M
	width        float32
	targetHeight float32
	textSize     uint16
	padding      layout.Padding
	font         font.Font
	style        MenuStyle
}

// NewMenu returns a menu of options. A press on an option closes state
// and produces onSelect(option).
func NewMenu[M any](state *MenuState, options []string, onSelect func(string) M, style MenuStyle) *Menu[M] {
	return &Menu[M]{
		state:    state,
		options:  options,
		onSelect: onSelect,
		padding:  layout.UniformPadding(5),
		style:    style,
	}
}

// Target sets the size of the rectangle the menu drops from. The menu
// is at least as wide as the target.
func (m *Menu[M]) Target(sz f32.Size) *Menu[M] {
	m.width = sz.Width
	m.targetHeight = sz.Height
	return m
}

func (m *Menu[M]) TextSize(size uint16) *Menu[M] {
	m.textSize = size
	return m
}

func (m *Menu[M]) Padding(p layout.Padding) *Menu[M] {
	m.padding = p
	return m
}

func (m *Menu[M]) Font(f font.Font) *Menu[M] {
	m.font = f
	return m
}

func (m *Menu[M]) size(r render.Renderer) uint16 {
	if m.textSize != 0 {
		return m.textSize
	}
	return r.DefaultSize()
}

func (m *Menu[M]) optionHeight(r render.Renderer) float32 {
	return float32(m.size(r)) + m.padding.Vertical()
}

// Layout places the menu below the target whose top left corner is
// position. The menu flips above the target when the space below is
// too small for it and smaller than the space above. It is then
// clamped into bounds.
func (m *Menu[M]) Layout(r render.Renderer, bounds f32.Size, position f32.Point) layout.Node {
	size := m.size(r)
	width := m.width
	for _, o := range m.options {
		w := r.Measure(o, size, m.font, f32.Sz(layout.Inf, layout.Inf)).Width
		width = max(width, w+m.padding.Horizontal())
	}
	width = min(width, bounds.Width)
	height := m.optionHeight(r) * float32(len(m.options))

	below := max(bounds.Height-(position.Y+m.targetHeight), 0)
	above := max(position.Y, 0)
	y := position.Y + m.targetHeight
	if height > below && above > below {
		height = min(height, above)
		y = above - height
	} else {
		height = min(height, below)
	}
	x := max(min(position.X, bounds.Width-width), 0)

	n := layout.NewNode(f32.Sz(width, height))
	n.MoveTo(f32.Pt(x, y))
	return n
}

// option returns the index of the option under cursor.
func (m *Menu[M]) option(r render.Renderer, bounds f32.Rectangle, cursor f32.Point) (int, bool) {
	if !bounds.Contains(cursor) || len(m.options) == 0 {
		return -1, false
	}
	i := int((cursor.Y - bounds.Y) / m.optionHeight(r))
	return min(i, len(m.options)-1), true
}

func (m *Menu[M]) Event(e event.Event, l layout.Layout, cursor f32.Point, r render.Renderer, _ clipboard.Clipboard, msgs *[]M) event.Status {
	pe, ok := e.(pointer.Event)
	if !ok {
		return event.Ignored
	}
	bounds := l.Bounds()
	switch {
	case pe.Kind == pointer.Move:
		i, _ := m.option(r, bounds, cursor)
		m.state.Hovered = i
	case pe.IsPrimaryPress():
		i, ok := m.option(r, bounds, cursor)
		if !ok {
			return event.Ignored
		}
		m.state.Open = false
		m.state.Hovered = -1
		*msgs = append(*msgs, m.onSelect(m.options[i]))
		return event.Captured
	}
	return event.Ignored
}

func (m *Menu[M]) Draw(r render.Renderer, d render.Defaults, l layout.Layout, cursor f32.Point) {
	bounds := l.Bounds()
	r.Fill(op.Quad{
		Bounds:      bounds,
		Background:  m.style.Background,
		BorderWidth: m.style.BorderWidth,
		BorderColor: m.style.BorderColor,
	})
	size := m.size(r)
	h := m.optionHeight(r)
	render.Clip(r, bounds, func(r render.Renderer) {
		for i, o := range m.options {
			row := f32.Rectangle{X: bounds.X, Y: bounds.Y + float32(i)*h, Width: bounds.Width, Height: h}
			fg := m.style.Text
			if i == m.state.Hovered {
				r.Fill(op.Quad{Bounds: row, Background: m.style.SelectedBackground})
				fg = m.style.SelectedText
			}
			r.Fill(op.Text{
				Content: o,
				Bounds: f32.Rectangle{
					X:      row.X + float32(m.padding.Left),
					Y:      row.Y,
					Width:  row.Width - m.padding.Horizontal(),
					Height: row.Height,
				},
				Color:  fg,
				Size:   float32(size),
				Font:   m.font,
				HAlign: layout.Start,
				VAlign: layout.Center,
			})
		}
	})
}

func (m *Menu[M]) HashLayout(h *layout.Hasher, position f32.Point) {
	h.WriteKind("menu")
	h.WriteFloat32(position.X)
	h.WriteFloat32(position.Y)
	h.WriteUint64(uint64(len(m.options)))
	for _, o := range m.options {
		h.WriteString(o)
	}
	h.WriteUint16(m.textSize)
	h.WritePadding(m.padding)
	h.WriteFloat32(m.width)
	h.WriteFloat32(m.targetHeight)
}
