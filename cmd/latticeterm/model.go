// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"latticeui.org/f32"
	"latticeui.org/internal/demo"
	"latticeui.org/io/clipboard"
	"latticeui.org/io/event"
	"latticeui.org/io/key"
	"latticeui.org/io/pointer"
	"latticeui.org/io/system"
	"latticeui.org/render/term"
	"latticeui.org/ui"
	"latticeui.org/widget/material"
)

// model adapts the demo application to a bubbletea program.
type model struct {
	state  *demo.State
	theme  *material.Theme
	r      *term.Renderer
	clip   clipboard.Clipboard
	cache  ui.Cache
	width  int
	height int
	cursor f32.Point
	log    *logrus.Entry
}

func newModel(clip clipboard.Clipboard) *model {
	th := material.NewTheme()
	th.TextSize = 1
	return &model{
		state:  demo.New(),
		theme:  th,
		r:      &term.Renderer{},
		clip:   clip,
		cursor: f32.Pt(-1, -1),
		log:    logrus.WithField("component", "latticeterm"),
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.dispatch(system.ResizeEvent{Size: m.bounds()})
	case tea.FocusMsg:
		m.dispatch(system.FocusEvent{Focused: true})
	case tea.BlurMsg:
		// Nothing is hovered while the terminal is unfocused.
		m.cursor = f32.Pt(-1, -1)
		m.dispatch(system.FocusEvent{Focused: false})
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
		if e, ok := keyEvent(msg); ok {
			m.dispatch(e)
		}
	case tea.MouseMsg:
		e, ok := pointerEvent(msg)
		if !ok {
			break
		}
		m.cursor = e.Position
		m.dispatch(e)
	}
	return m, nil
}

func (m *model) bounds() f32.Size {
	return f32.Sz(float32(m.width), float32(m.height))
}

func (m *model) build() *ui.UserInterface[demo.Msg] {
	return ui.Build(m.state.View(m.theme, demo.Cells), m.bounds(), m.cache, m.r)
}

func (m *model) dispatch(e event.Event) {
	u := m.build()
	var msgs []demo.Msg
	u.Update([]event.Event{e}, m.cursor, m.r, m.clip, &msgs)
	for _, msg := range msgs {
		m.log.WithField("message", msg).Debug("update")
		m.state.Update(msg)
	}
	m.cache = u.IntoCache()
}

func (m *model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	u := m.build()
	m.r.Ops.Reset()
	u.Draw(m.r, m.theme.Defaults(), m.cursor)
	m.cache = u.IntoCache()
	return m.r.Paint(m.width, m.height).Render(m.theme.Bg)
}

// pointerEvent converts a terminal mouse event. The position is the
// center of the cell under the mouse.
func pointerEvent(msg tea.MouseMsg) (pointer.Event, bool) {
	e := pointer.Event{
		Source:   pointer.Mouse,
		Position: f32.Pt(float32(msg.X)+.5, float32(msg.Y)+.5),
	}
	if msg.Ctrl {
		e.Modifiers |= key.ModCtrl
	}
	if msg.Alt {
		e.Modifiers |= key.ModAlt
	}
	if msg.Shift {
		e.Modifiers |= key.ModShift
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		e.Kind, e.Scroll = pointer.Scroll, f32.Vector{Y: -1}
		return e, true
	case tea.MouseButtonWheelDown:
		e.Kind, e.Scroll = pointer.Scroll, f32.Vector{Y: 1}
		return e, true
	case tea.MouseButtonLeft:
		e.Buttons = pointer.ButtonPrimary
	case tea.MouseButtonRight:
		e.Buttons = pointer.ButtonSecondary
	case tea.MouseButtonMiddle:
		e.Buttons = pointer.ButtonTertiary
	}
	switch msg.Action {
	case tea.MouseActionPress:
		e.Kind = pointer.Press
	case tea.MouseActionRelease:
		e.Kind = pointer.Release
	case tea.MouseActionMotion:
		e.Kind = pointer.Move
	default:
		return pointer.Event{}, false
	}
	return e, true
}

var keyNames = map[tea.KeyType]key.Name{
	tea.KeyEnter:     key.NameReturn,
	tea.KeyTab:       key.NameTab,
	tea.KeySpace:     key.NameSpace,
	tea.KeyEsc:       key.NameEscape,
	tea.KeyBackspace: key.NameDeleteBackward,
	tea.KeyDelete:    key.NameDeleteForward,
	tea.KeyUp:        key.NameUpArrow,
	tea.KeyDown:      key.NameDownArrow,
	tea.KeyLeft:      key.NameLeftArrow,
	tea.KeyRight:     key.NameRightArrow,
	tea.KeyHome:      key.NameHome,
	tea.KeyEnd:       key.NameEnd,
	tea.KeyPgUp:      key.NamePageUp,
	tea.KeyPgDown:    key.NamePageDown,
}

// keyEvent converts a terminal key press. Typed characters become
// edit events.
func keyEvent(msg tea.KeyMsg) (event.Event, bool) {
	if msg.Type == tea.KeyRunes {
		return key.EditEvent{Text: string(msg.Runes)}, true
	}
	name, ok := keyNames[msg.Type]
	if !ok {
		return nil, false
	}
	var mods key.Modifiers
	if msg.Alt {
		mods |= key.ModAlt
	}
	return key.Event{Name: name, Modifiers: mods, State: key.Press}, true
}
