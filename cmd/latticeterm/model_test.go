// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"latticeui.org/f32"
	"latticeui.org/io/clipboard"
	"latticeui.org/io/key"
	"latticeui.org/io/pointer"
)

func TestPointerEvent(t *testing.T) {
	e, ok := pointerEvent(tea.MouseMsg{X: 3, Y: 4, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress, Shift: true})
	require.True(t, ok)
	assert.Equal(t, pointer.Event{
		Kind:      pointer.Press,
		Source:    pointer.Mouse,
		Buttons:   pointer.ButtonPrimary,
		Position:  f32.Pt(3.5, 4.5),
		Modifiers: key.ModShift,
	}, e)
	assert.True(t, e.IsPrimaryPress())

	e, ok = pointerEvent(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	require.True(t, ok)
	assert.Equal(t, pointer.Scroll, e.Kind)
	assert.Equal(t, f32.Vector{Y: 1}, e.Scroll)

	e, ok = pointerEvent(tea.MouseMsg{Button: tea.MouseButtonNone, Action: tea.MouseActionMotion})
	require.True(t, ok)
	assert.Equal(t, pointer.Move, e.Kind)
}

func TestKeyEvent(t *testing.T) {
	e, ok := keyEvent(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")})
	require.True(t, ok)
	assert.Equal(t, key.EditEvent{Text: "ab"}, e)

	e, ok = keyEvent(tea.KeyMsg{Type: tea.KeyEnter, Alt: true})
	require.True(t, ok)
	assert.Equal(t, key.Event{Name: key.NameReturn, Modifiers: key.ModAlt, State: key.Press}, e)

	_, ok = keyEvent(tea.KeyMsg{Type: tea.KeyF12})
	assert.False(t, ok)
}

func TestModelTogglesTask(t *testing.T) {
	m := newModel(clipboard.Null{})
	assert.Empty(t, m.View())
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})

	require.Contains(t, m.View(), "Measure text")

	grid := m.r.Paint(60, 20)
	x, y := -1, -1
	for row := 0; row < grid.Height && y < 0; row++ {
		s := grid.Row(row)
		if i := strings.Index(s, "Measure text"); i >= 0 {
			x, y = utf8.RuneCountInString(s[:i]), row
		}
	}
	require.GreaterOrEqual(t, y, 0)

	// The box is two cells left of the label.
	m.Update(tea.MouseMsg{X: x - 2, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	assert.True(t, m.state.Tasks[0].Done)
	assert.Contains(t, m.View(), "1 of 3 done")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestBlurClearsCursor(t *testing.T) {
	m := newModel(clipboard.Null{})
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m.Update(tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionMotion})
	assert.Equal(t, f32.Pt(5.5, 5.5), m.cursor)

	m.Update(tea.BlurMsg{})
	assert.Equal(t, f32.Pt(-1, -1), m.cursor)
	m.Update(tea.FocusMsg{})
	assert.Equal(t, f32.Pt(-1, -1), m.cursor)
}
