// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"latticeui.org/f32"
	"latticeui.org/io/event"
	"latticeui.org/io/pointer"
	"latticeui.org/layout"
	"latticeui.org/op"
	"latticeui.org/render"
	"latticeui.org/widget/overlay"
)

type toggled bool

func TestCheckboxLayout(t *testing.T) {
	cb := New[toggled](NewCheckbox(false, "Mute", func(b bool) toggled { return toggled(b) }, CheckboxStyle{}))
	n, l := layoutOf(cb, &monoRenderer{}, f32.Sz(200, 100))
	assert.Equal(t, f32.Sz(55, 20), n.Size())
	require.Equal(t, 2, l.ChildCount())
	assert.Equal(t, f32.Rectangle{Width: 20, Height: 20}, l.Child(0).Bounds())
	assert.Equal(t, f32.Rectangle{X: 35, Y: 5, Width: 20, Height: 10}, l.Child(1).Bounds())
}

func TestCheckboxToggle(t *testing.T) {
	r := &monoRenderer{}
	for _, checked := range []bool{false, true} {
		cb := New[toggled](NewCheckbox(checked, "Mute", func(b bool) toggled { return toggled(b) }, CheckboxStyle{}))
		_, l := layoutOf(cb, r, f32.Sz(200, 100))
		var msgs []toggled

		st := cb.Event(press, l, f32.Pt(100, 10), r, null, &msgs)
		assert.Equal(t, event.Ignored, st)
		st = cb.Event(pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonSecondary}, l, f32.Pt(10, 10), r, null, &msgs)
		assert.Equal(t, event.Ignored, st)
		st = cb.Event(pointer.Event{Kind: pointer.Move}, l, f32.Pt(10, 10), r, null, &msgs)
		assert.Equal(t, event.Ignored, st)
		assert.Empty(t, msgs)

		st = cb.Event(press, l, f32.Pt(40, 10), r, null, &msgs)
		assert.Equal(t, event.Captured, st)
		st = cb.Event(pointer.Event{Kind: pointer.Press, Source: pointer.Touch}, l, f32.Pt(0, 0), r, null, &msgs)
		assert.Equal(t, event.Captured, st)
		assert.Equal(t, []toggled{toggled(!checked), toggled(!checked)}, msgs)
	}
}

func TestCheckboxDraw(t *testing.T) {
	style := CheckboxStyle{
		Active:  CheckboxAppearance{Background: color.NRGBA{R: 1, A: 0xff}},
		Hovered: CheckboxAppearance{Background: color.NRGBA{R: 2, A: 0xff}},
	}
	r := &monoRenderer{}
	cb := New[toggled](NewCheckbox(true, "Mute", func(b bool) toggled { return toggled(b) }, style))
	_, l := layoutOf(cb, r, f32.Sz(200, 100))

	cb.Draw(r, render.DefaultDefaults, l, f32.Pt(-1, -1), noLimit)
	require.Equal(t, 3, r.ops.Len())
	assert.Equal(t, uint8(1), r.ops.List()[0].(op.Quad).Background.R)
	assert.Equal(t, f32.Rectangle{X: 5, Y: 5, Width: 10, Height: 10}, r.ops.List()[1].(op.Quad).Bounds)
	label := r.ops.List()[2].(op.Text)
	assert.Equal(t, "Mute", label.Content)
	assert.Equal(t, render.DefaultDefaults.Text.Color, label.Color)

	r.ops.Reset()
	cb.Draw(r, render.DefaultDefaults, l, f32.Pt(1, 1), noLimit)
	assert.Equal(t, uint8(2), r.ops.List()[0].(op.Quad).Background.R)
}

func TestProgressBar(t *testing.T) {
	r := &monoRenderer{}
	tests := []struct {
		lo, hi, value float32
		clamped       float32
		active        float32
	}{
		{0, 10, 5, 5, 100},
		{0, 10, 20, 10, 200},
		{0, 10, -3, 0, 0},
		{5, 5, 5, 5, 0},
	}
	for _, tc := range tests {
		pb := NewProgressBar(tc.lo, tc.hi, tc.value, ProgressBarStyle{})
		assert.Equal(t, tc.clamped, pb.Value())

		e := FromLeaf[bool](pb)
		n, l := layoutOf(e, r, f32.Sz(200, 100))
		assert.Equal(t, f32.Sz(200, DefaultProgressBarHeight), n.Size())

		r.ops.Reset()
		e.Draw(r, render.DefaultDefaults, l, f32.Origin, noLimit)
		if tc.active == 0 {
			assert.Equal(t, 1, r.ops.Len(), "%v", tc)
			continue
		}
		require.Equal(t, 2, r.ops.Len(), "%v", tc)
		assert.Equal(t, tc.active, r.ops.List()[1].(op.Quad).Bounds.Width, "%v", tc)
	}
}

func TestContainerAlignment(t *testing.T) {
	r := &monoRenderer{}
	content := FromLeaf[bool](NewSpace(layout.Units(10), layout.Units(20)))
	c := New[bool](NewContainer(content).
		WithWidth(layout.Fill).
		WithHeight(layout.Fill).
		WithPadding(layout.UniformPadding(5)).
		CenterX().
		CenterY())
	n, l := layoutOf(c, r, f32.Sz(100, 60))
	assert.Equal(t, f32.Sz(100, 60), n.Size())
	assert.Equal(t, f32.Rectangle{X: 45, Y: 20, Width: 10, Height: 20}, l.Child(0).Bounds())

	end := New[bool](NewContainer(content).
		WithWidth(layout.Units(50)).
		WithAlignment(layout.End, layout.Start))
	_, l = layoutOf(end, r, f32.Sz(100, 60))
	assert.Equal(t, f32.Rectangle{X: 40, Width: 10, Height: 20}, l.Child(0).Bounds())
}

func TestContainerStyle(t *testing.T) {
	r := &monoRenderer{}
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	c := New[bool](NewContainer(FromLeaf[bool](NewText("hi"))).WithStyle(ContainerStyle{Text: &white}))
	_, l := layoutOf(c, r, f32.Sz(100, 60))
	c.Draw(r, render.DefaultDefaults, l, f32.Origin, noLimit)
	// No background: only the text is drawn, in the overridden color.
	require.Equal(t, 1, r.ops.Len())
	assert.Equal(t, white, r.ops.List()[0].(op.Text).Color)
}

func TestRowFill(t *testing.T) {
	r := &monoRenderer{}
	row := New[bool](NewRow(
		FromLeaf[bool](NewSpace(layout.FillPortion(1), layout.Units(5))),
		FromLeaf[bool](NewSpace(layout.Units(10), layout.Units(5))),
		FromLeaf[bool](NewSpace(layout.FillPortion(2), layout.Units(5))),
	).WithWidth(layout.Fill).WithSpacing(5))
	_, l := layoutOf(row, r, f32.Sz(110, 10))
	var widths []float32
	for _, c := range l.Children() {
		widths = append(widths, c.Bounds().Width)
	}
	assert.Equal(t, []float32{30, 10, 60}, widths)
	assert.Equal(t, float32(50), l.Child(2).Bounds().X)
}

func newPickList(state *PickListState) *PickList[string] {
	return NewPickList(state, []string{"red", "green", "blue"}, "green", func(s string) string { return s }, PickListStyle{})
}

func TestPickListOpensAndCloses(t *testing.T) {
	r := &monoRenderer{}
	state := &PickListState{}
	pl := New[string](newPickList(state))
	n, l := layoutOf(pl, r, f32.Sz(200, 200))
	// Widest option (25) + arrow (10) + padding before it (5), padded.
	assert.Equal(t, f32.Sz(50, 20), n.Size())

	_, ok := pl.Overlay(l)
	assert.False(t, ok)

	var msgs []string
	assert.Equal(t, event.Ignored, pl.Event(press, l, f32.Pt(100, 100), r, null, &msgs))
	assert.Equal(t, event.Captured, pl.Event(press, l, f32.Pt(10, 10), r, null, &msgs))
	assert.True(t, state.IsOpen())
	assert.Equal(t, 1, state.Menu.Hovered)

	o, ok := pl.Overlay(l)
	require.True(t, ok)
	assert.Equal(t, f32.Origin, o.Position())

	// A press over the menu reaches the tree with the cursor hidden.
	assert.Equal(t, event.Captured, pl.Event(press, l, f32.Pt(-1, -1), r, null, &msgs))
	assert.True(t, state.IsOpen())
	// Any other press closes it.
	assert.Equal(t, event.Captured, pl.Event(press, l, f32.Pt(150, 150), r, null, &msgs))
	assert.False(t, state.IsOpen())
	assert.Empty(t, msgs)
}

func TestPickListMenuSelects(t *testing.T) {
	r := &monoRenderer{}
	state := &PickListState{Menu: overlay.MenuState{Open: true}}
	pl := New[string](newPickList(state))
	_, l := layoutOf(pl, r, f32.Sz(200, 200))
	o, ok := pl.Overlay(l)
	require.True(t, ok)
	on := o.Layout(r, f32.Sz(200, 200))
	ol := layout.NewLayout(&on)
	// Below the 20 high target, one 20 high row per option.
	assert.Equal(t, f32.Rectangle{Y: 20, Width: 50, Height: 60}, ol.Bounds())

	var msgs []string
	st := o.Event(press, ol, f32.Pt(10, 65), r, null, &msgs)
	assert.Equal(t, event.Captured, st)
	assert.Equal(t, []string{"blue"}, msgs)
	assert.False(t, state.IsOpen())
}

func TestOverlayTranslationComposes(t *testing.T) {
	r := &monoRenderer{}
	state := &PickListState{Menu: overlay.MenuState{Open: true}}
	inner := New[string](newPickList(state)).Translate(f32.Vector{X: 1, Y: 2})
	row := New[string](NewRow(
		FromLeaf[string](NewSpace(layout.Units(30), layout.Units(5))),
		Map(inner, func(s string) string { return "mapped " + s }),
	)).Translate(f32.Vector{X: 10, Y: 20})
	_, l := layoutOf(row, r, f32.Sz(200, 200))

	o, ok := row.Overlay(l)
	require.True(t, ok)
	// The pick list sits at x=30; both translations apply.
	assert.Equal(t, f32.Pt(41, 22), o.Position())

	on := o.Layout(r, f32.Sz(200, 200))
	ol := layout.NewLayout(&on)
	var msgs []string
	o.Event(press, ol, f32.Pt(50, 50), r, null, &msgs)
	assert.Equal(t, []string{"mapped red"}, msgs)
}
