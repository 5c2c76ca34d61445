// SPDX-License-Identifier: Unlicense OR MIT

// Package demo is a small task list application shared by the demo
// commands.
package demo

import (
	"fmt"

	"latticeui.org/layout"
	"latticeui.org/widget"
	"latticeui.org/widget/material"
)

// Msg is a message produced by the widgets of the application.
type Msg interface {
	isMsg()
}

// Toggled reports that task Index was checked or unchecked.
type Toggled struct {
	Index int
	Done  bool
}

// Picked reports that a priority was selected.
type Picked struct {
	Priority string
}

func (Toggled) isMsg() {}
func (Picked) isMsg()  {}

// Priorities are the options of the priority pick list.
var Priorities = []string{"Low", "Normal", "Urgent"}

type Task struct {
	Name string
	Done bool
}

// Metrics are the dimensions of the view, in layout units.
type Metrics struct {
	Padding  uint16
	Spacing  uint16
	Inset    uint16
	Box      uint16
	BarWidth uint16
	Bar      uint16
}

var (
	// Pixels suit a pixel renderer with 20 unit text.
	Pixels = Metrics{Padding: 10, Spacing: 10, Inset: 5, Box: 20, BarWidth: 200, Bar: 12}
	// Cells suit a character terminal.
	Cells = Metrics{Padding: 1, Spacing: 1, Inset: 0, Box: 1, BarWidth: 20, Bar: 1}
)

// State is the state of the application.
type State struct {
	Tasks    []Task
	Priority string
	pick     widget.PickListState
}

// New returns the initial state.
func New() *State {
	return &State{
		Tasks: []Task{
			{Name: "Measure text"},
			{Name: "Resolve flex"},
			{Name: "Dispatch events"},
		},
		Priority: Priorities[1],
	}
}

// Update applies msg to s.
func (s *State) Update(msg Msg) {
	switch msg := msg.(type) {
	case Toggled:
		if msg.Index >= 0 && msg.Index < len(s.Tasks) {
			s.Tasks[msg.Index].Done = msg.Done
		}
	case Picked:
		s.Priority = msg.Priority
	}
}

// Progress returns the number of finished tasks.
func (s *State) Progress() int {
	n := 0
	for _, t := range s.Tasks {
		if t.Done {
			n++
		}
	}
	return n
}

// View returns the widget tree of s.
func (s *State) View(th *material.Theme, m Metrics) widget.Element[Msg] {
	tasks := widget.NewColumn[Msg]().WithSpacing(m.Spacing)
	for i, t := range s.Tasks {
		cb := widget.NewCheckbox(t.Done, t.Name, func(done bool) bool { return done }, material.Checkbox(th)).
			WithSize(m.Box).
			WithSpacing(m.Spacing)
		tasks.Push(widget.Map(widget.New[bool](cb), func(done bool) Msg {
			return Toggled{Index: i, Done: done}
		}))
	}

	done := s.Progress()
	bar := widget.NewProgressBar(0, float32(len(s.Tasks)), float32(done), material.ProgressBar(th)).
		WithWidth(layout.Units(m.BarWidth)).
		WithHeight(layout.Units(m.Bar))
	status := widget.NewText(fmt.Sprintf("%d of %d done", done, len(s.Tasks)))

	priority := widget.NewPickList(&s.pick, Priorities, s.Priority, func(p string) Msg {
		return Picked{Priority: p}
	}, material.PickList(th)).WithPadding(layout.UniformPadding(m.Inset))

	content := widget.NewColumn(
		widget.FromLeaf[Msg](widget.NewText("Tasks")),
		widget.New[Msg](tasks),
		widget.New[Msg](widget.NewRow(
			widget.FromLeaf[Msg](bar),
			widget.FromLeaf[Msg](status),
		).WithSpacing(m.Spacing).WithAlignItems(layout.Center)),
		widget.New[Msg](widget.NewRow(
			widget.FromLeaf[Msg](widget.NewText("Priority")),
			widget.New[Msg](priority),
		).WithSpacing(m.Spacing).WithAlignItems(layout.Center)),
	).WithSpacing(m.Spacing)

	card := widget.NewContainer(widget.New[Msg](content)).
		WithPadding(layout.UniformPadding(m.Padding)).
		WithStyle(material.Card(th))
	return widget.New[Msg](widget.NewContainer(widget.New[Msg](card)).
		WithWidth(layout.Fill).
		WithHeight(layout.Fill).
		CenterX().
		CenterY())
}
