// SPDX-License-Identifier: Unlicense OR MIT

// Package key defines keyboard and text input events.
package key

import (
	"fmt"
	"strings"
)

// Event reports a press or release of a named key.
type Event struct {
	Name      Name
	Modifiers Modifiers
	State     State
}

// EditEvent carries text entered by the user. Printable keys arrive
// as EditEvents rather than Events.
type EditEvent struct {
	Text string
}

// State of a key.
type State uint8

const (
	Press State = iota
	Release
)

// Modifiers is a set of modifier keys.
type Modifiers uint32

const (
	ModCtrl Modifiers = 1 << iota
	// ModCommand is the command key of Apple keyboards.
	ModCommand
	ModShift
	// ModAlt is the alt key, or option on Apple keyboards.
	ModAlt
	ModSuper
)

// Name identifies a key. Letters use their upper case form.
type Name string

const (
	NameLeftArrow      Name = "←"
	NameRightArrow     Name = "→"
	NameUpArrow        Name = "↑"
	NameDownArrow      Name = "↓"
	NameReturn         Name = "⏎"
	NameEscape         Name = "⎋"
	NameHome           Name = "⇱"
	NameEnd            Name = "⇲"
	NameDeleteBackward Name = "⌫"
	NameDeleteForward  Name = "⌦"
	NamePageUp         Name = "⇞"
	NamePageDown       Name = "⇟"
	NameTab            Name = "Tab"
	NameSpace          Name = "Space"
	NameCtrl           Name = "Ctrl"
	NameShift          Name = "Shift"
	NameAlt            Name = "Alt"
	NameSuper          Name = "Super"
	NameCommand        Name = "⌘"
)

var modifierNames = []struct {
	mod  Modifiers
	name Name
}{
	{ModCtrl, NameCtrl},
	{ModCommand, NameCommand},
	{ModShift, NameShift},
	{ModAlt, NameAlt},
	{ModSuper, NameSuper},
}

// Contain reports whether m contains every modifier of m2.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

// String joins the modifier names with '-', in a fixed order.
func (m Modifiers) String() string {
	var b strings.Builder
	for _, n := range modifierNames {
		if !m.Contain(n.mod) {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('-')
		}
		b.WriteString(string(n.name))
	}
	return b.String()
}

func (s State) String() string {
	switch s {
	case Press:
		return "Press"
	case Release:
		return "Release"
	default:
		panic("invalid State")
	}
}

// String formats e like "Ctrl-Shift+Tab Press".
func (e Event) String() string {
	if e.Modifiers == 0 {
		return fmt.Sprintf("%s %v", e.Name, e.State)
	}
	return fmt.Sprintf("%v+%s %v", e.Modifiers, e.Name, e.State)
}

func (Event) ImplementsEvent()     {}
func (EditEvent) ImplementsEvent() {}
