// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer defines mouse and touch events.
package pointer

import (
	"fmt"
	"strings"

	"latticeui.org/f32"
	"latticeui.org/io/key"
)

// Event is a pointer event. Position is in window coordinates; the
// dispatcher passes the cursor separately so that overlays can hide
// it from the widgets below them.
type Event struct {
	Kind   Kind
	Source Source
	// Buttons is the set of pressed buttons. For Press and Release it
	// is the button that changed.
	Buttons   Buttons
	Position  f32.Point
	Scroll    f32.Vector
	Modifiers key.Modifiers
}

// Kind of an Event. Kinds are bit flags so that sets of kinds print
// as "Press|Release".
type Kind uint

// Source of an Event.
type Source uint8

// Buttons is a set of mouse buttons.
type Buttons uint8

const (
	// Cancel interrupts the current gesture, typically after a lost
	// touch.
	Cancel Kind = 1 << iota
	Press
	Release
	Move
	// Enter and Leave report the pointer crossing the window edge.
	Enter
	Leave
	Scroll
)

const (
	Mouse Source = iota
	Touch
)

const (
	// ButtonPrimary is usually the left button.
	ButtonPrimary Buttons = 1 << iota
	ButtonSecondary
	// ButtonTertiary is usually the middle button or wheel.
	ButtonTertiary
)

var kindNames = [...]string{"Cancel", "Press", "Release", "Move", "Enter", "Leave", "Scroll"}

var buttonNames = [...]string{"ButtonPrimary", "ButtonSecondary", "ButtonTertiary"}

// IsPrimaryPress reports whether e presses the primary button or
// touches the screen.
func (e Event) IsPrimaryPress() bool {
	return e.Kind == Press && e.primary()
}

// IsPrimaryRelease reports whether e releases the primary button or
// lifts a finger.
func (e Event) IsPrimaryRelease() bool {
	return e.Kind == Release && e.primary()
}

func (e Event) primary() bool {
	return e.Source == Touch || e.Buttons.Contain(ButtonPrimary)
}

func (e Event) String() string {
	return fmt.Sprintf("%v %v %v at %v", e.Source, e.Kind, e.Buttons, e.Position)
}

func (k Kind) String() string {
	return flags(uint(k), kindNames[:], "Kind")
}

func (s Source) String() string {
	switch s {
	case Mouse:
		return "Mouse"
	case Touch:
		return "Touch"
	default:
		panic("unknown source")
	}
}

// Contain reports whether b contains all of buttons.
func (b Buttons) Contain(buttons Buttons) bool {
	return b&buttons == buttons
}

func (b Buttons) String() string {
	return flags(uint(b), buttonNames[:], "Buttons")
}

// flags joins the names of the bits set in v with '|'.
func flags(v uint, names []string, typ string) string {
	var s strings.Builder
	for i, n := range names {
		if v&(1<<i) == 0 {
			continue
		}
		if s.Len() > 0 {
			s.WriteByte('|')
		}
		s.WriteString(n)
	}
	if v>>len(names) != 0 {
		panic("unknown " + typ)
	}
	return s.String()
}

func (Event) ImplementsEvent() {}
