// SPDX-License-Identifier: Unlicense OR MIT

// Package system contains window events. Widgets usually ignore them.
package system

import (
	"latticeui.org/f32"
)

// A ResizeEvent reports new window bounds. The user interface must
// be built again for the new size.
type ResizeEvent struct {
	Size f32.Size
}

// A FocusEvent reports the window gaining or losing keyboard focus.
type FocusEvent struct {
	Focused bool
}

func (ResizeEvent) ImplementsEvent() {}
func (FocusEvent) ImplementsEvent()  {}
