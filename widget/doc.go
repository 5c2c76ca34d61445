// SPDX-License-Identifier: Unlicense OR MIT

/*
Package widget implements the widget contract and common user
interface controls.

A widget sizes itself under layout.Limits, handles input events, draws
through a render.Renderer and writes the fields affecting its layout to
a layout.Hasher. Widgets producing messages of type M implement
Widget[M]; Element[M] owns a widget and is what containers hold.

Widgets that never produce messages, such as Space or Text, implement
Leaf and are wrapped with FromLeaf:

	row := widget.NewRow[Message]().
		WithSpacing(10).
		Push(widget.FromLeaf[Message](widget.NewText("Volume"))).
		Push(widget.New[Message](widget.NewCheckbox(muted, "Mute", Mute)))

Persistent interaction state, such as whether a pick list is open, is
owned by the application and passed to constructors by pointer.
*/
package widget
