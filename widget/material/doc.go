// SPDX-License-Identifier: Unlicense OR MIT

// Package material implements the Material design.
//
// To maximize reusability and visual flexibility, the package only
// computes styles. A Theme holds the palette and every style
// constructor derives a widget style from it:
//
//	th := material.NewTheme()
//	cb := widget.NewCheckbox(checked, "Mute", Mute, material.Checkbox(th))
//
// Styles are plain values and may be adjusted before use.
package material
