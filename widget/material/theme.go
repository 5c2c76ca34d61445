// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image/color"

	"golang.org/x/image/colornames"

	"latticeui.org/render"
)

// Palette contains the minimal set of colors that a widget may need to
// draw itself.
type Palette struct {
	// Bg is the background color atop which content is currently being
	// drawn.
	Bg color.NRGBA

	// Fg is a color suitable for drawing on top of Bg.
	Fg color.NRGBA

	// ContrastBg is a color used to draw attention to active,
	// important, interactive widgets such as buttons.
	ContrastBg color.NRGBA

	// ContrastFg is a color suitable for content drawn on top of
	// ContrastBg.
	ContrastFg color.NRGBA
}

type Theme struct {
	Palette
	// TextSize is the default text size of the renderer.
	TextSize uint16
}

// NewTheme returns the default light theme.
func NewTheme() *Theme {
	return &Theme{
		Palette: Palette{
			Bg:         render.NRGBA(colornames.White),
			Fg:         render.NRGBA(colornames.Black),
			ContrastBg: render.RGB(0x3f51b5),
			ContrastFg: render.NRGBA(colornames.White),
		},
		TextSize: 20,
	}
}

// Defaults returns the inherited draw values of th.
func (th *Theme) Defaults() render.Defaults {
	return render.Defaults{Text: render.TextDefaults{Color: th.Fg}}
}

// mulAlpha applies the alpha to the color.
func mulAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = uint8(uint32(c.A) * uint32(alpha) / 0xFF)
	return c
}
