// SPDX-License-Identifier: Unlicense OR MIT

// Package gofont exports the Go fonts as font.FontFace collections.
//
// See https://blog.golang.org/go-fonts for a description of the
// fonts, and the golang.org/x/image/font/gofont packages for the
// font data.
package gofont

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"

	"latticeui.org/font"
	"latticeui.org/font/opentype"
)

var (
	once       sync.Once
	collection []font.FontFace
)

var faces = []struct {
	font font.Font
	ttf  []byte
}{
	{font.Font{}, goregular.TTF},
	{font.Font{Weight: font.Bold}, gobold.TTF},
	{font.Font{Style: font.Italic}, goitalic.TTF},
	{font.Font{Style: font.Italic, Weight: font.Bold}, gobolditalic.TTF},
	{font.Font{Weight: font.Medium}, gomedium.TTF},
	{font.Font{Variant: "Mono"}, gomono.TTF},
	{font.Font{Variant: "Mono", Weight: font.Bold}, gomonobold.TTF},
}

// Collection returns the Go font faces. The regular face is first
// and serves as the default.
func Collection() []font.FontFace {
	once.Do(func() {
		for _, f := range faces {
			face, err := opentype.Parse(f.ttf)
			if err != nil {
				panic(fmt.Errorf("failed to parse font: %v", err))
			}
			fnt := f.font
			fnt.Typeface = "Go"
			collection = append(collection, font.FontFace{Font: fnt, Face: face})
		}
		// Ensure that any outside appends will not reuse the backing store.
		n := len(collection)
		collection = collection[:n:n]
	})
	return collection
}

// Regular returns a collection of only the Go regular font face.
func Regular() []font.FontFace {
	return Collection()[:1:1]
}
