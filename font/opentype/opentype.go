// SPDX-License-Identifier: Unlicense OR MIT

// Package opentype loads OpenType and TrueType font files into
// font.Face values.
package opentype

import (
	"errors"
	"fmt"
	"strings"

	giofont "latticeui.org/font"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Face is a parsed font. It is safe for concurrent use; the sized
// faces it returns are not.
type Face struct {
	font      *sfnt.Font
	family    string
	subfamily string
}

// Parse constructs a Face from source bytes.
func Parse(src []byte) (Face, error) {
	f, err := opentype.Parse(src)
	if err != nil {
		return Face{}, fmt.Errorf("failed parsing truetype font: %w", err)
	}
	var buf sfnt.Buffer
	family, err := f.Name(&buf, sfnt.NameIDFamily)
	if err != nil {
		return Face{}, fmt.Errorf("opentype: reading family name: %w", err)
	}
	sub, err := f.Name(&buf, sfnt.NameIDSubfamily)
	if err != nil && !errors.Is(err, sfnt.ErrNotFound) {
		return Face{}, fmt.Errorf("opentype: reading subfamily name: %w", err)
	}
	return Face{font: f, family: family, subfamily: sub}, nil
}

// Face implements font.Face. Sizes are in pixels per em.
func (f Face) Face(size float32) (font.Face, error) {
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("opentype: sizing %q at %g: %w", f.family, size, err)
	}
	return face, nil
}

// Font returns a giofont.Font with metadata inferred from the
// font's name table.
// The Variant is detected from the family name and only recognizes
// "Mono" and "Smallcaps".
func (f Face) Font() giofont.Font {
	typeface := f.family
	var fnt giofont.Font
	for _, v := range []string{"Mono", "Smallcaps"} {
		if trimmed, ok := strings.CutSuffix(typeface, " "+v); ok {
			typeface = trimmed
			fnt.Variant = giofont.Variant(v)
		}
	}
	for _, w := range []struct {
		name   string
		weight giofont.Weight
	}{
		{"Medium", giofont.Medium},
		{"Bold", giofont.Bold},
		{"Light", giofont.Light},
	} {
		if trimmed, ok := strings.CutSuffix(typeface, " "+w.name); ok {
			typeface = trimmed
			fnt.Weight = w.weight
		}
		if strings.Contains(f.subfamily, w.name) {
			fnt.Weight = w.weight
		}
	}
	if strings.Contains(f.subfamily, "Italic") {
		fnt.Style = giofont.Italic
	}
	fnt.Typeface = giofont.Typeface(typeface)
	return fnt
}
