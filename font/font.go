// SPDX-License-Identifier: Unlicense OR MIT

/*
Package font provides type describing font faces attributes.
*/
package font

import (
	"golang.org/x/image/font"
)

// A FontFace is a Font and a matching Face.
type FontFace struct {
	Font Font
	Face Face
}

// Style is the font style.
type Style int

// Weight is a font weight, in CSS units subtracted 400 so the zero value
// is normal text weight.
type Weight int

// Font specify a particular typeface variant, style and weight.
type Font struct {
	Typeface Typeface
	Variant  Variant
	Style    Style
	// Weight is the text weight. If zero, Normal is used instead.
	Weight Weight
}

// Face is an opaque handle to a typeface that can be instantiated at
// any size.
type Face interface {
	// Face returns a face of size pixels per em. The returned face
	// is not safe for concurrent use.
	Face(size float32) (font.Face, error)
}

// Typeface identifies a particular typeface design. The empty
// string denotes the default typeface.
type Typeface string

// Variant denotes a typeface variant such as "Mono" or "Smallcaps".
type Variant string

const (
	Regular Style = iota
	Italic
)

const (
	Thin       Weight = -300
	ExtraLight Weight = -200
	Light      Weight = -100
	Normal     Weight = 0
	Medium     Weight = 100
	SemiBold   Weight = 200
	Bold       Weight = 300
	ExtraBold  Weight = 400
	Black      Weight = 500
)

// Closest returns the closest Font in available to lookup. Typeface,
// Variant and Style must match; among those the nearest weight wins,
// the lighter one on ties.
func Closest(lookup Font, available []Font) (Font, bool) {
	found := false
	var match Font
	for _, cf := range available {
		if cf == lookup {
			return lookup, true
		}
		if cf.Typeface != lookup.Typeface || cf.Variant != lookup.Variant || cf.Style != lookup.Style {
			continue
		}
		if !found {
			found = true
			match = cf
			continue
		}
		cDist := weightDistance(lookup.Weight, cf.Weight)
		mDist := weightDistance(lookup.Weight, match.Weight)
		if cDist < mDist {
			match = cf
		} else if cDist == mDist && cf.Weight < match.Weight {
			match = cf
		}
	}
	return match, found
}

func weightDistance(wa Weight, wb Weight) int {
	diff := int(wa) - int(wb)
	if diff < 0 {
		return -diff
	}
	return diff
}

func (f Font) String() string {
	tf := string(f.Typeface)
	if tf == "" {
		tf = "default"
	}
	if f.Variant != "" {
		tf += " " + string(f.Variant)
	}
	return tf + " " + f.Weight.String() + " " + f.Style.String()
}

func (s Style) String() string {
	switch s {
	case Regular:
		return "Regular"
	case Italic:
		return "Italic"
	default:
		panic("invalid Style")
	}
}

func (w Weight) String() string {
	switch w {
	case Thin:
		return "Thin"
	case ExtraLight:
		return "ExtraLight"
	case Light:
		return "Light"
	case Normal:
		return "Normal"
	case Medium:
		return "Medium"
	case SemiBold:
		return "SemiBold"
	case Bold:
		return "Bold"
	case ExtraBold:
		return "ExtraBold"
	case Black:
		return "Black"
	default:
		panic("invalid Weight")
	}
}
