// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"strings"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"latticeui.org/f32"
	"latticeui.org/font"
)

// Shaper lays out text from a collection of font faces.
//
// If a font matches no face in the collection, Shaper falls back to
// the closest face of the same typeface, then to the first face.
//
// Layout results are cached and re-used if possible. A Shaper is not
// safe for concurrent use.
type Shaper struct {
	fonts []font.Font
	faces map[font.Font]font.Face
	sized faceCache
	cache layoutCache
}

// maxFaces bounds the number of sized faces kept open.
const maxFaces = 64

// NewShaper constructs a shaper for collection. The first face is the
// default.
func NewShaper(collection []font.FontFace) *Shaper {
	s := &Shaper{
		faces: make(map[font.Font]font.Face),
		sized: faceCache{capacity: maxFaces},
	}
	for _, f := range collection {
		if _, exists := s.faces[f.Font]; exists {
			continue
		}
		s.fonts = append(s.fonts, f.Font)
		s.faces[f.Font] = f.Face
	}
	return s
}

// Layout breaks str into lines no wider than maxWidth. Explicit
// newlines always break; otherwise lines break between words. A word
// wider than maxWidth is kept on a line of its own.
func (s *Shaper) Layout(fnt font.Font, size float32, str string, maxWidth float32) Layout {
	key := layoutKey{font: fnt, size: size, maxWidth: maxWidth, str: str}
	if l, ok := s.cache.Get(key); ok {
		return l
	}
	face := s.Face(fnt, size)
	if face == nil {
		return Layout{}
	}
	l := layoutText(face, str, maxWidth)
	s.cache.Put(key, l)
	return l
}

// Measure returns the size of str laid out inside bounds.
func (s *Shaper) Measure(str string, size float32, fnt font.Font, bounds f32.Size) f32.Size {
	return s.Layout(fnt, size, str, bounds.Width).Size()
}

// Face returns the face closest to fnt at size, or nil if the
// collection is empty or size is not positive.
func (s *Shaper) Face(fnt font.Font, size float32) xfont.Face {
	if len(s.fonts) == 0 || size <= 0 {
		return nil
	}
	fnt = s.resolve(fnt)
	key := sizedKey{font: fnt, size: size}
	if f, ok := s.sized.Get(key); ok {
		return f
	}
	f, err := s.faces[fnt].Face(size)
	if err != nil {
		return nil
	}
	if old, evicted := s.sized.Put(key, f); evicted {
		old.Close()
	}
	return f
}

// resolve returns the collection font used for fnt.
func (s *Shaper) resolve(fnt font.Font) font.Font {
	def := s.fonts[0]
	if fnt.Typeface == "" {
		fnt.Typeface = def.Typeface
	}
	if f, ok := font.Closest(fnt, s.fonts); ok {
		return f
	}
	fnt.Style = font.Regular
	if f, ok := font.Closest(fnt, s.fonts); ok {
		return f
	}
	fnt.Typeface = def.Typeface
	if f, ok := font.Closest(fnt, s.fonts); ok {
		return f
	}
	return def
}

func layoutText(face xfont.Face, str string, maxWidth float32) Layout {
	m := face.Metrics()
	l := Layout{
		Ascent:     fixedToFloat(m.Ascent),
		LineHeight: fixedToFloat(m.Height),
	}
	limit := floatToFixed(maxWidth)
	space := xfont.MeasureString(face, " ")
	for _, para := range strings.Split(str, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			l.Lines = append(l.Lines, Line{})
			continue
		}
		var (
			line  strings.Builder
			width fixed.Int26_6
		)
		for _, w := range words {
			adv := xfont.MeasureString(face, w)
			if line.Len() > 0 {
				if width+space+adv <= limit {
					line.WriteByte(' ')
					line.WriteString(w)
					width += space + adv
					continue
				}
				l.Lines = append(l.Lines, Line{Text: line.String(), Width: fixedToFloat(width)})
				line.Reset()
			}
			line.WriteString(w)
			width = adv
		}
		l.Lines = append(l.Lines, Line{Text: line.String(), Width: fixedToFloat(width)})
	}
	return l
}

func fixedToFloat(i fixed.Int26_6) float32 {
	return float32(i) / 64
}

func floatToFixed(f float32) fixed.Int26_6 {
	const maxFixed = fixed.Int26_6(1<<31 - 1)
	if f >= float32(maxFixed)/64 {
		return maxFixed
	}
	return fixed.Int26_6(f * 64)
}
