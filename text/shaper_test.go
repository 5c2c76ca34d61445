// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"latticeui.org/f32"
	"latticeui.org/font"
	"latticeui.org/font/gofont"
	"latticeui.org/layout"
)

func TestWrapping(t *testing.T) {
	s := NewShaper(gofont.Collection())
	fnt := font.Font{}
	one := s.Layout(fnt, 16, "hello world", layout.Inf)
	require.Len(t, one.Lines, 1)
	assert.Equal(t, "hello world", one.Lines[0].Text)

	hello := s.Layout(fnt, 16, "hello", layout.Inf).Size().Width
	two := s.Layout(fnt, 16, "hello world", hello+1)
	require.Len(t, two.Lines, 2)
	assert.Equal(t, "hello", two.Lines[0].Text)
	assert.Equal(t, "world", two.Lines[1].Text)
	assert.Equal(t, 2*two.LineHeight, two.Size().Height)

	// A word wider than the limit stays on its own line.
	narrow := s.Layout(fnt, 16, "hello world", 1)
	require.Len(t, narrow.Lines, 2)
	assert.Greater(t, narrow.Size().Width, float32(1))
}

func TestNewlines(t *testing.T) {
	s := NewShaper(gofont.Collection())
	l := s.Layout(font.Font{}, 12, "a\n\nb", layout.Inf)
	require.Len(t, l.Lines, 3)
	assert.Equal(t, "", l.Lines[1].Text)
	assert.Equal(t, float32(0), l.Lines[1].Width)
}

func TestMeasureGrowsWithSize(t *testing.T) {
	s := NewShaper(gofont.Collection())
	bounds := f32.Sz(layout.Inf, layout.Inf)
	small := s.Measure("Label", 10, font.Font{}, bounds)
	large := s.Measure("Label", 20, font.Font{}, bounds)
	assert.Greater(t, large.Width, small.Width)
	assert.Greater(t, large.Height, small.Height)
}

func TestFontFallback(t *testing.T) {
	s := NewShaper(gofont.Collection())
	bounds := f32.Sz(layout.Inf, layout.Inf)
	regular := s.Measure("iiii", 16, font.Font{}, bounds)
	unknown := s.Measure("iiii", 16, font.Font{Typeface: "Unknown"}, bounds)
	mono := s.Measure("iiii", 16, font.Font{Variant: "Mono"}, bounds)
	assert.Equal(t, regular, unknown)
	assert.Greater(t, mono.Width, regular.Width)
}

func TestLayoutCached(t *testing.T) {
	s := NewShaper(gofont.Regular())
	a := s.Layout(font.Font{}, 16, "cached", 100)
	b := s.Layout(font.Font{}, 16, "cached", 100)
	assert.Equal(t, a, b)
	assert.Equal(t, 1, s.cache.Len())
	s.Layout(font.Font{}, 16, "cached", 50)
	assert.Equal(t, 2, s.cache.Len())
}

func TestEmptyCollection(t *testing.T) {
	s := NewShaper(nil)
	assert.Equal(t, f32.Size{}, s.Measure("text", 16, font.Font{}, f32.Sz(100, 100)))
	assert.Nil(t, s.Face(font.Font{}, 16))
}
