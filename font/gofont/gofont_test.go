// SPDX-License-Identifier: Unlicense OR MIT

package gofont

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"latticeui.org/font"
)

func TestCollection(t *testing.T) {
	c := Collection()
	require.NotEmpty(t, c)
	assert.Equal(t, font.Font{Typeface: "Go"}, c[0].Font)
	var fonts []font.Font
	for _, f := range c {
		fonts = append(fonts, f.Font)
	}
	_, ok := font.Closest(font.Font{Typeface: "Go", Variant: "Mono"}, fonts)
	assert.True(t, ok)

	r := Regular()
	require.Len(t, r, 1)
	_ = append(r, font.FontFace{})
	assert.Equal(t, font.Font{Typeface: "Go", Weight: font.Bold}, Collection()[1].Font)
}
