// SPDX-License-Identifier: Unlicense OR MIT

package font

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosest(t *testing.T) {
	available := []Font{
		{Typeface: "Go"},
		{Typeface: "Go", Weight: Bold},
		{Typeface: "Go", Weight: Medium},
		{Typeface: "Go", Style: Italic},
		{Typeface: "Go", Variant: "Mono"},
	}
	tests := []struct {
		lookup Font
		want   Font
		ok     bool
	}{
		{Font{Typeface: "Go", Weight: Bold}, Font{Typeface: "Go", Weight: Bold}, true},
		{Font{Typeface: "Go", Weight: SemiBold}, Font{Typeface: "Go", Weight: Medium}, true},
		{Font{Typeface: "Go", Weight: ExtraBold}, Font{Typeface: "Go", Weight: Bold}, true},
		{Font{Typeface: "Go", Variant: "Mono", Weight: Bold}, Font{Typeface: "Go", Variant: "Mono"}, true},
		{Font{Typeface: "Go", Variant: "Smallcaps"}, Font{}, false},
	}
	for _, tc := range tests {
		got, ok := Closest(tc.lookup, available)
		assert.Equal(t, tc.ok, ok, "%v", tc.lookup)
		if ok {
			assert.Equal(t, tc.want, got, "%v", tc.lookup)
		}
	}
}

func TestFontString(t *testing.T) {
	assert.Equal(t, "default Normal Regular", Font{}.String())
	assert.Equal(t, "Go Mono Bold Italic", Font{Typeface: "Go", Variant: "Mono", Weight: Bold, Style: Italic}.String())
}
