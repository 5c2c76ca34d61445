// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"latticeui.org/f32"
)

func clearEnv(t *testing.T) {
	for _, name := range []string{
		"LATTICE_WIDTH", "LATTICE_HEIGHT", "LATTICE_TEXT_SIZE",
		"LATTICE_BACKGROUND", "LATTICE_OUTPUT", "LATTICE_OTLP_ENDPOINT",
	} {
		t.Setenv(name, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := loadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, 480, cfg.width)
	assert.Equal(t, "screenshot.png", cfg.output)
	assert.Equal(t, color.NRGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff}, cfg.background)
}

func TestLoadConfigEnvAndFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv("LATTICE_WIDTH", "800")
	t.Setenv("LATTICE_HEIGHT", "600")
	t.Setenv("LATTICE_BACKGROUND", "#102030")
	cfg, err := loadConfig([]string{"-height", "100", "-click", "10,20", "-click", "1.5, 2"})
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.width)
	assert.Equal(t, 100, cfg.height)
	assert.Equal(t, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, cfg.background)
	assert.Equal(t, points{f32.Pt(10, 20), f32.Pt(1.5, 2)}, cfg.clicks)
}

func TestLoadConfigErrors(t *testing.T) {
	clearEnv(t)
	t.Setenv("LATTICE_WIDTH", "wide")
	_, err := loadConfig(nil)
	assert.ErrorContains(t, err, "LATTICE_WIDTH")

	t.Setenv("LATTICE_WIDTH", "")
	for _, args := range [][]string{
		{"-width", "0"},
		{"-textsize", "0"},
		{"-bg", "nocolor"},
		{"-click", "10"},
		{"-o", ""},
	} {
		_, err := loadConfig(args)
		assert.Error(t, err, "%v", args)
	}
}
