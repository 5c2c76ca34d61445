// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"latticeui.org/f32"
	"latticeui.org/render"
)

// config is read from LATTICE_* environment variables, overridden by
// command line flags.
type config struct {
	width, height int
	textSize      uint
	background    color.NRGBA
	output        string
	otlpEndpoint  string
	debug         bool
	clicks        points
}

// points is a flag.Value collecting x,y pairs.
type points []f32.Point

func (p *points) String() string {
	var strs []string
	for _, pt := range *p {
		strs = append(strs, fmt.Sprintf("%g,%g", pt.X, pt.Y))
	}
	return strings.Join(strs, " ")
}

func (p *points) Set(s string) error {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return fmt.Errorf("invalid point %q, want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 32)
	if err != nil {
		return fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 32)
	if err != nil {
		return fmt.Errorf("invalid point %q: %w", s, err)
	}
	*p = append(*p, f32.Pt(float32(x), float32(y)))
	return nil
}

// parseColor parses a color name from the CSS palette or a #rrggbb
// value.
func parseColor(s string) (color.NRGBA, error) {
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return render.NRGBA(c), nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return render.RGB(uint32(v)), nil
}

func envInt(name string, def int) (int, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}

func envString(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func loadConfig(args []string) (config, error) {
	var cfg config
	width, err := envInt("LATTICE_WIDTH", 480)
	if err != nil {
		return cfg, err
	}
	height, err := envInt("LATTICE_HEIGHT", 360)
	if err != nil {
		return cfg, err
	}
	textSize, err := envInt("LATTICE_TEXT_SIZE", 20)
	if err != nil {
		return cfg, err
	}

	fs := flag.NewFlagSet("latticeshot", flag.ContinueOnError)
	fs.IntVar(&cfg.width, "width", width, "window width in pixels")
	fs.IntVar(&cfg.height, "height", height, "window height in pixels")
	fs.UintVar(&cfg.textSize, "textsize", uint(textSize), "default text size")
	bg := fs.String("bg", envString("LATTICE_BACKGROUND", "whitesmoke"), "background color name or #rrggbb")
	fs.StringVar(&cfg.output, "o", envString("LATTICE_OUTPUT", "screenshot.png"), "output PNG file")
	fs.StringVar(&cfg.otlpEndpoint, "otlp", os.Getenv("LATTICE_OTLP_ENDPOINT"), "OTLP/HTTP endpoint for frame traces")
	fs.BoolVar(&cfg.debug, "debug", false, "draw frame statistics and log at debug level")
	fs.Var(&cfg.clicks, "click", "press at x,y before the screenshot (repeatable)")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.width <= 0 || cfg.height <= 0 {
		return cfg, fmt.Errorf("invalid size %dx%d", cfg.width, cfg.height)
	}
	if cfg.textSize == 0 || cfg.textSize > 0xffff {
		return cfg, fmt.Errorf("invalid text size %d", cfg.textSize)
	}
	if cfg.output == "" {
		return cfg, errors.New("specify an output file")
	}
	cfg.background, err = parseColor(*bg)
	if err != nil {
		return cfg, err
	}
	return cfg, nil
}
