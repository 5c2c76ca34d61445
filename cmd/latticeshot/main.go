// SPDX-License-Identifier: Unlicense OR MIT

// Command latticeshot renders the demo application to a PNG file
// without a display. Presses given with -click are replayed first.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"latticeui.org/f32"
	"latticeui.org/font/gofont"
	"latticeui.org/gpu/headless"
	"latticeui.org/internal/demo"
	"latticeui.org/io/clipboard"
	"latticeui.org/io/event"
	"latticeui.org/io/pointer"
	"latticeui.org/render"
	"latticeui.org/text"
	"latticeui.org/ui"
	"latticeui.org/widget/material"
)

var log = logrus.New()

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file, using the environment")
	}
	cfg, err := loadConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "latticeshot: %v\n", err)
		os.Exit(2)
	}
	if cfg.debug {
		log.SetLevel(logrus.DebugLevel)
		logrus.SetLevel(logrus.DebugLevel)
	}
	if err := mainErr(context.Background(), cfg); err != nil {
		log.WithError(err).Error("latticeshot failed")
		os.Exit(1)
	}
}

func mainErr(ctx context.Context, cfg config) (err error) {
	shutdown, err := setupTracing(ctx, cfg.otlpEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		if serr := shutdown(context.Background()); serr != nil && err == nil {
			err = serr
		}
	}()
	tracer := otel.Tracer("latticeui.org/cmd/latticeshot")

	th := material.NewTheme()
	th.TextSize = uint16(cfg.textSize)
	shaper := text.NewShaper(gofont.Collection())
	canvas := render.NewCanvas(shaper, th.TextSize)
	bounds := f32.Sz(float32(cfg.width), float32(cfg.height))
	state := demo.New()

	var (
		cache ui.Cache
		msgs  []demo.Msg
	)
	for i, pt := range cfg.clicks {
		_, span := tracer.Start(ctx, "click", trace.WithAttributes(attribute.Int("click", i)))
		u := ui.Build(state.View(th, demo.Pixels), bounds, cache, canvas)
		press := pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonPrimary, Position: pt}
		release := press
		release.Kind = pointer.Release
		st := u.Update([]event.Event{press, release}, pt, canvas, clipboard.Null{}, &msgs)
		for _, m := range msgs {
			state.Update(m)
		}
		log.WithFields(logrus.Fields{
			"click":    i,
			"at":       pt,
			"status":   st[0],
			"messages": len(msgs),
		}).Info("replayed press")
		msgs = msgs[:0]
		cache = u.IntoCache()
		span.End()
	}

	frameCtx, frame := tracer.Start(ctx, "frame")
	_, span := tracer.Start(frameCtx, "build")
	u := ui.Build(state.View(th, demo.Pixels), bounds, cache, canvas)
	span.End()

	_, span = tracer.Start(frameCtx, "draw")
	canvas.Ops.Reset()
	u.Draw(canvas, th.Defaults(), f32.Pt(-1, -1))
	span.End()

	_, span = tracer.Start(frameCtx, "present")
	w := headless.NewWindow(headless.Settings{Shaper: shaper})
	w.Resize(image.Pt(cfg.width, cfg.height))
	var debug []string
	if cfg.debug {
		debug = append(debug,
			fmt.Sprintf("primitives: %d", canvas.Ops.Len()),
			fmt.Sprintf("layout: %016x", u.Hash()),
		)
	}
	w.Present(&canvas.Ops, cfg.background, f32.Rectangle{Width: bounds.Width, Height: bounds.Height}, debug...)
	shot := w.Screenshot()
	span.End()
	frame.End()

	f, err := os.Create(cfg.output)
	if err != nil {
		return fmt.Errorf("latticeshot: %w", err)
	}
	if err := shot.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("latticeshot: %w", err)
	}
	log.WithField("file", cfg.output).Info("screenshot written")
	return nil
}
