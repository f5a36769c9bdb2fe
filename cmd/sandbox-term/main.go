// Sandbox-term runs the bouncing circle in a terminal. Left and Right
// reverse the direction; Escape or Ctrl+C quits.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/phanxgames/sandbox"
	"github.com/phanxgames/sandbox/term"
)

func main() {
	var (
		width  = flag.Float64("width", 800, "logical width; also the wraparound boundary")
		height = flag.Float64("height", 400, "logical height")
		radius = flag.Float64("radius", 100, "circle radius in logical pixels")
		ups    = flag.Float64("ups", 10, "motion updates per second")
		step   = flag.Float64("step", 10, "logical pixels per update; negative starts leftward")
		fg     = flag.String("color", "blue", "circle color name")
		bg     = flag.String("background", "black", "background color name")
		fps    = flag.Int("fps", 30, "terminal frames per second")
	)
	flag.Parse()

	circle, err := sandbox.ColorFromName(*fg)
	if err != nil {
		log.Fatalf("Invalid -color: %s.", err)
	}
	background, err := sandbox.ColorFromName(*bg)
	if err != nil {
		log.Fatalf("Invalid -background: %s.", err)
	}

	app, err := sandbox.NewApp(sandbox.AppConfig{
		Width:            *width,
		Height:           *height,
		Radius:           *radius,
		UpdatesPerSecond: *ups,
		Step:             *step,
		Color:            circle,
		Background:       background,
	}, sandbox.SystemClock)
	if err != nil {
		log.Fatalf("Failed to create app: %s.", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := app.Config()
	err = term.Run(ctx, app, term.Config{Width: cfg.Width, Height: cfg.Height, FPS: *fps})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Failed to run: %s.", err)
	}
}
