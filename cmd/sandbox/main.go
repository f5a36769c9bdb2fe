// Sandbox opens an 800x400 window and bounces a blue circle horizontally,
// wrapping at the right edge. Left and Right reverse the direction; Escape
// quits.
package main

import (
	"flag"
	"log"

	"github.com/yohamta/donburi"

	"github.com/phanxgames/sandbox"
	"github.com/phanxgames/sandbox/audio"
	"github.com/phanxgames/sandbox/ecs"
	"github.com/phanxgames/sandbox/window"
)

const windowTitle = "SANDBOX"

func main() {
	var (
		width      = flag.Float64("width", 800, "screen width in pixels; also the wraparound boundary")
		height     = flag.Float64("height", 400, "screen height in pixels")
		radius     = flag.Float64("radius", 100, "circle radius")
		ups        = flag.Float64("ups", 10, "motion updates per second")
		step       = flag.Float64("step", 10, "pixels per update; negative starts leftward")
		fg         = flag.String("color", "blue", "circle color name")
		bg         = flag.String("background", "black", "background color name")
		smooth     = flag.Bool("smooth", false, "ease the circle between updates")
		easing     = flag.String("ease", "linear", "easing used by -smooth, e.g. outQuad or outBounce")
		tps        = flag.Int("tps", 0, "engine ticks per second; 0 keeps the default")
		sound      = flag.Bool("sound", false, "play a blip on wrap and turn")
		debug      = flag.Bool("debug", false, "log motion events to stderr")
		fps        = flag.Bool("fps", false, "show the position and FPS overlay")
		scriptPath = flag.String("script", "", "JSON input script to replay, then exit")
		shotDir    = flag.String("screenshots", "screenshots", "directory for scripted screenshots")
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

	easeFn, err := sandbox.EaseFromName(*easing)
	if err != nil {
		log.Fatalf("Invalid -ease: %s.", err)
	}

	app, err := sandbox.NewApp(sandbox.AppConfig{
		Width:            *width,
		Height:           *height,
		Radius:           *radius,
		UpdatesPerSecond: *ups,
		Step:             *step,
		Color:            circle,
		Background:       background,
		Smooth:           *smooth,
		Ease:             easeFn,
		Debug:            *debug,
	}, sandbox.SystemClock)
	if err != nil {
		log.Fatalf("Failed to create app: %s.", err)
	}

	if *sound {
		cue, closeSpeaker, err := audio.OpenSpeaker(audio.DefaultConfig())
		if err != nil {
			log.Fatalf("Failed to open speaker: %s.", err)
		}
		defer closeSpeaker()
		app.SetCue(cue)
	}

	if *debug {
		world := donburi.NewWorld()
		ecs.MotionEventType.Subscribe(world, func(w donburi.World, ev sandbox.Event) {
			if ev.Type == sandbox.EventAdvance {
				return
			}
			sandbox.Logf("event %s: x=%.1f step=%.1f", ev.Type, ev.X, ev.Step)
		})
		app.SetEventSink(ecs.NewDonburiSink(world))
	}

	cfg := window.RunConfig{
		Title:         windowTitle,
		Width:         int(app.Config().Width),
		Height:        int(app.Config().Height),
		TPS:           *tps,
		ShowHUD:       *fps,
		ScreenshotDir: *shotDir,
	}
	if *scriptPath != "" {
		script, err := window.LoadScriptFile(*scriptPath)
		if err != nil {
			log.Fatalf("Failed to load script: %s.", err)
		}
		cfg.Script = script
		cfg.ExitAfterScript = true
	}

	if err := window.Run(app, cfg); err != nil {
		log.Fatalf("Failed to run: %s.", err)
	}
}
