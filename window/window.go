// Package window runs a sandbox.Handler inside an Ebitengine window.
//
// Ebitengine owns the loop: every tick the driver forwards newly pressed keys
// to OnKeyDown, then calls OnTick; every frame it calls OnDraw with a Canvas
// backed by the screen image. Returning sandbox.ErrQuit from OnKeyDown ends
// the loop cleanly.
package window

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/sandbox"
)

// RunConfig configures the window created by Run. Zero fields take defaults.
type RunConfig struct {
	// Title is the window title. Default "SANDBOX".
	Title string
	// Width and Height are the logical screen size, which is also the
	// initial window size. Default 800x400.
	Width, Height int
	// TPS sets Ebitengine's ticks per second. Zero keeps the engine default.
	TPS int
	// ShowHUD overlays position, direction, FPS and TPS.
	ShowHUD bool
	// Clock is read once per tick and passed to OnTick. Default
	// sandbox.SystemClock.
	Clock sandbox.Clock
	// Script, when set, feeds scripted key presses and screenshots.
	Script *Script
	// ExitAfterScript ends the loop once Script has finished.
	ExitAfterScript bool
	// ScreenshotDir is where Screenshot writes PNG files. Default
	// "screenshots".
	ScreenshotDir string
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Title == "" {
		c.Title = "SANDBOX"
	}
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 400
	}
	if c.Clock == nil {
		c.Clock = sandbox.SystemClock
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = "screenshots"
	}
	return c
}

// Run opens a window and drives h until the user quits or the window is
// closed. It returns nil on a clean exit and the engine error otherwise.
func Run(h sandbox.Handler, cfg RunConfig) error {
	g := newGame(h, cfg)

	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	if g.cfg.TPS > 0 {
		ebiten.SetTPS(g.cfg.TPS)
	}

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// game implements ebiten.Game on top of a sandbox.Handler.
type game struct {
	h      sandbox.Handler
	cfg    RunConfig
	canvas canvas
	hud    *hud

	keyBuf      []ebiten.Key
	injectQueue []sandbox.Key

	screenshotQueue []string

	frame uint64 // Updates run so far
}

func newGame(h sandbox.Handler, cfg RunConfig) *game {
	cfg = cfg.withDefaults()
	g := &game{
		h:   h,
		cfg: cfg,
		canvas: canvas{
			width:  float64(cfg.Width),
			height: float64(cfg.Height),
		},
	}
	if cfg.ShowHUD {
		g.hud = newHUD()
	}
	return g
}

// Update forwards keys, then ticks the handler.
func (g *game) Update() error {
	g.frame++
	if g.cfg.Script != nil {
		g.cfg.Script.step(g)
	}

	for _, k := range g.pollKeys() {
		if err := g.h.OnKeyDown(k); err != nil {
			if errors.Is(err, sandbox.ErrQuit) {
				return ebiten.Termination
			}
			return err
		}
	}

	g.h.OnTick(g.cfg.Clock.Now())

	if g.cfg.ExitAfterScript && g.cfg.Script != nil && g.cfg.Script.Done() {
		return ebiten.Termination
	}
	return nil
}

// pending reports queued work a script must wait for: injected keys not yet
// delivered and screenshots not yet written.
func (g *game) pending() int {
	return len(g.injectQueue) + len(g.screenshotQueue)
}

// Draw hands the screen to the handler, then overlays the HUD and captures
// any queued screenshots.
func (g *game) Draw(screen *ebiten.Image) {
	g.canvas.target = screen
	g.h.OnDraw(&g.canvas)
	g.canvas.target = nil

	if g.hud != nil {
		g.hud.draw(screen, g.h)
	}
	g.flushScreenshots(screen)
}

// Layout keeps the logical screen at the configured size regardless of the
// window size.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
