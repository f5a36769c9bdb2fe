// Package term renders a sandbox.Handler into a terminal using tcell.
//
// The driver owns the loop: a ticker paces frames (OnTick then OnDraw), and a
// goroutine forwards tcell events over a channel so every Handler call still
// happens on the loop goroutine. Logical coordinates are scaled onto the
// terminal grid, so the same App runs unchanged in a window or a terminal.
package term

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/sandbox"
)

// Config configures a terminal Driver. Zero fields take defaults.
type Config struct {
	// Width and Height are the logical size mapped onto the terminal.
	// Default 800x400, matching sandbox.DefaultAppConfig.
	Width, Height float64
	// FPS is the frame rate. Default 30.
	FPS int
	// Clock is read once per frame. Default sandbox.SystemClock.
	Clock sandbox.Clock
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = 800
	}
	if c.Height <= 0 {
		c.Height = 400
	}
	if c.FPS <= 0 {
		c.FPS = 30
	}
	if c.Clock == nil {
		c.Clock = sandbox.SystemClock
	}
	return c
}

// Driver runs a Handler against an initialized tcell.Screen.
type Driver struct {
	screen tcell.Screen
	h      sandbox.Handler
	cfg    Config
	canvas *canvas
}

// NewDriver creates a Driver. The caller owns screen: it must already be
// initialized and the caller calls Fini after Run returns.
func NewDriver(screen tcell.Screen, h sandbox.Handler, cfg Config) *Driver {
	cfg = cfg.withDefaults()
	return &Driver{
		screen: screen,
		h:      h,
		cfg:    cfg,
		canvas: &canvas{screen: screen, width: cfg.Width, height: cfg.Height},
	}
}

// Run creates a terminal screen, drives h on it until the user quits or ctx
// is done, and restores the terminal.
func Run(ctx context.Context, h sandbox.Handler, cfg Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	return NewDriver(screen, h, cfg).Run(ctx)
}

// Run drives the handler until it returns sandbox.ErrQuit (reported as nil),
// returns another error, or ctx is done (reported as ctx.Err()).
func (d *Driver) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(d.cfg.FPS))
	defer ticker.Stop()

	d.frame()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if err := d.handleEvent(ev); err != nil {
				if errors.Is(err, sandbox.ErrQuit) {
					return nil
				}
				return err
			}
		case <-ticker.C:
			d.frame()
		}
	}
}

func (d *Driver) handleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return d.h.OnKeyDown(keyFromTcell(ev))
	case *tcell.EventResize:
		d.screen.Sync()
	}
	return nil
}

// frame runs one tick and one draw, then flushes the screen.
func (d *Driver) frame() {
	d.h.OnTick(d.cfg.Clock.Now())
	d.h.OnDraw(d.canvas)
	d.screen.Show()
}

// keyFromTcell maps terminal keys onto the sandbox key set. Ctrl+C counts as
// Escape since raw mode swallows the interrupt signal.
func keyFromTcell(ev *tcell.EventKey) sandbox.Key {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return sandbox.KeyEscape
	case tcell.KeyLeft:
		return sandbox.KeyLeft
	case tcell.KeyRight:
		return sandbox.KeyRight
	}
	return sandbox.KeyUnknown
}
