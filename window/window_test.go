package window

import (
	"errors"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/sandbox"
)

// recordingHandler logs the order of callbacks.
type recordingHandler struct {
	calls []string
	keys  []sandbox.Key
	err   error
}

func (h *recordingHandler) OnTick(now time.Time)    { h.calls = append(h.calls, "tick") }
func (h *recordingHandler) OnDraw(c sandbox.Canvas) { h.calls = append(h.calls, "draw") }
func (h *recordingHandler) OnKeyDown(k sandbox.Key) error {
	h.calls = append(h.calls, "key")
	h.keys = append(h.keys, k)
	return h.err
}

func TestRunConfigDefaults(t *testing.T) {
	cfg := RunConfig{}.withDefaults()
	if cfg.Title != "SANDBOX" {
		t.Errorf("Title = %q, want SANDBOX", cfg.Title)
	}
	if cfg.Width != 800 || cfg.Height != 400 {
		t.Errorf("size = %dx%d, want 800x400", cfg.Width, cfg.Height)
	}
	if cfg.Clock == nil {
		t.Error("Clock should default to SystemClock")
	}
	if cfg.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want screenshots", cfg.ScreenshotDir)
	}
}

func TestLayoutIsFixed(t *testing.T) {
	g := newGame(&recordingHandler{}, RunConfig{Width: 320, Height: 200})
	w, h := g.Layout(1920, 1080)
	if w != 320 || h != 200 {
		t.Errorf("Layout = %dx%d, want 320x200", w, h)
	}
	cw, ch := g.canvas.Size()
	if cw != 320 || ch != 200 {
		t.Errorf("canvas size = %vx%v, want 320x200", cw, ch)
	}
}

func TestUpdateKeysBeforeTick(t *testing.T) {
	h := &recordingHandler{}
	g := newGame(h, RunConfig{})
	g.InjectKey(sandbox.KeyLeft)

	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(h.calls) != 2 || h.calls[0] != "key" || h.calls[1] != "tick" {
		t.Errorf("calls = %v, want [key tick]", h.calls)
	}
	if h.keys[0] != sandbox.KeyLeft {
		t.Errorf("key = %v, want left", h.keys[0])
	}
}

func TestInjectedKeysOnePerTick(t *testing.T) {
	h := &recordingHandler{}
	g := newGame(h, RunConfig{})
	g.InjectKey(sandbox.KeyLeft)
	g.InjectKey(sandbox.KeyRight)

	if g.pending() != 2 {
		t.Fatalf("pending = %d, want 2", g.pending())
	}
	_ = g.Update()
	if g.pending() != 1 {
		t.Fatalf("pending = %d after one tick, want 1", g.pending())
	}
	_ = g.Update()
	if g.pending() != 0 {
		t.Fatalf("pending = %d after two ticks, want 0", g.pending())
	}
	if len(h.keys) != 2 || h.keys[0] != sandbox.KeyLeft || h.keys[1] != sandbox.KeyRight {
		t.Errorf("keys = %v, want [left right]", h.keys)
	}
}

func TestUpdateQuitTerminates(t *testing.T) {
	app, err := sandbox.NewApp(sandbox.AppConfig{}, sandbox.NewManualClock(time.Now()))
	if err != nil {
		t.Fatal(err)
	}
	g := newGame(app, RunConfig{})
	g.InjectKey(sandbox.KeyEscape)

	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update = %v, want ebiten.Termination", err)
	}
}

func TestUpdatePropagatesHandlerError(t *testing.T) {
	boom := errors.New("boom")
	h := &recordingHandler{err: boom}
	g := newGame(h, RunConfig{})
	g.InjectKey(sandbox.KeyRight)

	if err := g.Update(); !errors.Is(err, boom) {
		t.Errorf("Update = %v, want boom", err)
	}
}

func TestUpdateDrivesApp(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := sandbox.NewManualClock(start)
	app, err := sandbox.NewApp(sandbox.AppConfig{}, clock)
	if err != nil {
		t.Fatal(err)
	}
	g := newGame(app, RunConfig{Clock: clock})

	clock.Advance(100 * time.Millisecond)
	g.InjectKey(sandbox.KeyLeft)
	_ = g.Update()

	// The key lands before the tick, so the first step already goes left.
	if got := app.Motion().X; got != -10 {
		t.Errorf("X = %v, want -10", got)
	}
}

func TestKeyFromEbiten(t *testing.T) {
	tests := []struct {
		in   ebiten.Key
		want sandbox.Key
	}{
		{ebiten.KeyEscape, sandbox.KeyEscape},
		{ebiten.KeyArrowLeft, sandbox.KeyLeft},
		{ebiten.KeyArrowRight, sandbox.KeyRight},
		{ebiten.KeySpace, sandbox.KeyUnknown},
		{ebiten.KeyA, sandbox.KeyUnknown},
	}
	for _, tt := range tests {
		if got := keyFromEbiten(tt.in); got != tt.want {
			t.Errorf("keyFromEbiten(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHUDText(t *testing.T) {
	if got, want := hudText(&recordingHandler{}, 60, 60), "FPS: 60.0\nTPS: 60.0"; got != want {
		t.Errorf("hudText = %q, want %q", got, want)
	}

	app, err := sandbox.NewApp(sandbox.AppConfig{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := hudText(app, 59.5, 60), "x: 0  dir: right\nFPS: 59.5\nTPS: 60.0"; got != want {
		t.Errorf("hudText = %q, want %q", got, want)
	}
}
