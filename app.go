package sandbox

import (
	"errors"
	"fmt"
	"time"

	"github.com/tanema/gween/ease"
)

// AppConfig configures an App. Zero fields take the values from
// DefaultAppConfig.
type AppConfig struct {
	Width  float64 // logical screen width; also the wraparound boundary
	Height float64 // logical screen height
	Radius float64 // circle radius

	UpdatesPerSecond float64 // accepted ticks per second
	Step             float64 // initial signed step; negative starts leftward

	Color      Color // circle color
	Background Color // clear color

	Smooth bool           // ease the drawn position between ticks
	Ease   ease.TweenFunc // easing used when Smooth is set; nil is linear
	Debug  bool           // log ticks and keys to stderr
}

// DefaultAppConfig returns the classic setup: an 800x400 screen, a blue
// radius-100 circle on black, moving 10 pixels right ten times a second.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Width:            800,
		Height:           400,
		Radius:           100,
		UpdatesPerSecond: 10,
		Step:             10,
		Color:            ColorBlue,
		Background:       ColorBlack,
	}
}

func (c AppConfig) withDefaults() AppConfig {
	d := DefaultAppConfig()
	if c.Width == 0 {
		c.Width = d.Width
	}
	if c.Height == 0 {
		c.Height = d.Height
	}
	if c.Radius == 0 {
		c.Radius = d.Radius
	}
	if c.UpdatesPerSecond == 0 {
		c.UpdatesPerSecond = d.UpdatesPerSecond
	}
	if c.Step == 0 {
		c.Step = d.Step
	}
	if c.Color == (Color{}) {
		c.Color = d.Color
	}
	if c.Background == (Color{}) {
		c.Background = d.Background
	}
	return c
}

// Validate reports every field that cannot produce a working App.
func (c AppConfig) Validate() error {
	var errs []error
	if c.Width < 0 {
		errs = append(errs, fmt.Errorf("width must be positive, got %v", c.Width))
	}
	if c.Height < 0 {
		errs = append(errs, fmt.Errorf("height must be positive, got %v", c.Height))
	}
	if c.Radius < 0 {
		errs = append(errs, fmt.Errorf("radius must be positive, got %v", c.Radius))
	}
	if c.UpdatesPerSecond < 0 || c.UpdatesPerSecond > 1000 {
		errs = append(errs, fmt.Errorf("updates per second must be in (0, 1000], got %v", c.UpdatesPerSecond))
	}
	return errors.Join(errs...)
}

// App is the Handler that owns the Motion and renders it as a circle.
type App struct {
	cfg    AppConfig
	clock  Clock
	motion *Motion
	glide  *Glide
	debug  bool

	cue  Cue
	sink EventSink

	lastFrame time.Time
}

// NewApp creates an App from cfg. The Motion's gate starts at clock.Now().
func NewApp(cfg AppConfig, clock Clock) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("app config: %w", err)
	}
	cfg = cfg.withDefaults()
	if clock == nil {
		clock = SystemClock
	}
	now := clock.Now()
	interval := IntervalFor(cfg.UpdatesPerSecond)

	a := &App{
		cfg:       cfg,
		clock:     clock,
		motion:    NewMotion(cfg.Width, cfg.Step, interval, now),
		debug:     cfg.Debug,
		lastFrame: now,
	}
	if cfg.Smooth {
		a.glide = NewGlide(interval)
		if cfg.Ease != nil {
			a.glide.SetEase(cfg.Ease)
		}
		a.glide.Set(a.motion.X)
	}
	return a, nil
}

// Config returns the effective configuration, defaults applied.
func (a *App) Config() AppConfig {
	return a.cfg
}

// Motion returns the App's motion state.
func (a *App) Motion() *Motion {
	return a.motion
}

// SetCue sets the optional sound cue. nil disables it.
func (a *App) SetCue(c Cue) {
	a.cue = c
}

// SetEventSink sets the optional event consumer. nil disables it.
func (a *App) SetEventSink(s EventSink) {
	a.sink = s
}

// SetDebugMode enables or disables debug logging.
func (a *App) SetDebugMode(enabled bool) {
	a.debug = enabled
}

// DrawX returns the horizontal position the circle is drawn at. Without
// smoothing it is Motion.X.
func (a *App) DrawX() float64 {
	if a.glide != nil {
		return a.glide.Value()
	}
	return a.motion.X
}

// Status describes the motion state in one line, for overlays.
func (a *App) Status() string {
	dir := "right"
	if a.motion.Direction() < 0 {
		dir = "left"
	}
	return fmt.Sprintf("x: %.0f  dir: %s", a.motion.X, dir)
}

// OnTick implements Handler.
func (a *App) OnTick(now time.Time) {
	if a.glide != nil {
		a.glide.Update(now.Sub(a.lastFrame))
	}
	a.lastFrame = now

	if a.motion.Tick(now) {
		m := a.motion
		if a.glide != nil {
			// The segment starts from the wrapped position so a wrap shows up
			// as a jump of exactly one Boundary rather than a sweep back.
			a.glide.Start(m.X-m.Step, m.X)
		}
		if m.Wrapped() {
			a.debugf("wrap: x=%.1f step=%.1f", m.X, m.Step)
			a.emit(EventWrap, now)
			if a.cue != nil {
				a.cue.PlayWrap()
			}
		}
		a.debugf("tick: x=%.1f step=%.1f", m.X, m.Step)
		a.emit(EventAdvance, now)
	}

	a.flush()
}

// OnDraw implements Handler.
func (a *App) OnDraw(c Canvas) {
	_, h := c.Size()
	c.Clear(a.cfg.Background)
	c.FillCircle(a.DrawX(), h/2, a.cfg.Radius, a.cfg.Color)
}

// OnKeyDown implements Handler.
func (a *App) OnKeyDown(k Key) error {
	switch k {
	case KeyEscape:
		a.debugf("key: %s, quitting", k)
		a.emit(EventQuit, a.clock.Now())
		// Drivers stop on ErrQuit, so no later OnTick would deliver it.
		a.flush()
		return ErrQuit
	case KeyLeft:
		a.turn(-1)
	case KeyRight:
		a.turn(1)
	}
	return nil
}

func (a *App) turn(sign int) {
	prev := a.motion.Direction()
	a.motion.SetDirection(sign)
	if a.motion.Direction() == prev {
		return
	}
	a.debugf("turn: step=%.1f", a.motion.Step)
	a.emit(EventTurn, a.clock.Now())
	if a.cue != nil {
		a.cue.PlayTurn()
	}
}

func (a *App) flush() {
	if f, ok := a.sink.(EventFlusher); ok {
		f.FlushEvents()
	}
}

func (a *App) emit(t EventType, at time.Time) {
	if a.sink == nil {
		return
	}
	a.sink.EmitEvent(Event{Type: t, X: a.motion.X, Step: a.motion.Step, At: at})
}
