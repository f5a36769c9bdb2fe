package sandbox

import (
	"errors"
	"time"
)

// ErrQuit is returned by Handler.OnKeyDown when the user asked to leave.
// Drivers stop their loop and report a clean exit when they see it.
var ErrQuit = errors.New("sandbox: quit")

// Handler is the callback set a host loop drives. All three methods are
// called from the loop goroutine, never concurrently.
type Handler interface {
	// OnTick is called once per frame before OnDraw.
	OnTick(now time.Time)
	// OnDraw renders the current state onto c.
	OnDraw(c Canvas)
	// OnKeyDown is called for every key press. A non-nil error ends the loop.
	OnKeyDown(k Key) error
}

// Canvas is the drawing surface handed to Handler.OnDraw. Coordinates are in
// logical pixels with the origin at the top-left and Y increasing downward.
type Canvas interface {
	// Size returns the logical size of the surface.
	Size() (width, height float64)
	// Clear fills the whole surface with c.
	Clear(c Color)
	// FillCircle draws a filled circle centered on (cx, cy).
	FillCircle(cx, cy, radius float64, c Color)
}
