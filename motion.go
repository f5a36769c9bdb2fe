package sandbox

import (
	"time"

	"github.com/phanxgames/sandbox/mathx"
)

// Motion is the horizontal motion state of the circle. X travels by Step once
// per Interval and wraps around Boundary.
//
// Fields are exported for drivers and tests; mutate them only through Tick
// and SetDirection while a host loop is running.
type Motion struct {
	// X is the horizontal position. After a wrap it lies in [0, Boundary)
	// before Step is added, so it may exceed either edge by up to |Step|.
	X float64
	// Step is the signed distance moved per accepted tick. The sign is the
	// travel direction.
	Step float64
	// LastUpdate is the clock reading of the last accepted tick.
	LastUpdate time.Time
	// Boundary is the wraparound modulus, normally the screen width.
	Boundary float64
	// Interval is the minimum time between accepted ticks.
	Interval time.Duration

	wrapped bool
}

// NewMotion creates a Motion at X = 0 whose gate opens one interval after now.
func NewMotion(boundary, step float64, interval time.Duration, now time.Time) *Motion {
	return &Motion{
		Step:       step,
		LastUpdate: now,
		Boundary:   boundary,
		Interval:   interval,
	}
}

// IntervalFor converts an update rate into a whole-millisecond gate interval.
// 10 updates per second gives 100ms.
func IntervalFor(updatesPerSecond float64) time.Duration {
	if updatesPerSecond <= 0 {
		return 0
	}
	return time.Duration(1000/updatesPerSecond) * time.Millisecond
}

// Tick advances X by one Step if at least Interval has passed since
// LastUpdate, and reports whether it did. Time beyond one interval is
// discarded: LastUpdate becomes now, not LastUpdate+Interval.
func (m *Motion) Tick(now time.Time) bool {
	if now.Sub(m.LastUpdate) < m.Interval {
		return false
	}
	x := mathx.ModuloFloat(m.X, m.Boundary)
	m.wrapped = x != m.X
	m.X = x + m.Step
	m.LastUpdate = now
	return true
}

// Wrapped reports whether the most recent accepted tick had to wrap X back
// into [0, Boundary) before stepping.
func (m *Motion) Wrapped() bool {
	return m.wrapped
}

// SetDirection points Step along sign (+1 right, -1 left) without changing
// its magnitude. A zero sign is ignored.
func (m *Motion) SetDirection(sign int) {
	switch {
	case sign > 0:
		m.Step = abs(m.Step)
	case sign < 0:
		m.Step = -abs(m.Step)
	}
}

// Direction returns -1 when traveling left and +1 otherwise.
func (m *Motion) Direction() int {
	if m.Step < 0 {
		return -1
	}
	return 1
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
