// Package sandbox animates a single circle that slides across the screen and
// wraps around at the right and left edges. Left and Right reverse its travel
// direction and Escape quits.
//
// The package holds the driver-independent half of the program: the [Motion]
// controller, the [Handler] callback contract a host loop invokes every
// frame, and [App], the Handler implementation that ties them together.
// Drivers live in subpackages:
//
//   - window runs the App inside an [Ebitengine] window.
//   - term renders it into a terminal with [tcell].
//
// # Motion
//
// Motion is a fixed-rate gate. Each call to [Motion.Tick] checks whether a
// full Interval has passed since the last accepted tick and, if so, advances
// the position by one Step after wrapping it into [0, Boundary):
//
//	m := sandbox.NewMotion(800, 10, sandbox.IntervalFor(10), time.Now())
//	m.Tick(time.Now())
//
// Excess time is dropped rather than accumulated, so a stalled frame never
// produces a burst of catch-up steps. The wrap happens before the step is
// added, which lets X sit up to one Step outside the boundary until the next
// accepted tick.
//
// # Minimal program
//
//	app, err := sandbox.NewApp(sandbox.DefaultAppConfig(), sandbox.SystemClock)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := window.Run(app, window.RunConfig{Title: "SANDBOX"}); err != nil {
//		log.Fatal(err)
//	}
//
// # Collaborators
//
// An App can optionally smooth the drawn position between ticks ([Glide],
// built on [gween]), play short tones on wraps and turns ([Cue], see the
// audio subpackage), and publish [Event] values to an [EventSink] such as the
// donburi adapter in the ecs subpackage.
//
// [Ebitengine]: https://ebitengine.org
// [tcell]: https://github.com/gdamore/tcell
// [gween]: https://github.com/tanema/gween
package sandbox
