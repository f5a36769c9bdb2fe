package sandbox

import (
	"fmt"
	"strings"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Glide eases a drawn coordinate from one accepted tick to the next so the
// circle slides instead of jumping. It only affects what is drawn; Motion
// keeps its discrete steps.
//
// There is no global animation manager: the App calls Update every frame.
type Glide struct {
	tween    *gween.Tween
	duration time.Duration
	fn       ease.TweenFunc
	value    float64
	Done     bool
}

// NewGlide creates a Glide that spans d per segment using linear easing.
func NewGlide(d time.Duration) *Glide {
	return &Glide{duration: d, fn: ease.Linear, Done: true}
}

// SetEase replaces the easing function used by future segments.
func (g *Glide) SetEase(fn ease.TweenFunc) {
	g.fn = fn
}

// Set jumps to v and cancels any running segment.
func (g *Glide) Set(v float64) {
	g.tween = nil
	g.value = v
	g.Done = true
}

// Start begins a new segment from -> to. The value reads from immediately.
func (g *Glide) Start(from, to float64) {
	if g.duration <= 0 {
		g.Set(to)
		return
	}
	g.tween = gween.New(float32(from), float32(to), float32(g.duration.Seconds()), g.fn)
	g.value = from
	g.Done = false
}

// Update advances the running segment by dt.
func (g *Glide) Update(dt time.Duration) {
	if g.Done || g.tween == nil {
		return
	}
	v, finished := g.tween.Update(float32(dt.Seconds()))
	g.value = float64(v)
	g.Done = finished
}

// Value returns the eased coordinate.
func (g *Glide) Value() float64 {
	return g.value
}

var easings = map[string]ease.TweenFunc{
	"linear":    ease.Linear,
	"inquad":    ease.InQuad,
	"outquad":   ease.OutQuad,
	"inoutquad": ease.InOutQuad,
	"incubic":   ease.InCubic,
	"outcubic":  ease.OutCubic,
	"inoutsine": ease.InOutSine,
	"outsine":   ease.OutSine,
	"outexpo":   ease.OutExpo,
	"outback":   ease.OutBack,
	"outbounce": ease.OutBounce,
}

// EaseFromName returns the easing function called name, such as "linear",
// "outQuad" or "out-bounce". Case, '-' and '_' are ignored.
func EaseFromName(name string) (ease.TweenFunc, error) {
	key := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(name)))
	fn, ok := easings[key]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q", name)
	}
	return fn, nil
}
