package sandbox

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorBlack is the default background.
	ColorBlack = Color{0, 0, 0, 1}
	// ColorBlue is the default circle color.
	ColorBlue = Color{0, 0, 1, 1}
)

// RGBA converts c to an 8-bit straight-alpha color for drawing APIs.
func (c Color) RGBA() color.NRGBA {
	return color.NRGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(c.A),
	}
}

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// ColorFromName looks up an SVG 1.1 color keyword such as "blue" or
// "cornflowerblue". Matching is case-insensitive.
func ColorFromName(name string) (Color, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Color{}, fmt.Errorf("unknown color %q", name)
	}
	return Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}, nil
}

// Key identifies a key the App reacts to. Drivers translate their native key
// codes into Key values; anything without a mapping becomes KeyUnknown.
type Key uint8

const (
	KeyUnknown Key = iota // any key the App ignores
	KeyEscape             // quit
	KeyLeft               // travel left
	KeyRight              // travel right
)

var keyNames = [...]string{
	KeyUnknown: "unknown",
	KeyEscape:  "escape",
	KeyLeft:    "left",
	KeyRight:   "right",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", uint8(k))
}

// ParseKey is the inverse of Key.String. "esc" is accepted for KeyEscape.
func ParseKey(s string) (Key, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "escape", "esc":
		return KeyEscape, nil
	case "left":
		return KeyLeft, nil
	case "right":
		return KeyRight, nil
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", s)
}
