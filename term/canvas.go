package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/sandbox"
)

// fillRune paints covered cells.
const fillRune = '█'

// canvas implements sandbox.Canvas on a tcell.Screen. A cell is covered when
// its center, mapped back to logical coordinates, lies inside the shape.
type canvas struct {
	screen        tcell.Screen
	width, height float64
	bg            tcell.Color
}

func (c *canvas) Size() (float64, float64) {
	return c.width, c.height
}

func (c *canvas) Clear(col sandbox.Color) {
	c.bg = tcellColor(col)
	c.screen.Fill(' ', tcell.StyleDefault.Background(c.bg))
}

func (c *canvas) FillCircle(cx, cy, radius float64, col sandbox.Color) {
	cols, rows := c.screen.Size()
	if cols == 0 || rows == 0 || radius <= 0 {
		return
	}
	sx := float64(cols) / c.width
	sy := float64(rows) / c.height
	style := tcell.StyleDefault.Foreground(tcellColor(col)).Background(c.bg)

	// Only scan the circle's bounding box.
	x0, x1 := clamp(int((cx-radius)*sx), cols), clamp(int((cx+radius)*sx)+1, cols)
	y0, y1 := clamp(int((cy-radius)*sy), rows), clamp(int((cy+radius)*sy)+1, rows)
	r2 := radius * radius
	for y := y0; y < y1; y++ {
		ly := (float64(y) + 0.5) / sy
		for x := x0; x < x1; x++ {
			lx := (float64(x) + 0.5) / sx
			dx, dy := lx-cx, ly-cy
			if dx*dx+dy*dy <= r2 {
				c.screen.SetContent(x, y, fillRune, nil, style)
			}
		}
	}
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v > n {
		return n
	}
	return v
}

func tcellColor(c sandbox.Color) tcell.Color {
	rgba := c.RGBA()
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}
