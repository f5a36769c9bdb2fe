package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/phanxgames/sandbox"
)

// statusReporter is implemented by handlers that can describe their state in
// one line, such as *sandbox.App.
type statusReporter interface {
	Status() string
}

// hud draws a small text overlay in the top-left corner.
type hud struct {
	face text.Face
}

func newHUD() *hud {
	return &hud{face: text.NewGoXFace(bitmapfont.Face)}
}

func (h *hud) draw(screen *ebiten.Image, handler sandbox.Handler) {
	op := &text.DrawOptions{}
	m := h.face.Metrics()
	op.LineSpacing = m.HLineGap + m.HAscent + m.HDescent
	op.GeoM.Translate(8, 8)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, hudText(handler, ebiten.ActualFPS(), ebiten.ActualTPS()), h.face, op)
}

func hudText(handler sandbox.Handler, fps, tps float64) string {
	s := fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps)
	if r, ok := handler.(statusReporter); ok {
		s = r.Status() + "\n" + s
	}
	return s
}
