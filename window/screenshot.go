package window

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/sandbox"
)

// positioner is implemented by handlers that draw at a horizontal position,
// such as *sandbox.App. The position is recorded in screenshot names.
type positioner interface {
	DrawX() float64
}

// Screenshot queues a labeled capture of the next drawn frame. A queued
// capture holds a running script open until it has been written.
func (g *game) Screenshot(label string) {
	g.screenshotQueue = append(g.screenshotQueue, label)
}

// flushScreenshots reads the frame back once and saves it for every queued
// label.
func (g *game) flushScreenshots(screen *ebiten.Image) {
	if len(g.screenshotQueue) == 0 {
		return
	}
	// ReadPixels yields premultiplied RGBA, which is image.RGBA's layout.
	img := image.NewRGBA(screen.Bounds())
	screen.ReadPixels(img.Pix)
	g.saveScreenshots(img)
}

// saveScreenshots writes img under ScreenshotDir once per queued label,
// empties the queue and returns the paths written. Failures are logged and
// the capture is dropped.
func (g *game) saveScreenshots(img image.Image) []string {
	defer func() { g.screenshotQueue = g.screenshotQueue[:0] }()

	if err := os.MkdirAll(g.cfg.ScreenshotDir, 0o755); err != nil {
		sandbox.Logf("screenshot: %v", err)
		return nil
	}
	var paths []string
	for _, label := range g.screenshotQueue {
		path := filepath.Join(g.cfg.ScreenshotDir, screenshotName(g.frame, label, g.h))
		if err := writePNG(path, img); err != nil {
			sandbox.Logf("screenshot: %v", err)
			continue
		}
		paths = append(paths, path)
	}
	return paths
}

// screenshotName is "f<frame>-<label>.png", with "-x<pos>" before the
// extension when the handler reports a position. Frame numbers make scripted
// runs produce the same names every time.
func screenshotName(frame uint64, label string, h sandbox.Handler) string {
	name := fmt.Sprintf("f%06d-%s", frame, slug(label))
	if p, ok := h.(positioner); ok {
		name += fmt.Sprintf("-x%d", int(math.Round(p.DrawX())))
	}
	return name + ".png"
}

// slug lowercases label and joins its runs of letters, digits and dots with
// '-'. An empty result becomes "shot".
func slug(label string) string {
	parts := strings.FieldsFunc(strings.ToLower(label), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.'
	})
	if len(parts) == 0 {
		return "shot"
	}
	return strings.Join(parts, "-")
}

// writePNG encodes img to path. png.Encode converts premultiplied input to
// straight alpha.
func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
