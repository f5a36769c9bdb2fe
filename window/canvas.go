package window

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/sandbox"
)

// circleSegments is the number of outer vertices used to approximate a circle
// of radius 100 or less. Larger circles get proportionally more.
const circleSegments = 64

// whitePixel is the source image for untextured triangles. Created lazily so
// the package can be imported without a graphics context.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(sandbox.Color{R: 1, G: 1, B: 1, A: 1}.RGBA())
	}
	return whitePixel
}

// canvas implements sandbox.Canvas on an ebiten.Image. target is only valid
// for the duration of one Draw call.
type canvas struct {
	target        *ebiten.Image
	width, height float64

	verts []ebiten.Vertex
	inds  []uint16
}

func (c *canvas) Size() (float64, float64) {
	return c.width, c.height
}

func (c *canvas) Clear(col sandbox.Color) {
	c.target.Fill(col.RGBA())
}

func (c *canvas) FillCircle(cx, cy, radius float64, col sandbox.Color) {
	if radius <= 0 {
		return
	}
	c.verts, c.inds = buildCircleFan(c.verts[:0], c.inds[:0], cx, cy, radius, segmentsFor(radius), col)
	var op ebiten.DrawTrianglesOptions
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = true
	c.target.DrawTriangles(c.verts, c.inds, ensureWhitePixel(), &op)
}

// segmentsFor picks a segment count so edges stay about 10px long on big
// circles.
func segmentsFor(radius float64) int {
	n := int(math.Ceil(2 * math.Pi * radius / 10))
	if n < circleSegments {
		return circleSegments
	}
	if n > 1024 {
		return 1024
	}
	return n
}

// buildCircleFan appends a fan-triangulated circle to verts and inds. The hub
// vertex sits at the center; n rim vertices follow, and the last triangle
// closes back onto the first rim vertex. n rim vertices give 3*n indices.
func buildCircleFan(verts []ebiten.Vertex, inds []uint16, cx, cy, radius float64, n int, col sandbox.Color) ([]ebiten.Vertex, []uint16) {
	if n < 3 {
		n = 3
	}
	// Vertex colors are premultiplied.
	r := float32(col.R * col.A)
	g := float32(col.G * col.A)
	b := float32(col.B * col.A)
	a := float32(col.A)

	vertex := func(x, y float64) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			// Center of the white pixel.
			SrcX: 0.5, SrcY: 0.5,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}

	base := uint16(len(verts))
	verts = append(verts, vertex(cx, cy))
	for i := 0; i < n; i++ {
		angle := float64(i) * 2 * math.Pi / float64(n)
		verts = append(verts, vertex(cx+math.Cos(angle)*radius, cy+math.Sin(angle)*radius))
	}

	for i := 0; i < n; i++ {
		next := (i+1)%n + 1
		inds = append(inds, base, base+uint16(i+1), base+uint16(next))
	}
	return verts, inds
}
