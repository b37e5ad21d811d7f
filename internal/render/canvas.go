package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Canvas is a software Surface backed by an *image.RGBA.
type Canvas struct {
	Background color.NRGBA

	img *image.RGBA
	ras *vector.Rasterizer
}

// NewCanvas creates a transparent w x h canvas. Non-positive sizes give an
// empty canvas.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Image returns the backing image. It is replaced on Resize.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize reallocates the canvas, dropping its content.
func (c *Canvas) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	c.img = image.NewRGBA(image.Rect(0, 0, w, h))
	c.ras = vector.NewRasterizer(w, h)
}

// Clear fills the canvas with the background color.
func (c *Canvas) Clear() {
	if c.Background.A == 0 {
		clear(c.img.Pix)
		return
	}
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.Background), image.Point{}, draw.Src)
}

// FillCircle paints a filled circle.
func (c *Canvas) FillCircle(cx, cy, r float64, col color.NRGBA) {
	if r <= 0 || col.A == 0 {
		return
	}

	n := int(math.Min(96, math.Max(12, math.Ceil(r*2))))
	pts := make([]point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = point{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}
	c.fill(pts, col)
}

// StrokeGradient paints a line whose color follows g from start to end.
func (c *Canvas) StrokeGradient(x0, y0, x1, y1, width float64, g Gradient) {
	if width <= 0 {
		return
	}
	half := width / 2
	for _, seg := range Segments(x0, y0, x1, y1, g, 2) {
		if seg.Color.A == 0 {
			continue
		}
		dx, dy := seg.X1-seg.X0, seg.Y1-seg.Y0
		l := math.Hypot(dx, dy)
		nx, ny := -dy/l*half, dx/l*half
		c.fill([]point{
			{seg.X0 + nx, seg.Y0 + ny},
			{seg.X1 + nx, seg.Y1 + ny},
			{seg.X1 - nx, seg.Y1 - ny},
			{seg.X0 - nx, seg.Y0 - ny},
		}, seg.Color)
	}
}

func (c *Canvas) fill(pts []point, col color.NRGBA) {
	w, h := c.Size()
	if w == 0 || h == 0 {
		return
	}
	pts = clipPolygon(pts, float64(w), float64(h))
	if len(pts) < 3 {
		return
	}

	c.ras.Reset(w, h)
	c.ras.MoveTo(float32(pts[0].x), float32(pts[0].y))
	for _, p := range pts[1:] {
		c.ras.LineTo(float32(p.x), float32(p.y))
	}
	c.ras.ClosePath()
	c.ras.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

type point struct{ x, y float64 }

// clipPolygon clips a convex polygon to [0, w] x [0, h].
func clipPolygon(pts []point, w, h float64) []point {
	edges := []struct {
		inside func(point) bool
		cross  func(a, b point) point
	}{
		{func(p point) bool { return p.x >= 0 }, func(a, b point) point { return atX(a, b, 0) }},
		{func(p point) bool { return p.x <= w }, func(a, b point) point { return atX(a, b, w) }},
		{func(p point) bool { return p.y >= 0 }, func(a, b point) point { return atY(a, b, 0) }},
		{func(p point) bool { return p.y <= h }, func(a, b point) point { return atY(a, b, h) }},
	}

	for _, e := range edges {
		if len(pts) == 0 {
			return nil
		}
		out := make([]point, 0, len(pts)+2)
		prev := pts[len(pts)-1]
		for _, cur := range pts {
			switch {
			case e.inside(cur) && e.inside(prev):
				out = append(out, cur)
			case e.inside(cur):
				out = append(out, e.cross(prev, cur), cur)
			case e.inside(prev):
				out = append(out, e.cross(prev, cur))
			}
			prev = cur
		}
		pts = out
	}
	return pts
}

func atX(a, b point, x float64) point {
	t := (x - a.x) / (b.x - a.x)
	return point{x, a.y + t*(b.y-a.y)}
}

func atY(a, b point, y float64) point {
	t := (y - a.y) / (b.y - a.y)
	return point{a.x + t*(b.x-a.x), y}
}
