// Package render paints a network onto a 2D drawing surface.
package render

import (
	"image/color"
	"math"

	"github.com/olivierh59500/netpulse-go/internal/colorutil"
)

// Surface is the drawing context the renderer paints on.
type Surface interface {
	Size() (w, h int)
	Resize(w, h int)
	Clear()
	StrokeGradient(x0, y0, x1, y1, width float64, g Gradient)
	FillCircle(cx, cy, r float64, c color.NRGBA)
}

// Stop is a gradient color stop; Offset is in [0, 1].
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

// Gradient is a linear gradient along a stroke, stops sorted by offset.
type Gradient []Stop

// At evaluates the gradient at t. Positions before the first or after the
// last stop take that stop's color.
func (g Gradient) At(t float64) color.NRGBA {
	if len(g) == 0 {
		return color.NRGBA{}
	}
	if t <= g[0].Offset {
		return g[0].Color
	}
	for i := 1; i < len(g); i++ {
		if t > g[i].Offset {
			continue
		}
		prev := g[i-1]
		span := g[i].Offset - prev.Offset
		if span <= 0 {
			return g[i].Color
		}
		return colorutil.Lerp(prev.Color, g[i].Color, (t-prev.Offset)/span)
	}
	return g[len(g)-1].Color
}

// Segment is a straight piece of a gradient stroke with a single color.
type Segment struct {
	X0, Y0, X1, Y1 float64
	Color          color.NRGBA
}

// Segments splits a gradient stroke into pieces at most step pixels long,
// each colored by the gradient at its midpoint. Surfaces without native
// gradients draw these.
func Segments(x0, y0, x1, y1 float64, g Gradient, step float64) []Segment {
	length := math.Hypot(x1-x0, y1-y0)
	if length == 0 || math.IsNaN(length) {
		return nil
	}
	if step <= 0 {
		step = 1
	}

	n := int(math.Ceil(length / step))
	segs := make([]Segment, 0, n)
	dx, dy := (x1-x0)/float64(n), (y1-y0)/float64(n)
	for k := 0; k < n; k++ {
		mid := (float64(k) + 0.5) / float64(n)
		segs = append(segs, Segment{
			X0:    x0 + dx*float64(k),
			Y0:    y0 + dy*float64(k),
			X1:    x0 + dx*float64(k+1),
			Y1:    y0 + dy*float64(k+1),
			Color: g.At(mid),
		})
	}
	return segs
}
