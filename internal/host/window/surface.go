package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/netpulse-go/internal/render"
)

// gradientStep is the segment length used to approximate gradient strokes.
const gradientStep = 3.0

// Surface is a render.Surface backed by an offscreen ebiten image.
type Surface struct {
	Background color.NRGBA

	img *ebiten.Image
}

// Image returns the offscreen image, nil while the surface has no area.
func (s *Surface) Image() *ebiten.Image {
	return s.img
}

// Size returns the offscreen image size.
func (s *Surface) Size() (int, int) {
	if s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize replaces the offscreen image.
func (s *Surface) Resize(w, h int) {
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
	if w <= 0 || h <= 0 {
		return
	}
	s.img = ebiten.NewImage(w, h)
}

// Clear fills the image with the background color.
func (s *Surface) Clear() {
	if s.img == nil {
		return
	}
	if s.Background.A == 0 {
		s.img.Clear()
		return
	}
	s.img.Fill(s.Background)
}

// FillCircle paints an antialiased filled circle.
func (s *Surface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	if s.img == nil || r <= 0 || c.A == 0 {
		return
	}
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c, true)
}

// StrokeGradient approximates a gradient stroke with short solid segments.
func (s *Surface) StrokeGradient(x0, y0, x1, y1, width float64, g render.Gradient) {
	if s.img == nil || width <= 0 {
		return
	}
	for _, seg := range render.Segments(x0, y0, x1, y1, g, gradientStep) {
		if seg.Color.A == 0 {
			continue
		}
		vector.StrokeLine(s.img, float32(seg.X0), float32(seg.Y0), float32(seg.X1), float32(seg.Y1), float32(width), seg.Color, true)
	}
}
