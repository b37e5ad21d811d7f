package render

import (
	"image/color"
	"math"
	"testing"
)

func TestCanvasFillCircle(t *testing.T) {
	c := NewCanvas(40, 40)
	c.FillCircle(20, 20, 8, color.NRGBA{255, 0, 0, 255})

	center := c.Image().RGBAAt(20, 20)
	if center.R != 255 || center.A != 255 {
		t.Errorf("center pixel = %v, want opaque red", center)
	}
	if corner := c.Image().RGBAAt(1, 1); corner.A != 0 {
		t.Errorf("corner pixel = %v, want transparent", corner)
	}
}

func TestCanvasClipsOffSurfaceShapes(t *testing.T) {
	c := NewCanvas(30, 30)
	c.FillCircle(0, 0, 60, color.NRGBA{0, 255, 0, 255})
	c.FillCircle(-500, -500, 10, color.NRGBA{0, 0, 255, 255})
	c.StrokeGradient(-50, 15, 80, 15, 1, Gradient{{0, color.NRGBA{255, 255, 255, 255}}})

	if px := c.Image().RGBAAt(5, 5); px.G == 0 {
		t.Errorf("partially visible circle should cover (5,5), got %v", px)
	}
}

func TestCanvasClearBackground(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Background = color.NRGBA{10, 10, 15, 255}
	c.FillCircle(2, 2, 3, color.NRGBA{255, 255, 255, 255})
	c.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if px := c.Image().RGBAAt(x, y); px != (color.RGBA{10, 10, 15, 255}) {
				t.Fatalf("pixel (%d,%d) = %v after clear", x, y, px)
			}
		}
	}
}

func TestCanvasResize(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Resize(25, 5)
	if w, h := c.Size(); w != 25 || h != 5 {
		t.Errorf("Size() = %d,%d want 25,5", w, h)
	}
	c.Resize(-3, 4)
	if w, h := c.Size(); w != 0 || h != 4 {
		t.Errorf("negative width should clamp to 0, got %d,%d", w, h)
	}
}

func TestSegments(t *testing.T) {
	g := Gradient{{0, color.NRGBA{A: 0}}, {1, color.NRGBA{A: 200}}}

	segs := Segments(0, 0, 10, 0, g, 2)
	if len(segs) != 5 {
		t.Fatalf("expected 5 segments, got %d", len(segs))
	}
	if segs[0].X0 != 0 || math.Abs(segs[4].X1-10) > 1e-9 {
		t.Errorf("segments should span the line: %v..%v", segs[0].X0, segs[4].X1)
	}
	for i := 1; i < len(segs); i++ {
		if segs[i].Color.A <= segs[i-1].Color.A {
			t.Errorf("segment %d alpha should increase along the gradient", i)
		}
	}

	if Segments(3, 3, 3, 3, g, 2) != nil {
		t.Error("zero length stroke should have no segments")
	}
}

func TestClipPolygon(t *testing.T) {
	square := []point{{-5, -5}, {5, -5}, {5, 5}, {-5, 5}}
	clipped := clipPolygon(square, 10, 10)
	if len(clipped) != 4 {
		t.Fatalf("expected 4 vertices, got %d: %v", len(clipped), clipped)
	}
	for _, p := range clipped {
		if p.x < 0 || p.x > 10 || p.y < 0 || p.y > 10 {
			t.Errorf("vertex %v outside clip rect", p)
		}
	}

	if got := clipPolygon([]point{{-9, -9}, {-8, -9}, {-8, -8}}, 10, 10); len(got) != 0 {
		t.Errorf("fully outside polygon should vanish, got %v", got)
	}
}
