package colorutil

import (
	"image/color"
	"testing"
)

func TestWithOpacity(t *testing.T) {
	tests := []struct {
		name    string
		color   string
		opacity float64
		want    string
	}{
		{"hex", "#00f5d4", 0.3, "rgba(0, 245, 212, 0.3)"},
		{"hex uppercase", "#FF0080", 1, "rgba(255, 0, 128, 1)"},
		{"rgba alpha replaced", "rgba(10,20,30,0.9)", 0.5, "rgba(10,20,30,0.5)"},
		{"rgba spaced", "rgba(10, 20, 30, 0.9)", 0.05, "rgba(10, 20, 30, 0.05)"},
		{"rgb gains alpha", "rgb(0, 245, 212)", 0.15, "rgba(0, 245, 212, 0.15)"},
		{"rgb compact", "rgb(1,2,3)", 0.8, "rgba(1,2,3,0.8)"},
		{"opacity not clamped", "#000000", 1.5, "rgba(0, 0, 0, 1.5)"},
		{"short hex passes through", "#0f0", 0.3, "#0f0"},
		{"named color passes through", "cyan", 0.3, "cyan"},
		{"garbage passes through", "rgb(oops", 0.3, "rgb(oops"},
		{"empty passes through", "", 0.3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WithOpacity(tt.color, tt.opacity)
			if got != tt.want {
				t.Errorf("WithOpacity(%q, %v) = %q, want %q", tt.color, tt.opacity, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
		ok   bool
	}{
		{"#00f5d4", color.NRGBA{0, 245, 212, 255}, true},
		{"rgba(0, 245, 212, 0.2)", color.NRGBA{0, 245, 212, 51}, true},
		{"rgba(10,20,30,0.5)", color.NRGBA{10, 20, 30, 128}, true},
		{"rgb(1, 2, 3)", color.NRGBA{1, 2, 3, 255}, true},
		{"rgba(1, 2, 3, 0)", color.NRGBA{1, 2, 3, 0}, true},
		{"cyan", color.NRGBA{}, false},
		{"#zzzzzz", color.NRGBA{}, false},
		{"#0f0", color.NRGBA{}, false},
		{"#00f5d4ff", color.NRGBA{}, false},
		{"rgba(1, 2, 3, x)", color.NRGBA{}, false},
	}

	for _, tt := range tests {
		got, ok := Parse(tt.in)
		if ok != tt.ok {
			t.Errorf("Parse(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseRoundTripsWithOpacity(t *testing.T) {
	c, ok := Parse(WithOpacity("#336699", 0.8))
	if !ok {
		t.Fatal("expected WithOpacity output to parse")
	}
	if c.R != 0x33 || c.G != 0x66 || c.B != 0x99 {
		t.Errorf("channels changed: %v", c)
	}
	if c.A != 204 {
		t.Errorf("alpha = %d, want 204", c.A)
	}
}

func TestLerp(t *testing.T) {
	a := color.NRGBA{0, 0, 0, 0}
	b := color.NRGBA{255, 255, 255, 255}

	if got := Lerp(a, b, 0); got != a {
		t.Errorf("Lerp at 0 = %v, want %v", got, a)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("Lerp at 1 = %v, want %v", got, b)
	}
	if got := Lerp(a, b, 2); got != b {
		t.Errorf("Lerp past 1 should clamp, got %v", got)
	}

	mid := Lerp(color.NRGBA{10, 20, 30, 13}, color.NRGBA{10, 20, 30, 77}, 0.5)
	if mid.R != 10 || mid.G != 20 || mid.B != 30 {
		t.Errorf("equal channels should not drift: %v", mid)
	}
	if mid.A != 45 {
		t.Errorf("alpha = %d, want 45", mid.A)
	}
}
