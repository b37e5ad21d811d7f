// Package colorutil converts the CSS-style color strings used by the network
// background into rgba() strings and Go colors.
package colorutil

import (
	"image/color"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

	// rgb(r, g, b) or rgba(r, g, b, a); separators are captured so the
	// caller's spacing survives the alpha swap.
	rgbPattern = regexp.MustCompile(`^(rgba?)\(\s*([^,\s()]+)(\s*,\s*)([^,\s()]+)(\s*,\s*)([^,\s()]+)(?:\s*,\s*[^,()]+)?\s*\)$`)
)

// WithOpacity returns color as an rgba() string carrying the given opacity.
// Hex input must be #rrggbb; rgb() and rgba() input keeps its channel text
// and has its alpha replaced. Anything else is returned unchanged. The
// opacity is not clamped.
func WithOpacity(c string, opacity float64) string {
	alpha := formatAlpha(opacity)

	if hexPattern.MatchString(c) {
		parsed, err := colorful.Hex(c)
		if err != nil {
			return c
		}
		r, g, b := parsed.RGB255()
		return "rgba(" + strconv.Itoa(int(r)) + ", " + strconv.Itoa(int(g)) + ", " + strconv.Itoa(int(b)) + ", " + alpha + ")"
	}

	m := rgbPattern.FindStringSubmatch(c)
	if m == nil {
		return c
	}
	// m[5] separates green and blue; reuse it before the alpha.
	return "rgba(" + m[2] + m[3] + m[4] + m[5] + m[6] + m[5] + alpha + ")"
}

func formatAlpha(opacity float64) string {
	return strconv.FormatFloat(opacity, 'f', -1, 64)
}

// Parse converts a #rrggbb, rgb() or rgba() string into a color. The second
// result is false when the string is not understood, including short #rgb
// hex which WithOpacity does not convert either.
func Parse(s string) (color.NRGBA, bool) {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "#") {
		if !hexPattern.MatchString(s) {
			return color.NRGBA{}, false
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return color.NRGBA{}, false
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 0xff}, true
	}

	m := rgbPattern.FindStringSubmatch(s)
	if m == nil {
		return color.NRGBA{}, false
	}

	var ch [3]uint8
	for i, raw := range []string{m[2], m[4], m[6]} {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return color.NRGBA{}, false
		}
		ch[i] = clampByte(v)
	}

	alpha := 1.0
	if m[1] == "rgba" {
		a, ok := parseAlpha(s)
		if !ok {
			return color.NRGBA{}, false
		}
		alpha = a
	}

	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: clampByte(alpha * 255)}, true
}

// parseAlpha pulls the fourth component out of an rgba() string.
func parseAlpha(s string) (float64, bool) {
	open := strings.IndexByte(s, '(')
	end := strings.LastIndexByte(s, ')')
	if open < 0 || end <= open {
		return 0, false
	}
	parts := strings.Split(s[open+1:end], ",")
	if len(parts) != 4 {
		// rgba() written with three channels is treated as opaque.
		return 1, len(parts) == 3
	}
	a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	if err != nil {
		return 0, false
	}
	return a, true
}

// Lerp interpolates between two colors; t is clamped to [0, 1].
func Lerp(a, b color.NRGBA, t float64) color.NRGBA {
	t = math.Max(0, math.Min(1, t))

	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendRgb(cb, t).RGB255()

	alpha := float64(a.A) + (float64(b.A)-float64(a.A))*t
	return color.NRGBA{R: r, G: g, B: bl, A: clampByte(alpha)}
}

func clampByte(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
