// Package colors converts the color notations accepted in markup (hex, CSS
// keywords, rgb, hsl, hsv, hwb) to canonical #rrggbb strings that any
// backend can hand to its renderer.
package colors

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// NormalizeHex validates a #RGB or #RRGGBB color (the leading # is
// optional) and returns it as lower-case #rrggbb.
func NormalizeHex(s string) (string, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return "", fmt.Errorf("invalid hex color %q", s)
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return "", fmt.Errorf("invalid hex color %q", s)
	}
	return c.Hex(), nil
}

// Keyword looks up a CSS color keyword, case-insensitively.
func Keyword(name string) (string, bool) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", false
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), true
}

// KeywordHex is Keyword with an error for unknown names.
func KeywordHex(name string) (string, error) {
	hex, ok := Keyword(name)
	if !ok {
		return "", fmt.Errorf("unknown color keyword %q", name)
	}
	return hex, nil
}

// RGB formats 0-255 components.
func RGB(r, g, b int) (string, error) {
	for _, v := range []int{r, g, b} {
		if v < 0 || v > 255 {
			return "", fmt.Errorf("rgb component %d out of range 0-255", v)
		}
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b), nil
}

// HSL converts hue in degrees and saturation/lightness in percent.
func HSL(h, s, l int) (string, error) {
	hf, sf, lf, err := hueTriple(h, s, l)
	if err != nil {
		return "", err
	}
	return colorful.Hsl(hf, sf, lf).Clamped().Hex(), nil
}

// HSV converts hue in degrees and saturation/value in percent.
func HSV(h, s, v int) (string, error) {
	hf, sf, vf, err := hueTriple(h, s, v)
	if err != nil {
		return "", err
	}
	return colorful.Hsv(hf, sf, vf).Clamped().Hex(), nil
}

// HWB converts hue in degrees and whiteness/blackness in percent.
func HWB(h, w, b int) (string, error) {
	hf, wf, bf, err := hueTriple(h, w, b)
	if err != nil {
		return "", err
	}
	return hwb(hf, wf, bf).Clamped().Hex(), nil
}

// ANSI256 validates a 256-color palette index.
func ANSI256(n int) (int, error) {
	if n < 0 || n > 255 {
		return 0, fmt.Errorf("ansi256 code %d out of range 0-255", n)
	}
	return n, nil
}

func hwb(h, w, b float64) colorful.Color {
	if w+b >= 1 {
		gray := w / (w + b)
		return colorful.Color{R: gray, G: gray, B: gray}
	}
	v := 1 - b
	return colorful.Hsv(h, 1-w/v, v)
}

// hueTriple validates a (hue, percent, percent) tuple and scales the
// percentages to 0..1.
func hueTriple(h, a, c int) (float64, float64, float64, error) {
	if h < 0 || h > 360 {
		return 0, 0, 0, fmt.Errorf("hue %d out of range 0-360", h)
	}
	if a < 0 || a > 100 || c < 0 || c > 100 {
		return 0, 0, 0, fmt.Errorf("percentages %d,%d out of range 0-100", a, c)
	}
	return float64(h), float64(a) / 100, float64(c) / 100, nil
}
