package shade

import (
	"fmt"
	"image/color"
	"strings"
)

var (
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
	Transparent = Color{}
)

// Color is a 4-channel RGBA color with float64 components, nominally in [0, 1].
type Color struct {
	R, G, B, A float64
}

// MakeColor converts a stdlib color to a Color.
func MakeColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return Color{float64(r) / 65535, float64(g) / 65535, float64(b) / 65535, float64(a) / 65535}
}

// HexColor parses colors like "f90", "ff9900" or "ff9900ff".
func HexColor(x string) Color {
	x = strings.TrimPrefix(x, "#")
	var r, g, b, a int
	a = 255
	switch len(x) {
	case 3:
		fmt.Sscanf(x, "%1x%1x%1x", &r, &g, &b)
		r = r * 17
		g = g * 17
		b = b * 17
	case 4:
		fmt.Sscanf(x, "%1x%1x%1x%1x", &r, &g, &b, &a)
		r = r * 17
		g = g * 17
		b = b * 17
		a = a * 17
	case 6:
		fmt.Sscanf(x, "%02x%02x%02x", &r, &g, &b)
	case 8:
		fmt.Sscanf(x, "%02x%02x%02x%02x", &r, &g, &b, &a)
	}
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, float64(a) / 255}
}

func (c Color) NRGBA() color.NRGBA {
	r := uint8(clamp(c.R, 0, 1) * 255)
	g := uint8(clamp(c.G, 0, 1) * 255)
	b := uint8(clamp(c.B, 0, 1) * 255)
	a := uint8(clamp(c.A, 0, 1) * 255)
	return color.NRGBA{r, g, b, a}
}

func (c Color) Add(b Color) Color {
	return Color{c.R + b.R, c.G + b.G, c.B + b.B, c.A + b.A}
}

func (c Color) Sub(b Color) Color {
	return Color{c.R - b.R, c.G - b.G, c.B - b.B, c.A - b.A}
}

func (c Color) MulScalar(f float64) Color {
	return Color{c.R * f, c.G * f, c.B * f, c.A * f}
}

// Lerp interpolates between c and b by t in [0, 1].
func (c Color) Lerp(b Color, t float64) Color {
	return c.Add(b.Sub(c).MulScalar(t))
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
