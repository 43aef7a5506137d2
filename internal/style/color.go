package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an RGBA color. Styling regions carry either a Color or a Gradient.
type Color struct {
	R, G, B, A uint8
}

var (
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
	Transparent = Color{0, 0, 0, 0}
)

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa" hex notation.
// The leading '#' is optional.
func ParseColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3:
		var c [3]uint8
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(string(h[i]), 16, 8)
			if err != nil {
				return Color{}, fmt.Errorf("invalid color %q", s)
			}
			c[i] = uint8(v * 17)
		}
		return Color{c[0], c[1], c[2], 255}, nil
	case 6, 8:
		var c [4]uint8
		c[3] = 255
		for i := 0; i < len(h)/2; i++ {
			v, err := strconv.ParseUint(h[2*i:2*i+2], 16, 8)
			if err != nil {
				return Color{}, fmt.Errorf("invalid color %q", s)
			}
			c[i] = uint8(v)
		}
		return Color{c[0], c[1], c[2], c[3]}, nil
	}
	return Color{}, fmt.Errorf("invalid color %q", s)
}

// MustColor parses a hex color and panics on failure. For constants in
// tests and defaults only.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns "#rrggbb", or "#rrggbbaa" when the alpha channel is not opaque.
func (c Color) Hex() string {
	if c.A != 255 {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA converts to the standard library color type.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Opaque reports whether the color is fully opaque.
func (c Color) Opaque() bool { return c.A == 255 }
