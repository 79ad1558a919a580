package burst

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the four thermal stops, coldest first.
var Palette = [4]colorful.Color{
	mustHex("#1B0050"), // deep purple
	mustHex("#7A1C8A"), // magenta
	mustHex("#FF6B1A"), // orange
	mustHex("#FFFFFF"), // white
}

// mustHex parses a "#RRGGBB" constant and panics if it is malformed.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("burst: bad palette color " + s + ": " + err.Error())
	}
	return c
}

// ThermalColor maps t in [0,1] onto the palette with three linear RGB
// segments. Callers clamp t.
func ThermalColor(t float64) colorful.Color {
	switch {
	case t < 0.33:
		return Palette[0].BlendRgb(Palette[1], t/0.33)
	case t < 0.66:
		return Palette[1].BlendRgb(Palette[2], (t-0.33)/0.33)
	default:
		return Palette[2].BlendRgb(Palette[3], (t-0.66)/0.34)
	}
}

// Intensity converts a smoothed volume into a thermal intensity in [0,1].
func Intensity(smoothed float64) float64 {
	return Clamp(smoothed*Tuning.ColorScale, 0, 1)
}

// NRGBA converts c to 8-bit channels with the given alpha, clamped to [0,255].
func NRGBA(c colorful.Color, alpha int) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 255 {
		alpha = 255
	}
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha)}
}
