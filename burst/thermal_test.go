package burst

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func assertColorNear(t *testing.T, want, got colorful.Color) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, 1e-6, "red")
	assert.InDelta(t, want.G, got.G, 1e-6, "green")
	assert.InDelta(t, want.B, got.B, 1e-6, "blue")
}

func TestThermalColor_Endpoints(t *testing.T) {
	assert.Equal(t, Palette[0], ThermalColor(0))
	assertColorNear(t, Palette[3], ThermalColor(1))

	r, g, b := ThermalColor(1).RGB255()
	assert.Equal(t, [3]uint8{255, 255, 255}, [3]uint8{r, g, b})
}

func TestThermalColor_ContinuousAtSegmentBoundaries(t *testing.T) {
	for _, boundary := range []float64{0.33, 0.66} {
		below := ThermalColor(boundary - 1e-9)
		at := ThermalColor(boundary)
		assertColorNear(t, below, at)
	}

	assertColorNear(t, Palette[1], ThermalColor(0.33))
	assertColorNear(t, Palette[2], ThermalColor(0.66))
}

func TestThermalColor_Midpoints(t *testing.T) {
	assertColorNear(t, Palette[0].BlendRgb(Palette[1], 0.5), ThermalColor(0.165))
	assertColorNear(t, Palette[2].BlendRgb(Palette[3], 0.5), ThermalColor(0.83))
}

func TestIntensity_Clamped(t *testing.T) {
	assert.Equal(t, 0.0, Intensity(0))
	assert.InDelta(t, 0.3, Intensity(0.02), 1e-12)
	assert.Equal(t, 1.0, Intensity(0.5))
	assert.Equal(t, 0.0, Intensity(-1))
}

func TestNRGBA_ClampsAlpha(t *testing.T) {
	c := NRGBA(Palette[3], 300)
	assert.Equal(t, uint8(255), c.A)

	c = NRGBA(Palette[0], -6)
	assert.Equal(t, uint8(0), c.A)
	assert.Equal(t, uint8(0x1B), c.R)
	assert.Equal(t, uint8(0x00), c.G)
	assert.Equal(t, uint8(0x50), c.B)
}

func TestPalette_Stops(t *testing.T) {
	want := [4][3]uint8{
		{0x1B, 0x00, 0x50},
		{0x7A, 0x1C, 0x8A},
		{0xFF, 0x6B, 0x1A},
		{0xFF, 0xFF, 0xFF},
	}
	for i, c := range Palette {
		r, g, b := c.RGB255()
		assert.Equal(t, want[i], [3]uint8{r, g, b}, "stop %d", i)
	}
}

func TestMustHex_PanicsOnMalformed(t *testing.T) {
	assert.Panics(t, func() { mustHex("not-a-color") })
}
