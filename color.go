package hexelevation

import (
	"github.com/lucasb-eyer/go-colorful"
)

const (
	seaFloorDepth   = -1000
	summitElevation = 8000
)

// A DisplayColor is a color in HSL space. Hue is in degrees in [0, 360),
// Saturation and Lightness are in [0, 1].
type DisplayColor struct {
	Hue        float64
	Saturation float64
	Lightness  float64
}

// Encode returns the display color for elevation. Elevations at or below sea
// level run from navy at -1000m to cyan at sea level, elevations above sea
// level from dark brown to white at 8000m. Elevations outside that range
// saturate.
func Encode(elevation float64) DisplayColor {
	if elevation <= 0 {
		t := 1 - clamp(elevation/seaFloorDepth, 0, 1)
		return DisplayColor{
			Hue:        220 - t*20,
			Saturation: 0.6 - t*0.1,
			Lightness:  0.3 + t*0.4,
		}
	}
	t := clamp(elevation/summitElevation, 0, 1)
	return DisplayColor{
		Hue:        30 * (1 - t),
		Saturation: 0.5 * (1 - t),
		Lightness:  0.3 + t*0.7,
	}
}

// Colorful returns c as a colorful.Color.
func (c DisplayColor) Colorful() colorful.Color {
	return colorful.Hsl(c.Hue, c.Saturation, c.Lightness).Clamped()
}

// RGBA implements image/color.Color.
func (c DisplayColor) RGBA() (r, g, b, a uint32) {
	return c.Colorful().RGBA()
}

// Hex returns c as a #rrggbb string.
func (c DisplayColor) Hex() string {
	return c.Colorful().Hex()
}

func clamp(x, lo, hi float64) float64 {
	return max(lo, min(x, hi))
}
