// Package colorgen generates well-distributed title-bar colors.
package colorgen

import (
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/bnema/tintbar/internal/domain/entity"
)

// Lightness bands keep generated tints legible: dark tints sit well below
// mid gray so a light title stays readable, light tints well above it.
const (
	darkLightnessMin  = 0.22
	darkLightnessMax  = 0.32
	lightLightnessMin = 0.70
	lightLightnessMax = 0.82

	darkSaturationMin  = 0.40
	darkSaturationMax  = 0.65
	lightSaturationMin = 0.45
	lightSaturationMax = 0.75
)

// Generator produces random HSL colors inside a luminosity band.
type Generator struct{}

// New creates a generator backed by the shared random source.
func New() *Generator {
	return &Generator{}
}

// Generate implements port.ColorGenerator. Hue is uniform over the full
// wheel; saturation and lightness are drawn from the band matching the
// requested luminosity.
func (g *Generator) Generate(lum entity.Luminosity) entity.Color {
	hue := rand.Float64() * 360

	var c colorful.Color
	switch lum {
	case entity.LuminosityDark:
		c = colorful.Hsl(hue,
			between(darkSaturationMin, darkSaturationMax),
			between(darkLightnessMin, darkLightnessMax))
	default:
		c = colorful.Hsl(hue,
			between(lightSaturationMin, lightSaturationMax),
			between(lightLightnessMin, lightLightnessMax))
	}

	r, green, b := c.Clamped().RGB255()
	return entity.Color{R: r, G: green, B: b}
}

func between(lo, hi float64) float64 {
	return lo + rand.Float64()*(hi-lo)
}
