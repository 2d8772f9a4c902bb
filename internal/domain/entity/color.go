package entity

import (
	"fmt"
	"strings"
)

// Color is an RGB title-bar color.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// ColorDefault is the color reported for windows that were never tinted or
// have been reset to host chrome. Black, per the read-back contract.
var ColorDefault = Color{}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// CSS returns the color as a CSS rgb() literal.
func (c Color) CSS() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// IsDefault returns true if the color equals ColorDefault.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}

// ParseHex parses "#rrggbb", "rrggbb", "#rgb" or "rgb".
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(hex) {
	case 3:
		expanded := make([]byte, 6)
		for i := 0; i < 3; i++ {
			expanded[2*i] = hex[i]
			expanded[2*i+1] = hex[i]
		}
		hex = string(expanded)
	case 6:
	default:
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}

	var c Color
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return c, nil
}

// Luminosity selects the lightness band for generated colors so a tint stays
// legible against the active theme.
type Luminosity int

const (
	LuminosityLight Luminosity = iota
	LuminosityDark
)

// String implements fmt.Stringer.
func (l Luminosity) String() string {
	if l == LuminosityDark {
		return "dark"
	}
	return "light"
}

// LuminosityFor maps a theme hint to the matching luminosity band.
func LuminosityFor(prefersDark bool) Luminosity {
	if prefersDark {
		return LuminosityDark
	}
	return LuminosityLight
}
