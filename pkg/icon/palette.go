// palette.go — gradient anchors and color interpolation.
package icon

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ColorStop is a fixed RGB anchor for the gradient stroke.
type ColorStop struct {
	R, G, B uint8
}

// Default palette: dark slate plate with a blue→purple→pink stroke.
var (
	DefaultBackground = ColorStop{20, 20, 25}
	ElectricBlue      = ColorStop{0, 198, 255}
	Purple            = ColorStop{140, 50, 255}
	Pink              = ColorStop{255, 30, 150}
)

// RGBA returns the stop as a fully opaque color.
func (c ColorStop) RGBA() color.RGBA {
	return color.RGBA{c.R, c.G, c.B, 255}
}

// ParseStop parses a "#rrggbb" string into a ColorStop.
func ParseStop(s string) (ColorStop, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return ColorStop{}, fmt.Errorf("invalid color %q: expected 6-char hex", s)
	}

	rv, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return ColorStop{}, fmt.Errorf("invalid red channel in %q: %w", s, err)
	}
	gv, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return ColorStop{}, fmt.Errorf("invalid green channel in %q: %w", s, err)
	}
	bv, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return ColorStop{}, fmt.Errorf("invalid blue channel in %q: %w", s, err)
	}

	return ColorStop{uint8(rv), uint8(gv), uint8(bv)}, nil
}

// lerp interpolates each channel independently, truncating toward zero.
func lerp(a, b ColorStop, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(int(float64(a.R) + (float64(b.R)-float64(a.R))*t)),
		G: uint8(int(float64(a.G) + (float64(b.G)-float64(a.G))*t)),
		B: uint8(int(float64(a.B) + (float64(b.B)-float64(a.B))*t)),
		A: 255,
	}
}

// GradientAt returns the stroke color at parameter t in [0,1]:
// c1→c2 over the first half, c2→c3 over the second.
func GradientAt(c1, c2, c3 ColorStop, t float64) color.RGBA {
	if t < 0.5 {
		return lerp(c1, c2, t*2)
	}
	return lerp(c2, c3, (t-0.5)*2)
}
