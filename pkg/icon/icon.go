// Package icon renders the placeholder application icon.
//
// The icon is drawn procedurally: a dark rounded-rectangle plate, a
// color-interpolated wavy stroke built by stamping filled circles along
// a sine path, and a translucent highlight ellipse. Rendering is a pure
// function of the Config, so repeated runs produce identical output.
package icon

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"
)

// DefaultSize is the master icon edge length in pixels.
const DefaultSize = 1024

// strokeSteps is the number of circle stamps along the wave path.
const strokeSteps = 200

// highlightAlpha is the opacity of the glass highlight ellipse.
const highlightAlpha = 20

// Config holds parameters for icon rendering. The zero value renders
// the default 1024px icon with the stock palette and no mark.
type Config struct {
	Size       int          // Canvas edge in pixels (default: 1024)
	Background ColorStop    // Plate fill (default: dark slate)
	Stops      [3]ColorStop // Gradient anchors for the stroke
	Mark       string       // Optional monogram drawn over the plate
}

// withDefaults fills unset fields with the stock values.
func (c Config) withDefaults() Config {
	if c.Size <= 0 {
		c.Size = DefaultSize
	}
	zero := ColorStop{}
	if c.Background == zero {
		c.Background = DefaultBackground
	}
	if c.Stops == [3]ColorStop{} {
		c.Stops = [3]ColorStop{ElectricBlue, Purple, Pink}
	}
	return c
}

// Thickness returns the stroke diameter at parameter t for canvas edge s.
// It peaks at the curve's midpoint and tapers by half toward both ends.
func Thickness(t, s float64) float64 {
	return 0.15 * s * (1 - 0.5*math.Abs(t-0.5))
}

// Draw renders the icon onto a transparent canvas and returns it.
func Draw(cfg Config) (image.Image, error) {
	cfg = cfg.withDefaults()
	s := float64(cfg.Size)

	dc := gg.NewContext(cfg.Size, cfg.Size)

	// Base plate: rounded rectangle spanning the full canvas.
	dc.SetColor(cfg.Background.RGBA())
	dc.DrawRoundedRectangle(0, 0, s, s, s/5)
	dc.Fill()

	// Gradient stroke: one sine period across the margin-inset band,
	// stamped as overlapping filled circles.
	c1, c2, c3 := cfg.Stops[0], cfg.Stops[1], cfg.Stops[2]
	margin := s * 0.2
	band := s - 2*margin
	for i := 0; i < strokeSteps; i++ {
		t := float64(i) / float64(strokeSteps-1)
		x := margin + band*t
		y := s/2 + math.Sin(t*2*math.Pi)*band*0.3

		dc.SetColor(GradientAt(c1, c2, c3, t))
		dc.DrawCircle(x, y, Thickness(t, s)/2)
		dc.Fill()
	}

	// Glass highlight over the upper half.
	dc.SetRGBA255(255, 255, 255, highlightAlpha)
	dc.DrawEllipse(s*0.5, s*0.3, s*0.4, s*0.2)
	dc.Fill()

	if cfg.Mark != "" {
		if err := drawMark(dc, cfg.Mark, s); err != nil {
			return nil, fmt.Errorf("draw mark: %w", err)
		}
	}

	return dc.Image(), nil
}

// Generate renders the icon and writes it as PNG to path.
func Generate(path string, cfg Config) error {
	img, err := Draw(cfg)
	if err != nil {
		return err
	}
	return writePNG(path, img)
}
