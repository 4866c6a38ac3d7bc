// mark.go — optional monogram overlay using the embedded Go Bold font.
package icon

import (
	"fmt"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// drawMark draws text centered in the lower stroke gap of an s×s canvas.
func drawMark(dc *gg.Context, text string, s float64) error {
	parsed, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return fmt.Errorf("parse embedded font: %w", err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    s * 0.28,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("create font face: %w", err)
	}
	defer face.Close()

	dc.SetFontFace(face)
	dc.SetRGBA255(255, 255, 255, 235)
	dc.DrawStringAnchored(text, s*0.5, s*0.62, 0.5, 0.5)
	return nil
}
