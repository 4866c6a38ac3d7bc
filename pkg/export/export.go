// Package export fans one master image out into the raster icon set a
// desktop packaging pipeline expects: a table of square PNG sizes, a
// multi-resolution ICO, and a public web icon.
//
// Every output derives independently from the decoded source image, so
// no resize compounds the quality loss of an earlier one, and two runs
// over the same source produce byte-identical files.
package export

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	ico "github.com/sergeymakinen/go-ico"
	xdraw "golang.org/x/image/draw"
)

// ErrSourceNotFound reports that the source image path does not exist.
var ErrSourceNotFound = errors.New("source image not found")

// Options holds export parameters. The zero value targets the standard
// packaging layout relative to the current working directory.
type Options struct {
	IconsDir   string // Packaging icon directory (default: src-tauri/icons)
	PublicDir  string // Public web directory (default: public)
	Filter     string // Resampling filter name (default: catmullrom)
	PublicSize int    // Edge of the public icon (default: 512)
	StoreSize  int    // Edge of StoreLogo.png (default: 50)
}

// withDefaults fills unset fields with the standard values.
func (o Options) withDefaults() Options {
	if o.IconsDir == "" {
		o.IconsDir = filepath.Join("src-tauri", "icons")
	}
	if o.PublicDir == "" {
		o.PublicDir = "public"
	}
	if o.PublicSize <= 0 {
		o.PublicSize = 512
	}
	if o.StoreSize <= 0 {
		o.StoreSize = 50
	}
	return o
}

// Run exports the complete icon set derived from the source image.
// A missing source fails with ErrSourceNotFound before anything is
// written; any later save failure aborts the run immediately.
func Run(source string, opts Options) error {
	opts = opts.withDefaults()

	if _, err := os.Stat(source); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrSourceNotFound, source)
		}
		return fmt.Errorf("stat %s: %w", source, err)
	}

	scaler, err := Scaler(opts.Filter)
	if err != nil {
		return err
	}

	src, err := loadImage(source)
	if err != nil {
		return fmt.Errorf("decode %s: %w", source, err)
	}

	if err := os.MkdirAll(opts.IconsDir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", opts.IconsDir, err)
	}
	if err := os.MkdirAll(opts.PublicDir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", opts.PublicDir, err)
	}

	fmt.Printf("Processing icons from %s...\n", source)

	for _, spec := range Sizes(opts.StoreSize) {
		resized := resize(src, spec.Width, spec.Height, scaler)
		if err := writePNG(filepath.Join(opts.IconsDir, spec.Name), resized); err != nil {
			return err
		}
		fmt.Printf("Saved %s (%dx%d)\n", spec.Name, spec.Width, spec.Height)
	}

	if err := writeICO(filepath.Join(opts.IconsDir, "icon.ico"), src, scaler); err != nil {
		return err
	}
	fmt.Println("Saved icon.ico")

	public := resize(src, opts.PublicSize, opts.PublicSize, scaler)
	publicPath := filepath.Join(opts.PublicDir, "icon.png")
	if err := writePNG(publicPath, public); err != nil {
		return err
	}
	fmt.Printf("Saved %s\n", publicPath)

	return nil
}

// loadImage decodes the canonical source image. PNG, JPEG and GIF
// decoders are registered.
func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

// resize scales src into a fresh w×h buffer. src is never mutated.
func resize(src image.Image, w, h int, scaler xdraw.Scaler) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// writeICO bundles the source at each ICO size into one container file.
func writeICO(path string, src image.Image, scaler xdraw.Scaler) error {
	imgs := make([]image.Image, 0, len(ICOSizes))
	for _, s := range ICOSizes {
		imgs = append(imgs, resize(src, s, s, scaler))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := ico.EncodeAll(f, imgs); err != nil {
		return fmt.Errorf("encode ICO: %w", err)
	}
	return nil
}

// writePNG encodes img to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return nil
}
