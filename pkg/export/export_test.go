package export

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/mkrou/iconforge/pkg/icon"
)

// genMaster renders a small master icon into a temp dir and returns its path.
func genMaster(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "icon_master.png")
	if err := icon.Generate(path, icon.Config{Size: 128}); err != nil {
		t.Fatalf("generate master: %v", err)
	}
	return path
}

// pngDims decodes a PNG file and returns its pixel dimensions.
func pngDims(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestRunWritesAllArtifacts(t *testing.T) {
	source := genMaster(t)
	dir := t.TempDir()
	opts := Options{
		IconsDir:  filepath.Join(dir, "icons"),
		PublicDir: filepath.Join(dir, "public"),
	}

	if err := Run(source, opts); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, spec := range Sizes(50) {
		path := filepath.Join(opts.IconsDir, spec.Name)
		w, h := pngDims(t, path)
		if w != spec.Width || h != spec.Height {
			t.Errorf("%s: got %dx%d, want %dx%d", spec.Name, w, h, spec.Width, spec.Height)
		}
	}

	w, h := pngDims(t, filepath.Join(opts.PublicDir, "icon.png"))
	if w != 512 || h != 512 {
		t.Errorf("public icon: got %dx%d, want 512x512", w, h)
	}
}

func TestRunICOContainsAllSizes(t *testing.T) {
	source := genMaster(t)
	dir := t.TempDir()
	opts := Options{
		IconsDir:  filepath.Join(dir, "icons"),
		PublicDir: filepath.Join(dir, "public"),
	}

	if err := Run(source, opts); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// ICONDIR header: reserved (0), type (1), image count.
	data, err := os.ReadFile(filepath.Join(opts.IconsDir, "icon.ico"))
	if err != nil {
		t.Fatalf("read icon.ico: %v", err)
	}
	if len(data) < 6 {
		t.Fatalf("icon.ico truncated: %d bytes", len(data))
	}
	if reserved := binary.LittleEndian.Uint16(data[0:2]); reserved != 0 {
		t.Errorf("reserved field: got %d, want 0", reserved)
	}
	if imageType := binary.LittleEndian.Uint16(data[2:4]); imageType != 1 {
		t.Errorf("image type: got %d, want 1 (icon)", imageType)
	}
	if count := binary.LittleEndian.Uint16(data[4:6]); int(count) != len(ICOSizes) {
		t.Errorf("embedded images: got %d, want %d", count, len(ICOSizes))
	}
}

func TestRunMissingSource(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		IconsDir:  filepath.Join(dir, "icons"),
		PublicDir: filepath.Join(dir, "public"),
	}

	err := Run(filepath.Join(dir, "nope.png"), opts)
	if !errors.Is(err, ErrSourceNotFound) {
		t.Fatalf("expected ErrSourceNotFound, got %v", err)
	}

	// Nothing may be written, not even the directories.
	if _, err := os.Stat(opts.IconsDir); !os.IsNotExist(err) {
		t.Error("icons dir was created despite missing source")
	}
	if _, err := os.Stat(opts.PublicDir); !os.IsNotExist(err) {
		t.Error("public dir was created despite missing source")
	}
}

func TestRunUnknownFilter(t *testing.T) {
	source := genMaster(t)
	dir := t.TempDir()
	opts := Options{
		IconsDir:  filepath.Join(dir, "icons"),
		PublicDir: filepath.Join(dir, "public"),
		Filter:    "lanczos9000",
	}

	if err := Run(source, opts); err == nil {
		t.Fatal("expected error for unknown filter")
	}
	if _, err := os.Stat(opts.IconsDir); !os.IsNotExist(err) {
		t.Error("icons dir was created despite invalid filter")
	}
}

func TestRunDeterministic(t *testing.T) {
	source := genMaster(t)

	export := func() (string, string) {
		dir := t.TempDir()
		opts := Options{
			IconsDir:  filepath.Join(dir, "icons"),
			PublicDir: filepath.Join(dir, "public"),
		}
		if err := Run(source, opts); err != nil {
			t.Fatalf("Run: %v", err)
		}
		return opts.IconsDir, opts.PublicDir
	}

	icons1, public1 := export()
	icons2, public2 := export()

	for _, name := range []string{"32x32.png", "icon.ico", "Square310x310Logo.png"} {
		a, err := os.ReadFile(filepath.Join(icons1, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		b, err := os.ReadFile(filepath.Join(icons2, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("%s differs between runs", name)
		}
	}

	a, _ := os.ReadFile(filepath.Join(public1, "icon.png"))
	b, _ := os.ReadFile(filepath.Join(public2, "icon.png"))
	if !bytes.Equal(a, b) {
		t.Error("public icon differs between runs")
	}
}

func TestRunStoreSizeOverride(t *testing.T) {
	source := genMaster(t)
	dir := t.TempDir()
	opts := Options{
		IconsDir:   filepath.Join(dir, "icons"),
		PublicDir:  filepath.Join(dir, "public"),
		StoreSize:  64,
		PublicSize: 256,
	}

	if err := Run(source, opts); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if w, h := pngDims(t, filepath.Join(opts.IconsDir, "StoreLogo.png")); w != 64 || h != 64 {
		t.Errorf("StoreLogo.png: got %dx%d, want 64x64", w, h)
	}
	if w, h := pngDims(t, filepath.Join(opts.PublicDir, "icon.png")); w != 256 || h != 256 {
		t.Errorf("public icon: got %dx%d, want 256x256", w, h)
	}
}

func TestScaler(t *testing.T) {
	for _, name := range []string{"", "catmullrom", "CatmullRom", "bilinear", "approx-bilinear", "nearest"} {
		if _, err := Scaler(name); err != nil {
			t.Errorf("Scaler(%q): %v", name, err)
		}
	}
	if _, err := Scaler("bicubic"); err == nil {
		t.Error("Scaler(bicubic): expected error")
	}
}

func TestSizesTable(t *testing.T) {
	specs := Sizes(50)

	seen := make(map[string]bool)
	for _, spec := range specs {
		if seen[spec.Name] {
			t.Errorf("duplicate name %s", spec.Name)
		}
		seen[spec.Name] = true
		if spec.Width <= 0 || spec.Height <= 0 {
			t.Errorf("%s: non-positive dimensions %dx%d", spec.Name, spec.Width, spec.Height)
		}
	}

	// The packaging tooling looks these up by exact name.
	for _, name := range []string{"icon.png", "32x32.png", "128x128.png", "128x128@2x.png", "Square310x310Logo.png", "StoreLogo.png"} {
		if !seen[name] {
			t.Errorf("missing required entry %s", name)
		}
	}

	for _, spec := range Sizes(77) {
		if spec.Name == "StoreLogo.png" && (spec.Width != 77 || spec.Height != 77) {
			t.Errorf("StoreLogo.png: got %dx%d, want 77x77", spec.Width, spec.Height)
		}
	}
}
