// sizes.go — the fixed output table consumed by the packaging pipeline.
package export

// SizeSpec names one output artifact and its pixel dimensions.
type SizeSpec struct {
	Name   string
	Width  int
	Height int
}

// ICOSizes are the resolutions embedded in icon.ico, largest first.
var ICOSizes = []int{256, 128, 64, 48, 32, 16}

// Sizes returns the icon set written to the packaging directory. The
// filenames are a contract with the packaging tooling and must not
// change. StoreLogo has no authoritative dimension upstream, so it is
// taken as a parameter.
func Sizes(storeSize int) []SizeSpec {
	return []SizeSpec{
		{"icon.png", 512, 512},
		{"32x32.png", 32, 32},
		{"128x128.png", 128, 128},
		{"128x128@2x.png", 256, 256},
		{"Square30x30Logo.png", 30, 30},
		{"Square44x44Logo.png", 44, 44},
		{"Square71x71Logo.png", 71, 71},
		{"Square89x89Logo.png", 89, 89},
		{"Square107x107Logo.png", 107, 107},
		{"Square142x142Logo.png", 142, 142},
		{"Square150x150Logo.png", 150, 150},
		{"Square284x284Logo.png", 284, 284},
		{"Square310x310Logo.png", 310, 310},
		{"StoreLogo.png", storeSize, storeSize},
	}
}
