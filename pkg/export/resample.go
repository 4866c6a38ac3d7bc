// resample.go — resampling filter selection.
package export

import (
	"fmt"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// Scaler returns the resampling kernel for a filter name. CatmullRom is
// the default: a multi-tap kernel with good quality in both directions.
func Scaler(name string) (xdraw.Scaler, error) {
	switch strings.ToLower(name) {
	case "", "catmullrom":
		return xdraw.CatmullRom, nil
	case "bilinear":
		return xdraw.BiLinear, nil
	case "approx-bilinear":
		return xdraw.ApproxBiLinear, nil
	case "nearest":
		return xdraw.NearestNeighbor, nil
	default:
		return nil, fmt.Errorf("unknown resampling filter %q (use: catmullrom, bilinear, approx-bilinear, nearest)", name)
	}
}
