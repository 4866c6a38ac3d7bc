// exporticons — resizes a master image into the packaging icon set.
//
// Usage:
//
//	exporticons [options] <source-image>
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mkrou/iconforge/pkg/export"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fatal(err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("exporticons", flag.ExitOnError)

	var opts export.Options
	fs.StringVar(&opts.IconsDir, "icons-dir", "", "Packaging icon directory (default: src-tauri/icons)")
	fs.StringVar(&opts.PublicDir, "public-dir", "", "Public web directory (default: public)")
	fs.StringVar(&opts.Filter, "filter", "", "Resampling filter: catmullrom, bilinear, approx-bilinear, nearest")
	fs.IntVar(&opts.PublicSize, "public-size", 0, "Edge of the public icon in pixels (default: 512)")
	fs.IntVar(&opts.StoreSize, "store-size", 0, "Edge of StoreLogo.png in pixels (default: 50)")

	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		printUsage()
		os.Exit(1)
	}

	return export.Run(fs.Arg(0), opts)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Fprint(os.Stderr, `exporticons — packaging icon set exporter

USAGE:
    exporticons [options] <source-image>

OPTIONS:
    --icons-dir <path>   Packaging icon directory (default: src-tauri/icons)
    --public-dir <path>  Public web directory (default: public)
    --filter <name>      Resampling filter: catmullrom, bilinear,
                         approx-bilinear, nearest (default: catmullrom)
    --public-size <px>   Edge of the public icon (default: 512)
    --store-size <px>    Edge of StoreLogo.png (default: 50)

EXAMPLES:
    exporticons icon_master.png
    exporticons --filter bilinear --store-size 50 icon_master.png
`)
}
