// genicon — renders the placeholder application icon.
//
// Usage:
//
//	genicon [-o icon_master.png] [--size 1024] [--mark TEXT] [options]
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mkrou/iconforge/pkg/icon"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fatal(err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("genicon", flag.ExitOnError)

	var (
		output string
		size   int
		mark   string
		bg     string
		stops  string
	)

	fs.StringVar(&output, "o", "icon_master.png", "Output PNG path")
	fs.StringVar(&output, "output", "icon_master.png", "Output PNG path")
	fs.IntVar(&size, "size", icon.DefaultSize, "Canvas edge in pixels")
	fs.StringVar(&mark, "mark", "", "Optional monogram text drawn on the icon")
	fs.StringVar(&bg, "bg", "", "Plate color as #rrggbb (default: dark slate)")
	fs.StringVar(&stops, "stops", "", "Three gradient anchors as #rrggbb,#rrggbb,#rrggbb")

	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := icon.Config{
		Size: size,
		Mark: mark,
	}

	if bg != "" {
		c, err := icon.ParseStop(bg)
		if err != nil {
			return err
		}
		cfg.Background = c
	}

	if stops != "" {
		parts := strings.Split(stops, ",")
		if len(parts) != 3 {
			return fmt.Errorf("--stops expects exactly 3 comma-separated colors, got %d", len(parts))
		}
		for i, p := range parts {
			c, err := icon.ParseStop(strings.TrimSpace(p))
			if err != nil {
				return err
			}
			cfg.Stops[i] = c
		}
	}

	if err := icon.Generate(output, cfg); err != nil {
		return err
	}

	fmt.Printf("Generated icon at %s\n", output)
	return nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Print(`genicon — placeholder application icon generator

USAGE:
    genicon [options]

OPTIONS:
    -o, --output <path>  Output PNG path (default: icon_master.png)
    --size <px>          Canvas edge in pixels (default: 1024)
    --mark <text>        Optional monogram drawn on the icon
    --bg <hex>           Plate color as #rrggbb
    --stops <hex,hex,hex> Gradient anchors, blue→purple→pink by default

EXAMPLES:
    genicon
    genicon -o icon_master.png --size 1024
    genicon --mark P --bg "#141419" --stops "#00c6ff,#8c32ff,#ff1e96"
`)
}
