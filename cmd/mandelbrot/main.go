// mandelbrot plots the escape time of the Mandelbrot set over a region of the
// complex plane and saves it as a grayscale PNG.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	mandel "github.com/marben/mandelplot"
	"github.com/marben/mandelplot/render"
)

const outputFile = "mandelbrot.png"

const usage = `Plots the Mandelbrot set.

Usage:
    mandelbrot [--centre=X,Y] [[--height=HEIGHT] [--width=WIDTH] | --size=WxH] [--escape-limit=LIMIT] [--landmark=NAME]

Options:
    -c X,Y --centre=X,Y            The centre point of the plot [default: 0,0]
    -W WIDTH --width=WIDTH         The horizontal size of the plot [default: 8]
    -H HEIGHT --height=HEIGHT      The vertical size of the plot [default: 8]
    -s WxH --size=WxH              Size of the plot (combines W and H)
    -e LIMIT --escape-limit=LIMIT  The maximum escape time for each point on the plot [default: 20]
    -l NAME --landmark=NAME        Centre and size the plot on a named landmark
    -h --help                      Show this help screen
`

func main() {
	cfg, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	if err := run(cfg, render.DefaultFigure, outputFile); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

// parseArgs turns command line arguments into a validated Config. Errors and
// usage are written to stderr; flag.ErrHelp is returned for -h/--help.
func parseArgs(args []string, stderr io.Writer) (mandel.Config, error) {
	fs := flag.NewFlagSet("mandelbrot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }

	def := mandel.DefaultConfig()
	var (
		centre   string
		width    float64
		height   float64
		size     string
		limit    int
		landmark string
	)
	fs.StringVar(&centre, "centre", "0,0", "centre point X,Y")
	fs.StringVar(&centre, "c", "0,0", "centre point X,Y")
	fs.Float64Var(&width, "width", def.Width, "horizontal size")
	fs.Float64Var(&width, "W", def.Width, "horizontal size")
	fs.Float64Var(&height, "height", def.Height, "vertical size")
	fs.Float64Var(&height, "H", def.Height, "vertical size")
	fs.StringVar(&size, "size", "", "size WxH, overrides width and height")
	fs.StringVar(&size, "s", "", "size WxH, overrides width and height")
	fs.IntVar(&limit, "escape-limit", def.EscapeLimit, "maximum escape time")
	fs.IntVar(&limit, "e", def.EscapeLimit, "maximum escape time")
	fs.StringVar(&landmark, "landmark", "", "named landmark region")
	fs.StringVar(&landmark, "l", "", "named landmark region")

	if err := fs.Parse(args); err != nil {
		return mandel.Config{}, err
	}
	if fs.NArg() > 0 {
		return mandel.Config{}, usageErr(fs, fmt.Errorf("unexpected arguments: %v", fs.Args()))
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg := def
	if landmark != "" {
		r, err := mandel.Landmark(landmark)
		if err != nil {
			return mandel.Config{}, usageErr(fs, fmt.Errorf("--landmark: %w (known: %v)", err, mandel.LandmarkNames()))
		}
		cfg = cfg.WithLandmark(r)
	}

	if landmark == "" || set["centre"] || set["c"] {
		x, y, err := mandel.ParseCentre(centre)
		if err != nil {
			return mandel.Config{}, usageErr(fs, fmt.Errorf("--centre: %w", err))
		}
		cfg.CentreX, cfg.CentreY = x, y
	}

	switch {
	case size != "":
		w, h, err := mandel.ParseSize(size)
		if err != nil {
			return mandel.Config{}, usageErr(fs, fmt.Errorf("--size: %w", err))
		}
		cfg.Width, cfg.Height = w, h
	case landmark == "":
		cfg.Width, cfg.Height = width, height
	default:
		if set["width"] || set["W"] {
			cfg.Width = width
		}
		if set["height"] || set["H"] {
			cfg.Height = height
		}
	}
	cfg.EscapeLimit = limit

	if err := cfg.Validate(); err != nil {
		return mandel.Config{}, usageErr(fs, err)
	}
	return cfg, nil
}

func usageErr(fs *flag.FlagSet, err error) error {
	fmt.Fprintln(fs.Output(), err)
	fs.Usage()
	return err
}

// run computes the escape-time raster for cfg and saves it with renderer.
func run(cfg mandel.Config, renderer mandel.Renderer, filename string) error {
	log.Printf("Size: (%g, %g)", cfg.Width, cfg.Height)

	// Step 1: Sample the region and compute escape times
	raster, err := mandel.Compute(cfg)
	if err != nil {
		return fmt.Errorf("mandel.Compute: %w", err)
	}

	// Step 2: Render the raster and save it
	region := cfg.Region()
	log.Printf("Saving plot of %v to %q...", region.Extent(), filename)
	var buf bytes.Buffer
	if err := renderer.Render(&buf, raster, region); err != nil {
		return fmt.Errorf("renderer.Render: %w", err)
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if _, err := buf.WriteTo(f); err != nil {
		return fmt.Errorf("write %q: %w", filename, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %q: %w", filename, err)
	}

	log.Printf("Plot saved to %q", filename)
	return nil
}
