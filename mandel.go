package mandel

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	ErrInvalidLimit      = errors.New("escape limit must be positive")
	ErrDegenerateRegion  = errors.New("region must have positive width and height")
	ErrInvalidValue      = errors.New("invalid value")
	ErrInvalidResolution = errors.New("resolution must be at least 2 samples per axis")
	ErrUnknownLandmark   = errors.New("unknown landmark")
	ErrTooLarge          = errors.New("plot exceeds the served limits")
)

// Region within the complex plane. X is the real axis, Y the imaginary axis.
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// RegionAround returns the region of size w×h centred on (cx, cy).
func RegionAround(cx, cy, w, h float64) Region {
	return Region{
		Xmin: cx - w/2,
		Xmax: cx + w/2,
		Ymin: cy - h/2,
		Ymax: cy + h/2,
	}
}

func (r Region) Width() float64  { return r.Xmax - r.Xmin }
func (r Region) Height() float64 { return r.Ymax - r.Ymin }

// Centre returns the midpoint of the region.
func (r Region) Centre() (x, y float64) {
	return (r.Xmin + r.Xmax) / 2, (r.Ymin + r.Ymax) / 2
}

// Extent returns the corners in [xstart, xend, ystart, yend] order.
func (r Region) Extent() [4]float64 {
	return [4]float64{r.Xmin, r.Xmax, r.Ymin, r.Ymax}
}

func (r Region) Validate() error {
	for _, v := range r.Extent() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("region %v: %w", r.Extent(), ErrInvalidValue)
		}
	}
	if !(r.Xmin < r.Xmax) || !(r.Ymin < r.Ymax) {
		return fmt.Errorf("region %v: %w", r.Extent(), ErrDegenerateRegion)
	}
	return nil
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Region{
		Xmin: -0.8,
		Xmax: -0.7,
		Ymin: 0.05,
		Ymax: 0.15,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Region{
		Xmin: -1.85,
		Xmax: -1.75,
		Ymin: -0.10,
		Ymax: -0.02,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{
		Xmin: -0.7435,
		Xmax: -0.7420,
		Ymin: 0.1310,
		Ymax: 0.1325,
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Region{
		Xmin: -0.7480,
		Xmax: -0.7450,
		Ymin: 0.0950,
		Ymax: 0.0980,
	}

	// Valley of the Dragon – deep spiral filaments
	ValleyOfTheDragon = Region{
		Xmin: -0.7400,
		Xmax: -0.7350,
		Ymin: 0.1800,
		Ymax: 0.1850,
	}

	// Minibrot in a Mini-Spiral – self-similar copy inside a spiral arm
	MinibrotInMiniSpiral = Region{
		Xmin: -1.7390,
		Xmax: -1.7375,
		Ymin: -0.0235,
		Ymax: -0.0220,
	}
)

var landmarks = map[string]Region{
	"seahorse-valley":         SeahorseValley,
	"elephant-valley":         ElephantValley,
	"spiral-minibrot":         SpiralMinibrot,
	"triple-spiral":           TripleSpiral,
	"valley-of-the-dragon":    ValleyOfTheDragon,
	"minibrot-in-mini-spiral": MinibrotInMiniSpiral,
}

// Landmark looks up a named landmark region.
func Landmark(name string) (Region, error) {
	r, ok := landmarks[name]
	if !ok {
		return Region{}, fmt.Errorf("%q: %w", name, ErrUnknownLandmark)
	}
	return r, nil
}

// LandmarkNames returns the known landmark names in sorted order.
func LandmarkNames() []string {
	names := make([]string, 0, len(landmarks))
	for n := range landmarks {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
