package mandel

import (
	"fmt"
	"image"
)

// Linspace returns n evenly spaced values over [start, end]. The last value
// is exactly end.
func Linspace(start, end float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	vals := make([]float64, n)
	if n == 1 {
		vals[0] = start
		return vals
	}
	step := (end - start) / float64(n-1)
	for i := range vals {
		vals[i] = start + float64(i)*step
	}
	vals[n-1] = end
	return vals
}

// Grid is the set of sample points over a region: the Cartesian product of
// X (real axis) and Y (imaginary axis).
type Grid struct {
	Region Region
	X, Y   []float64
}

func NewGrid(r Region, nx, ny int) (Grid, error) {
	if err := r.Validate(); err != nil {
		return Grid{}, err
	}
	if nx < 2 || ny < 2 {
		return Grid{}, fmt.Errorf("grid %dx%d: %w", nx, ny, ErrInvalidResolution)
	}
	return Grid{
		Region: r,
		X:      Linspace(r.Xmin, r.Xmax, nx),
		Y:      Linspace(r.Ymin, r.Ymax, ny),
	}, nil
}

func (g Grid) Len() int { return len(g.X) * len(g.Y) }

// Bounds returns the grid in sample coordinates: columns along x, rows along y.
func (g Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, len(g.X), len(g.Y))
}

func (g Grid) Point(xi, yi int) complex128 {
	return complex(g.X[xi], g.Y[yi])
}

// Points returns every sample, x outer and y inner, so point xi*len(Y)+yi
// is Point(xi, yi).
func (g Grid) Points() []complex128 {
	pts := make([]complex128, 0, g.Len())
	for _, x := range g.X {
		for _, y := range g.Y {
			pts = append(pts, complex(x, y))
		}
	}
	return pts
}

// Tile returns the samples inside rect in row order: index
// (yi-rect.Min.Y)*rect.Dx() + (xi-rect.Min.X).
func (g Grid) Tile(rect image.Rectangle) []complex128 {
	rect = rect.Intersect(g.Bounds())
	pts := make([]complex128, 0, rect.Dx()*rect.Dy())
	for yi := rect.Min.Y; yi < rect.Max.Y; yi++ {
		for xi := rect.Min.X; xi < rect.Max.X; xi++ {
			pts = append(pts, g.Point(xi, yi))
		}
	}
	return pts
}
