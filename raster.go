package mandel

import (
	"context"
	"fmt"
	"image"
	"log"
)

// Raster holds escape times laid out as an image: column xi follows the real
// axis, row yi the imaginary axis, with row 0 at Ymin.
type Raster struct {
	Cols, Rows int
	Limit      int
	Values     []int // row-major, Values[yi*Cols+xi]
}

// NewRaster reshapes escape times computed over g.Points() into a raster.
func NewRaster(g Grid, limit int, values []int) (Raster, error) {
	if len(values) != g.Len() {
		return Raster{}, fmt.Errorf("raster: %d values for %d samples", len(values), g.Len())
	}
	cols, rows := len(g.X), len(g.Y)
	r := Raster{Cols: cols, Rows: rows, Limit: limit, Values: make([]int, len(values))}
	for xi := 0; xi < cols; xi++ {
		for yi := 0; yi < rows; yi++ {
			r.Values[yi*cols+xi] = values[xi*rows+yi]
		}
	}
	return r, nil
}

func (r Raster) At(xi, yi int) int {
	return r.Values[yi*r.Cols+xi]
}

// Bounds returns the raster in sample coordinates, as Grid.Bounds.
func (r Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.Cols, r.Rows)
}

// Tile returns the values inside rect in the same order as Grid.Tile.
func (r Raster) Tile(rect image.Rectangle) []int {
	rect = rect.Intersect(r.Bounds())
	vals := make([]int, 0, rect.Dx()*rect.Dy())
	for yi := rect.Min.Y; yi < rect.Max.Y; yi++ {
		vals = append(vals, r.Values[yi*r.Cols+rect.Min.X:yi*r.Cols+rect.Max.X]...)
	}
	return vals
}

// SetTile stores values laid out as by Tile.
func (r Raster) SetTile(rect image.Rectangle, vals []int) error {
	if !rect.In(r.Bounds()) || len(vals) != rect.Dx()*rect.Dy() {
		return fmt.Errorf("tile %v with %d values does not fit raster %v", rect, len(vals), r.Bounds())
	}
	for yi := rect.Min.Y; yi < rect.Max.Y; yi++ {
		row := vals[(yi-rect.Min.Y)*rect.Dx():]
		copy(r.Values[yi*r.Cols+rect.Min.X:yi*r.Cols+rect.Max.X], row[:rect.Dx()])
	}
	return nil
}

// MinMax returns the smallest and largest escape time in the raster.
func (r Raster) MinMax() (lo, hi int) {
	if len(r.Values) == 0 {
		return 0, 0
	}
	lo, hi = r.Values[0], r.Values[0]
	for _, v := range r.Values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

// Compute samples the configured region and returns its escape-time raster.
func Compute(cfg Config) (Raster, error) {
	return ComputeContext(context.Background(), cfg)
}

// ComputeContext is Compute that stops early once ctx is done.
func ComputeContext(ctx context.Context, cfg Config) (Raster, error) {
	if err := cfg.Validate(); err != nil {
		return Raster{}, err
	}
	grid, err := NewGrid(cfg.Region(), cfg.Resolution, cfg.Resolution)
	if err != nil {
		return Raster{}, fmt.Errorf("NewGrid: %w", err)
	}
	C := grid.Points()
	log.Printf("C: (%d,)", len(C))

	mset, err := EscapeTimesContext(ctx, C, cfg.EscapeLimit)
	if err != nil {
		return Raster{}, err
	}
	log.Printf("Mset: (%d,)", len(mset))

	raster, err := NewRaster(grid, cfg.EscapeLimit, mset)
	if err != nil {
		return Raster{}, err
	}
	log.Printf("Img: (%d, %d)", raster.Rows, raster.Cols)
	return raster, nil
}
