package main

import (
	"context"
	"fmt"
	"image"
	"sync"

	mandel "github.com/marben/mandelplot"
)

// tileRenderer assembles the raster of one plot from tiles computed on
// request. Tiles may arrive in any order and concurrently.
type tileRenderer struct {
	cfg  mandel.Config
	grid mandel.Grid

	mu     sync.Mutex
	raster mandel.Raster
	filled []bool

	totalPixels    int
	finishedPixels int
}

func newTileRenderer(cfg mandel.Config) (*tileRenderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := mandel.NewGrid(cfg.Region(), cfg.Resolution, cfg.Resolution)
	if err != nil {
		return nil, fmt.Errorf("mandel.NewGrid: %w", err)
	}
	cols, rows := len(grid.X), len(grid.Y)
	return &tileRenderer{
		cfg:  cfg,
		grid: grid,
		raster: mandel.Raster{
			Cols:   cols,
			Rows:   rows,
			Limit:  cfg.EscapeLimit,
			Values: make([]int, cols*rows),
		},
		filled:      make([]bool, cols*rows),
		totalPixels: cols * rows,
	}, nil
}

func (tr *tileRenderer) finished() float32 {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return float32(tr.finishedPixels) / float32(tr.totalPixels)
}

// render computes tile and stores it in the raster. complete reports whether
// every sample of the raster is now known; the raster is not written to
// afterwards.
func (tr *tileRenderer) render(ctx context.Context, tile image.Rectangle) (vals []int, complete bool, err error) {
	if tile.Empty() || !tile.In(tr.grid.Bounds()) {
		return nil, false, fmt.Errorf("tile %v outside %v", tile, tr.grid.Bounds())
	}
	vals, err = mandel.EscapeTimesContext(ctx, tr.grid.Tile(tile), tr.cfg.EscapeLimit)
	if err != nil {
		return nil, false, err
	}

	tr.mu.Lock()
	defer tr.mu.Unlock()
	var fresh int
	for yi := tile.Min.Y; yi < tile.Max.Y; yi++ {
		for xi := tile.Min.X; xi < tile.Max.X; xi++ {
			if i := yi*tr.raster.Cols + xi; !tr.filled[i] {
				tr.filled[i] = true
				fresh++
			}
		}
	}
	if fresh > 0 {
		if err := tr.raster.SetTile(tile, vals); err != nil {
			return nil, false, err
		}
		tr.finishedPixels += fresh
	}
	return vals, tr.finishedPixels == tr.totalPixels, nil
}

// splitRectNoClip splits r into tiles of size tileW × tileH.
// Tiles at the right and bottom edges are smaller if r is not divisible.
func splitRectNoClip(r image.Rectangle, tileW, tileH int) []image.Rectangle {
	if tileW <= 0 || tileH <= 0 {
		panic("tile dimensions must be positive")
	}

	w := r.Dx()
	h := r.Dy()

	var tiles []image.Rectangle

	for oy := 0; oy < h; oy += tileH {
		th := min(tileH, h-oy)

		for ox := 0; ox < w; ox += tileW {
			tw := min(tileW, w-ox)

			tiles = append(tiles, image.Rect(
				r.Min.X+ox,
				r.Min.Y+oy,
				r.Min.X+ox+tw,
				r.Min.Y+oy+th,
			))
		}
	}

	return tiles
}
