package mandel

import (
	"context"
	"fmt"
	"image"
)

// FetchRaster assembles the raster of cfg from tp, requesting the tiles one
// after another.
func FetchRaster(ctx context.Context, tp TileProvider, cfg Config, tileSize int) (Raster, error) {
	tiles, err := tp.Tiles(cfg, tileSize)
	if err != nil {
		return Raster{}, fmt.Errorf("Tiles: %w", err)
	}
	var bounds image.Rectangle
	for _, tile := range tiles {
		bounds = bounds.Union(tile)
	}
	if bounds.Empty() || bounds.Min != (image.Point{}) {
		return Raster{}, fmt.Errorf("tiles cover %v, not a raster", bounds)
	}

	r := Raster{
		Cols:   bounds.Dx(),
		Rows:   bounds.Dy(),
		Limit:  cfg.EscapeLimit,
		Values: make([]int, bounds.Dx()*bounds.Dy()),
	}
	for _, tile := range tiles {
		vals, err := tp.Tile(ctx, cfg, tile)
		if err != nil {
			return Raster{}, fmt.Errorf("tile %v: %w", tile, err)
		}
		if err := r.SetTile(tile, vals); err != nil {
			return Raster{}, err
		}
	}
	return r, nil
}
