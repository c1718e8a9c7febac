package mandel

import (
	"context"
	"image"
)

//go:generate go run github.com/marben/irpc/cmd/irpc

// TileProvider computes plots tile by tile for remote clients.
type TileProvider interface {
	// Tiles splits the raster of cfg into tiles of at most tileSize samples
	// per side, in row order.
	Tiles(cfg Config, tileSize int) ([]image.Rectangle, error)
	// Tile returns the escape times inside tile, laid out as Raster.Tile.
	Tile(ctx context.Context, cfg Config, tile image.Rectangle) ([]int, error)
}
