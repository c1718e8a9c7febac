package mandel

import (
	"io"
)

// Renderer draws an escape-time raster covering region r and writes the
// encoded image to w.
type Renderer interface {
	Render(w io.Writer, raster Raster, r Region) error
}
