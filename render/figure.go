package render

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	mandel "github.com/marben/mandelplot"
)

// Figure renders a raster as a PNG plot with axes spanning the plot extent.
type Figure struct {
	Width, Height vg.Length
	DPI           int
}

// DefaultFigure is a 16x12 inch figure at 200 DPI, 3200x2400 pixels.
var DefaultFigure = Figure{
	Width:  16 * vg.Inch,
	Height: 12 * vg.Inch,
	DPI:    200,
}

var _ mandel.Renderer = Figure{}

// Pixels returns the size of the encoded image.
func (f Figure) Pixels() (w, h int) {
	return int(f.Width.Dots(float64(f.DPI)) + 0.5), int(f.Height.Dots(float64(f.DPI)) + 0.5)
}

// Plot builds the plot without drawing it.
func (f Figure) Plot(raster mandel.Raster, r mandel.Region) *plot.Plot {
	p := plot.New()
	p.X.Label.Text = "Re"
	p.Y.Label.Text = "Im"
	p.Add(plotter.NewImage(Grayscale(raster), r.Xmin, r.Ymin, r.Xmax, r.Ymax))
	p.X.Min, p.X.Max = r.Xmin, r.Xmax
	p.Y.Min, p.Y.Max = r.Ymin, r.Ymax
	return p
}

// Render implements mandel.Renderer.
func (f Figure) Render(w io.Writer, raster mandel.Raster, r mandel.Region) error {
	if f.Width <= 0 || f.Height <= 0 || f.DPI <= 0 {
		return fmt.Errorf("figure %vx%v at %d dpi: invalid size", f.Width, f.Height, f.DPI)
	}
	if raster.Cols == 0 || raster.Rows == 0 {
		return fmt.Errorf("figure: empty raster")
	}

	c := vgimg.NewWith(vgimg.UseWH(f.Width, f.Height), vgimg.UseDPI(f.DPI))
	f.Plot(raster, r).Draw(draw.New(c))

	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
		return fmt.Errorf("png encode: %w", err)
	}
	return nil
}
