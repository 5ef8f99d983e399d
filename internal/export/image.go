package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"gridmapper/internal/grid"
)

// Raster palette. Same darkness ordering as the PGM encoding.
var (
	colorOccupied = color.Gray{Y: 0}
	colorFree     = color.Gray{Y: 254}
	colorUnknown  = color.Gray{Y: 205}
	colorStart    = color.RGBA{R: 0, G: 170, B: 0, A: 255}
	colorGoal     = color.RGBA{R: 200, G: 0, B: 0, A: 255}
)

// PNGOptions configures the PNG raster export.
type PNGOptions struct {
	Scale      int  // pixels per cell, minimum 1
	MarkPoints bool // paint start/goal cells in their marker colors
}

// RenderImage rasterizes the state at one pixel per cell, scaled up by
// opt.Scale with nearest-neighbour so cell edges stay crisp.
func RenderImage(s grid.State, opt PNGOptions) image.Image {
	src := image.NewRGBA(image.Rect(0, 0, s.Grid.Width, s.Grid.Height))
	for y := 0; y < s.Grid.Height; y++ {
		for x := 0; x < s.Grid.Width; x++ {
			var c color.Color
			switch s.Grid.At(x, y) {
			case grid.Occupied:
				c = colorOccupied
			case grid.Unknown:
				c = colorUnknown
			default:
				c = colorFree
			}
			src.Set(x, y, c)
		}
	}
	if opt.MarkPoints {
		if p := s.Meta.Start; p != nil {
			src.Set(p.X, p.Y, colorStart)
		}
		if p := s.Meta.Goal; p != nil {
			src.Set(p.X, p.Y, colorGoal)
		}
	}

	scale := opt.Scale
	if scale <= 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, s.Grid.Width*scale, s.Grid.Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// WritePNG encodes the state as a PNG raster.
func WritePNG(w io.Writer, s grid.State, opt PNGOptions) error {
	if err := png.Encode(w, RenderImage(s, opt)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
