package hexelevation

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

// A RasterGrid is an immutable grid of 8-bit intensity samples. Column 0 is
// longitude -180, column width-1 is longitude +180, row 0 is latitude +90 and
// row height-1 is latitude -90.
type RasterGrid struct {
	width  int
	height int
	pix    []uint8
}

// NewRasterGrid returns a new RasterGrid of the given size backed by a copy of
// pix, which is in row-major order.
func NewRasterGrid(width, height int, pix []uint8) (*RasterGrid, error) {
	if width < 2 || height < 2 {
		return nil, errors.Wrapf(ErrDimensionTooSmall, "%dx%d", width, height)
	}
	if len(pix) != width*height {
		return nil, errors.Errorf("got %d samples, expected %d", len(pix), width*height)
	}
	return &RasterGrid{
		width:  width,
		height: height,
		pix:    append([]uint8(nil), pix...),
	}, nil
}

// NewRasterGridFromRows returns a new RasterGrid from rows of samples, row 0
// first.
func NewRasterGridFromRows(rows [][]uint8) (*RasterGrid, error) {
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrDimensionTooSmall, "no rows")
	}
	width := len(rows[0])
	pix := make([]uint8, 0, width*len(rows))
	for i, row := range rows {
		if len(row) != width {
			return nil, errors.Errorf("row %d: got %d samples, expected %d", i, len(row), width)
		}
		pix = append(pix, row...)
	}
	return NewRasterGrid(width, len(rows), pix)
}

// NewRasterGridFromImage returns a new RasterGrid containing the luma of img.
func NewRasterGridFromImage(img image.Image) (*RasterGrid, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width < 2 || height < 2 {
		return nil, errors.Wrapf(ErrDimensionTooSmall, "%dx%d", width, height)
	}

	if gray, ok := img.(*image.Gray); ok && gray.Stride == width {
		start := gray.PixOffset(bounds.Min.X, bounds.Min.Y)
		return NewRasterGrid(width, height, gray.Pix[start:start+width*height])
	}

	g := &RasterGrid{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height),
	}
	for y := range height {
		for x := range width {
			c := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
			g.pix[x+y*width] = c.Y
		}
	}
	return g, nil
}

// At returns the sample at column x and row y.
func (g *RasterGrid) At(x, y int) uint8 {
	return g.pix[x+y*g.width]
}

// Size returns g's width and height.
func (g *RasterGrid) Size() (int, int) {
	return g.width, g.height
}

// Width returns the number of columns in g.
func (g *RasterGrid) Width() int { return g.width }

// Height returns the number of rows in g.
func (g *RasterGrid) Height() int { return g.height }

// Sample returns the bilinearly interpolated intensity at lat, lng.
func (g *RasterGrid) Sample(lat, lng float64) float64 {
	return Sample(g, lat, lng)
}

// Elevation returns the elevation in meters at lat, lng.
func (g *RasterGrid) Elevation(lat, lng float64) float64 {
	return Elevation(g, lat, lng)
}
