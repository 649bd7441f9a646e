package hexelevation

import (
	"math"

	"github.com/pkg/errors"
)

// A lineIndex is a one-dimensional grid along the equator with one cell per
// degree of longitude. Cell c has its centroid at longitude c-181.
type lineIndex struct{}

const lineIndexCells = 361

func (lineIndex) ResolveCenter(latLng LatLng, resolution int) (CellID, error) {
	if !latLng.Valid() {
		return 0, ErrInvalidCoordinate
	}
	if resolution != 0 {
		return 0, ErrUnsupportedResolution
	}
	return CellID(math.Round(latLng.Lng) + 181), nil
}

func (lineIndex) Disk(center CellID, k int) ([]CellID, error) {
	if k < 0 {
		return nil, ErrNegativeDistance
	}
	if center < 1 || lineIndexCells < center {
		return nil, ErrInvalidCellID
	}
	cells := []CellID{center}
	for i := 1; i <= k; i++ {
		if c := int(center) - i; c >= 1 {
			cells = append(cells, CellID(c))
		}
		if c := int(center) + i; c <= lineIndexCells {
			cells = append(cells, CellID(c))
		}
	}
	return cells, nil
}

func (lineIndex) Centroid(cell CellID) (LatLng, error) {
	if cell < 1 || lineIndexCells < cell {
		return LatLng{}, errors.Wrapf(ErrInvalidCellID, "%d", cell)
	}
	return LatLng{Lat: 0, Lng: float64(cell) - 181}, nil
}

func (i lineIndex) Boundary(cell CellID) ([]LatLng, error) {
	c, err := i.Centroid(cell)
	if err != nil {
		return nil, err
	}
	return []LatLng{
		{Lat: c.Lat - 0.5, Lng: c.Lng - 0.5},
		{Lat: c.Lat - 0.5, Lng: c.Lng + 0.5},
		{Lat: c.Lat + 0.5, Lng: c.Lng + 0.5},
		{Lat: c.Lat + 0.5, Lng: c.Lng - 0.5},
	}, nil
}

// newLineRaster returns a raster whose intensity increases by one every
// degree of longitude east of the antimeridian, wrapping at 256.
func newLineRaster() *RasterGrid {
	const width, height = 361, 3
	pix := make([]uint8, width*height)
	for y := range height {
		for x := range width {
			pix[x+y*width] = uint8(x)
		}
	}
	grid, err := NewRasterGrid(width, height, pix)
	if err != nil {
		panic(err)
	}
	return grid
}
