package hexelevation

import "github.com/pkg/errors"

var (
	ErrInvalidCoordinate       = errors.New("invalid coordinate")
	ErrUnsupportedResolution   = errors.New("unsupported resolution")
	ErrNegativeDistance        = errors.New("negative distance")
	ErrInvalidCellID           = errors.New("invalid cell id")
	ErrImageDecodeFailure      = errors.New("image decode failure")
	ErrDimensionTooSmall       = errors.New("dimension too small")
	ErrUnsupportedGeoreference = errors.New("unsupported georeference")
)

// A LatLng is a geographic coordinate in degrees.
type LatLng struct {
	Lat float64
	Lng float64
}

// Valid returns whether l is within [-90, 90] × [-180, 180].
func (l LatLng) Valid() bool {
	return -90 <= l.Lat && l.Lat <= 90 && -180 <= l.Lng && l.Lng <= 180
}

// A CellID identifies a single cell of a hierarchical hexagonal grid.
type CellID uint64

// A Raster is a 2D grid of 8-bit intensity samples covering the globe in an
// equirectangular projection.
type Raster interface {
	At(x, y int) uint8
	Size() (int, int)
}

// A GridIndex resolves coordinates to cells, enumerates disks of cells, and
// resolves cells back to their centroids.
type GridIndex interface {
	ResolveCenter(latLng LatLng, resolution int) (CellID, error)
	Disk(center CellID, k int) ([]CellID, error)
	Centroid(cell CellID) (LatLng, error)
}
