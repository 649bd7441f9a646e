package hexelevation

import (
	"github.com/twpayne/go-proj/v10"
)

// A Layout maps geographic coordinates to positions in a plane.
type Layout interface {
	Positions(latLngs []LatLng) ([]Position, error)
}

// A ScaledLayout places a coordinate at (lng*Scale, lat*Scale).
type ScaledLayout struct {
	Scale float64
}

func (l ScaledLayout) Positions(latLngs []LatLng) ([]Position, error) {
	positions := make([]Position, len(latLngs))
	for i, latLng := range latLngs {
		positions[i] = Position{
			X: latLng.Lng * l.Scale,
			Y: latLng.Lat * l.Scale,
		}
	}
	return positions, nil
}

// A ProjectedLayout projects coordinates from EPSG:4326 into another CRS and
// scales the result.
type ProjectedLayout struct {
	pj    *proj.PJ
	scale float64
}

// NewProjectedLayout returns a new ProjectedLayout that projects into
// targetCRS, e.g. "epsg:3857".
func NewProjectedLayout(targetCRS string, scale float64) (*ProjectedLayout, error) {
	pj, err := proj.NewCRSToCRS("epsg:4326", targetCRS, nil)
	if err != nil {
		return nil, err
	}
	return &ProjectedLayout{
		pj:    pj,
		scale: scale,
	}, nil
}

// Positions returns the projected positions of latLngs.
func (l *ProjectedLayout) Positions(latLngs []LatLng) ([]Position, error) {
	// EPSG:4326 has latitude first.
	coords := make([][]float64, len(latLngs))
	for i, latLng := range latLngs {
		coords[i] = []float64{latLng.Lat, latLng.Lng}
	}
	if err := l.pj.ForwardFloat64Slices(coords); err != nil {
		return nil, err
	}
	positions := make([]Position, len(coords))
	for i, coord := range coords {
		positions[i] = Position{
			X: coord[0] * l.scale,
			Y: coord[1] * l.scale,
		}
	}
	return positions, nil
}
