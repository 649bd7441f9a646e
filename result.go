package hexelevation

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// A CellSample is the sampled elevation and color of a single cell.
type CellSample struct {
	Cell      CellID
	LatLng    LatLng
	Elevation float64
	Color     DisplayColor
}

// Label returns a human readable description of s.
func (s CellSample) Label() string {
	return fmt.Sprintf("lat: %.3f\nlng:%.3f\nelev: %.1f", s.LatLng.Lat, s.LatLng.Lng, s.Elevation)
}

// A Result is the sampled disk of cells around a center cell.
type Result struct {
	Center       CellID
	CenterLatLng LatLng
	Resolution   int
	K            int
	Cells        []CellSample
}

// Elevations returns r's elevations keyed by cell.
func (r *Result) Elevations() map[CellID]float64 {
	elevations := make(map[CellID]float64, len(r.Cells))
	for _, cell := range r.Cells {
		elevations[cell.Cell] = cell.Elevation
	}
	return elevations
}

// A Position is a position in a planar layout.
type Position struct {
	X float64
	Y float64
}

// Positions returns the position of each of r's cells relative to r's center
// in layout, in the same order as r.Cells.
func (r *Result) Positions(layout Layout) ([]Position, error) {
	latLngs := make([]LatLng, 0, len(r.Cells)+1)
	latLngs = append(latLngs, r.CenterLatLng)
	for _, cell := range r.Cells {
		latLngs = append(latLngs, cell.LatLng)
	}
	positions, err := layout.Positions(latLngs)
	if err != nil {
		return nil, err
	}
	origin := positions[0]
	result := make([]Position, len(r.Cells))
	for i, position := range positions[1:] {
		result[i] = Position{
			X: position.X - origin.X,
			Y: position.Y - origin.Y,
		}
	}
	return result, nil
}

// A BoundaryIndex returns the vertices of a cell.
type BoundaryIndex interface {
	Boundary(cell CellID) ([]LatLng, error)
}

// FeatureCollection returns r as a GeoJSON FeatureCollection with one polygon
// per cell.
func (r *Result) FeatureCollection(index BoundaryIndex) (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()
	for _, cell := range r.Cells {
		boundary, err := index.Boundary(cell.Cell)
		if err != nil {
			return nil, err
		}
		if len(boundary) < 3 {
			return nil, errors.Wrapf(ErrInvalidCellID, "%x: %d vertices", uint64(cell.Cell), len(boundary))
		}
		ring := make(orb.Ring, 0, len(boundary)+1)
		for _, vertex := range boundary {
			ring = append(ring, orb.Point{vertex.Lng, vertex.Lat})
		}
		ring = append(ring, ring[0])

		feature := geojson.NewFeature(orb.Polygon{ring})
		feature.ID = fmt.Sprintf("%x", uint64(cell.Cell))
		feature.Properties["cell"] = fmt.Sprintf("%x", uint64(cell.Cell))
		feature.Properties["elevation"] = cell.Elevation
		feature.Properties["color"] = cell.Color.Hex()
		feature.Properties["hue"] = cell.Color.Hue
		feature.Properties["saturation"] = cell.Color.Saturation
		feature.Properties["lightness"] = cell.Color.Lightness
		fc.Append(feature)
	}
	return fc, nil
}
