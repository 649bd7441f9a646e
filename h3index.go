package hexelevation

import (
	"github.com/pkg/errors"
	"github.com/uber/h3-go/v4"
)

// H3Index is a GridIndex backed by Uber's H3 hexagonal grid.
type H3Index struct{}

// NewH3Index returns a new H3Index.
func NewH3Index() *H3Index {
	return &H3Index{}
}

// ResolveCenter returns the H3 cell at resolution containing latLng.
func (H3Index) ResolveCenter(latLng LatLng, resolution int) (CellID, error) {
	if !latLng.Valid() {
		return 0, errors.Wrapf(ErrInvalidCoordinate, "%f,%f", latLng.Lat, latLng.Lng)
	}
	if resolution < 0 || h3.MaxResolution < resolution {
		return 0, errors.Wrapf(ErrUnsupportedResolution, "%d", resolution)
	}
	cell, err := h3.LatLngToCell(h3.NewLatLng(latLng.Lat, latLng.Lng), resolution)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidCoordinate, "%f,%f: %v", latLng.Lat, latLng.Lng, err)
	}
	return CellID(cell), nil
}

// Disk returns all cells within k grid steps of center, center first.
func (H3Index) Disk(center CellID, k int) ([]CellID, error) {
	if k < 0 {
		return nil, errors.Wrapf(ErrNegativeDistance, "%d", k)
	}
	cell, err := h3Cell(center)
	if err != nil {
		return nil, err
	}
	h3Cells, err := cell.GridDisk(k)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidCellID, "%x: %v", uint64(center), err)
	}
	cells := make([]CellID, 0, len(h3Cells))
	for _, h3Cell := range h3Cells {
		// Pentagon distortion leaves zero entries in H3's output buffer.
		if h3Cell == 0 {
			continue
		}
		cells = append(cells, CellID(h3Cell))
	}
	return cells, nil
}

// Centroid returns the center of cell.
func (H3Index) Centroid(cell CellID) (LatLng, error) {
	c, err := h3Cell(cell)
	if err != nil {
		return LatLng{}, err
	}
	latLng, err := c.LatLng()
	if err != nil {
		return LatLng{}, errors.Wrapf(ErrInvalidCellID, "%x: %v", uint64(cell), err)
	}
	return LatLng{Lat: latLng.Lat, Lng: latLng.Lng}, nil
}

// Boundary returns the vertices of cell.
func (H3Index) Boundary(cell CellID) ([]LatLng, error) {
	c, err := h3Cell(cell)
	if err != nil {
		return nil, err
	}
	boundary, err := c.Boundary()
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidCellID, "%x: %v", uint64(cell), err)
	}
	latLngs := make([]LatLng, len(boundary))
	for i, vertex := range boundary {
		latLngs[i] = LatLng{Lat: vertex.Lat, Lng: vertex.Lng}
	}
	return latLngs, nil
}

// Resolution returns the resolution of cell.
func (H3Index) Resolution(cell CellID) (int, error) {
	c, err := h3Cell(cell)
	if err != nil {
		return 0, err
	}
	return c.Resolution(), nil
}

func h3Cell(cell CellID) (h3.Cell, error) {
	c := h3.Cell(cell)
	if !c.IsValid() {
		return 0, errors.Wrapf(ErrInvalidCellID, "%x", uint64(cell))
	}
	return c, nil
}
