package hexelevation_test

import (
	"math"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/twpayne/go-hexelevation"
)

func TestScaledLayout(t *testing.T) {
	positions, err := hexelevation.ScaledLayout{Scale: 400}.Positions([]hexelevation.LatLng{
		{Lat: 1, Lng: 2},
		{Lat: -0.5, Lng: 0.25},
	})
	assert.NoError(t, err)
	assert.Equal(t, []hexelevation.Position{
		{X: 800, Y: 400},
		{X: 100, Y: -200},
	}, positions)
}

func TestProjectedLayout(t *testing.T) {
	layout, err := hexelevation.NewProjectedLayout("epsg:3857", 1)
	assert.NoError(t, err)

	positions, err := layout.Positions([]hexelevation.LatLng{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 180},
		{Lat: 0, Lng: -90},
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, len(positions))
	for i, expected := range []hexelevation.Position{
		{X: 0, Y: 0},
		{X: 20037508.342789244, Y: 0},
		{X: -10018754.171394622, Y: 0},
	} {
		assert.True(t, math.Abs(expected.X-positions[i].X) < 1e-3, "%d: expected %v, got %v", i, expected, positions[i])
		assert.True(t, math.Abs(expected.Y-positions[i].Y) < 1e-3, "%d: expected %v, got %v", i, expected, positions[i])
	}
}

func TestProjectedLayoutInvalidCRS(t *testing.T) {
	_, err := hexelevation.NewProjectedLayout("epsg:not-a-crs", 1)
	assert.Error(t, err)
}
