package hexelevation

import "math"

const (
	minElevation   = -1000
	elevationRange = 9000
)

// Sample returns the intensity of raster at lat, lng, interpolated bilinearly
// between the four surrounding samples. Coordinates outside [-90, 90] ×
// [-180, 180] are clamped to the edge of raster. It returns NaN if lat or lng
// is NaN.
func Sample(raster Raster, lat, lng float64) float64 {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return math.NaN()
	}
	width, height := raster.Size()
	fx := clamp(((lng+180)/360)*float64(width-1), 0, float64(width-1))
	fy := clamp(((90-lat)/180)*float64(height-1), 0, float64(height-1))

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	x1 := min(x0+1, width-1)
	y1 := min(y0+1, height-1)
	dx := fx - float64(x0)
	dy := fy - float64(y0)

	top := float64(raster.At(x0, y0))*(1-dx) + float64(raster.At(x1, y0))*dx
	bottom := float64(raster.At(x0, y1))*(1-dx) + float64(raster.At(x1, y1))*dx
	return top*(1-dy) + bottom*dy
}

// IntensityToElevation maps an intensity in [0, 255] to an elevation in
// meters in [-1000, 8000].
func IntensityToElevation(intensity float64) float64 {
	return minElevation + (intensity/255)*elevationRange
}

// Elevation returns the elevation in meters of raster at lat, lng.
func Elevation(raster Raster, lat, lng float64) float64 {
	return IntensityToElevation(Sample(raster, lat, lng))
}

// InterpolateBilinear returns the elevations of raster at latLngs.
func InterpolateBilinear(raster Raster, latLngs []LatLng) []float64 {
	result := make([]float64, len(latLngs))
	for i, latLng := range latLngs {
		result[i] = Elevation(raster, latLng.Lat, latLng.Lng)
	}
	return result
}
