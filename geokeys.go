package hexelevation

import (
	"bytes"
	"fmt"
	"math"

	"github.com/google/tiff"
	_ "github.com/google/tiff/geotiff"
	"github.com/pkg/errors"
)

var errParse = errors.New("parse error")

type GeoKey uint16

const (
	GeoKeyGTModelType  GeoKey = 1024
	GeoKeyGTRasterType GeoKey = 1025
	GeoKeyGTCitation   GeoKey = 1026

	GeoKeyGeodeticCRS  GeoKey = 2048
	GeoKeyAngularUnits GeoKey = 2054
)

const (
	modelTypeGeographic    = 2
	rasterTypePixelIsArea  = 1
	rasterTypePixelIsPoint = 2
	angularUnitsDegree     = 9102
	geodeticCRSWGS84       = 4326
	geodeticCRSUserDefined = 32767

	geoKeyDirectoryTag = 34735
	geoDoubleParamsTag = 34736
	geoASCIIParamsTag  = 34737

	tiepointTolerance = 1e-6
	scaleTolerance    = 1e-6
)

type ParsedGeoKeys struct {
	Params       map[GeoKey]int
	DoubleParams map[GeoKey]float64
	ASCIIParams  map[GeoKey]string
}

// ParseGeoKeys parses a GeoKey directory and its parameters.
func ParseGeoKeys(directory []uint16, doubleParams []float64, asciiParams []byte) (*ParsedGeoKeys, error) {
	if len(directory) < 4 {
		return nil, errParse
	}

	if keyDirectoryVersion := int(directory[0]); keyDirectoryVersion != 1 {
		return nil, errParse
	}
	if keyRevision := int(directory[1]); keyRevision != 1 {
		return nil, errParse
	}
	if minorRevision := int(directory[2]); minorRevision != 0 && minorRevision != 1 {
		return nil, errParse
	}
	numberOfKeys := int(directory[3])
	if len(directory) != 4+4*numberOfKeys {
		return nil, errParse
	}

	parsedGeoKeys := &ParsedGeoKeys{
		Params:       make(map[GeoKey]int),
		DoubleParams: make(map[GeoKey]float64),
		ASCIIParams:  make(map[GeoKey]string),
	}
	for i := range numberOfKeys {
		keyValues := directory[4+4*i : 4+4*(i+1)]
		key := GeoKey(keyValues[0])
		tiffTagLocation := int(keyValues[1])
		numberOfValues := int(keyValues[2])
		index := int(keyValues[3])
		switch tiffTagLocation {
		case 0:
			if numberOfValues != 1 {
				return nil, errParse
			}
			parsedGeoKeys.Params[key] = index
		case geoDoubleParamsTag:
			if numberOfValues != 1 || index >= len(doubleParams) {
				return nil, errParse
			}
			parsedGeoKeys.DoubleParams[key] = doubleParams[index]
		case geoASCIIParamsTag:
			if index+numberOfValues > len(asciiParams) {
				return nil, errParse
			}
			parsedGeoKeys.ASCIIParams[key] = string(asciiParams[index : index+numberOfValues])
		default:
			return nil, errors.Wrapf(errParse, "unsupported tag location %d", tiffTagLocation)
		}
	}
	return parsedGeoKeys, nil
}

// A geoTIFFIFD is a struct into which github.com/google/tiff can unmarshal the
// georeferencing tags of an IFD.
type geoTIFFIFD struct {
	ModelPixelScaleTag []float64 `tiff:"field,tag=33550"`
	ModelTiepointTag   []float64 `tiff:"field,tag=33922"`
	GeoKeyDirectoryTag []uint16  `tiff:"field,tag=34735"`
	GeoDoubleParamsTag []float64 `tiff:"field,tag=34736"`
	GeoASCIIParamsTag  string    `tiff:"field,tag=34737"`
}

// checkGeoTIFFGeoreference returns an error if the TIFF in r carries GeoTIFF
// tags that do not describe a width by height raster in degrees covering the
// globe from (-180, 90). Plain TIFFs are accepted.
func checkGeoTIFFGeoreference(r *bytes.Reader, width, height int) error {
	t, err := tiff.Parse(r, tiff.GetTagSpace("GeoTIFF"), nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrImageDecodeFailure, err)
	}
	ifds := t.IFDs()
	if len(ifds) == 0 || !ifds[0].HasField(geoKeyDirectoryTag) {
		return nil
	}

	var ifd geoTIFFIFD
	if err := tiff.UnmarshalIFD(ifds[0], &ifd); err != nil {
		return fmt.Errorf("%w: %w", ErrImageDecodeFailure, err)
	}

	geoKeys, err := ParseGeoKeys(ifd.GeoKeyDirectoryTag, ifd.GeoDoubleParamsTag, []byte(ifd.GeoASCIIParamsTag))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupportedGeoreference, err)
	}
	if modelType, ok := geoKeys.Params[GeoKeyGTModelType]; ok && modelType != modelTypeGeographic {
		return errors.Wrapf(ErrUnsupportedGeoreference, "model type %d", modelType)
	}
	if crs, ok := geoKeys.Params[GeoKeyGeodeticCRS]; ok && crs != geodeticCRSWGS84 && crs != geodeticCRSUserDefined {
		return errors.Wrapf(ErrUnsupportedGeoreference, "geodetic CRS %d", crs)
	}
	if units, ok := geoKeys.Params[GeoKeyAngularUnits]; ok && units != angularUnitsDegree {
		return errors.Wrapf(ErrUnsupportedGeoreference, "angular units %d", units)
	}

	if len(ifd.ModelTiepointTag) != 6 {
		return errors.Wrapf(ErrUnsupportedGeoreference, "%d tiepoint values", len(ifd.ModelTiepointTag))
	}
	i, j := ifd.ModelTiepointTag[0], ifd.ModelTiepointTag[1]
	x, y := ifd.ModelTiepointTag[3], ifd.ModelTiepointTag[4]
	if i != 0 || j != 0 || math.Abs(x+180) > tiepointTolerance || math.Abs(y-90) > tiepointTolerance {
		return errors.Wrapf(ErrUnsupportedGeoreference, "tiepoint (%g, %g) -> (%g, %g)", i, j, x, y)
	}

	if len(ifd.ModelPixelScaleTag) < 2 {
		return errors.Wrapf(ErrUnsupportedGeoreference, "%d pixel scale values", len(ifd.ModelPixelScaleTag))
	}
	scaleX, scaleY := ifd.ModelPixelScaleTag[0], ifd.ModelPixelScaleTag[1]
	pointExtent := spansGlobe(scaleX*float64(width-1), scaleY*float64(height-1))
	areaExtent := spansGlobe(scaleX*float64(width), scaleY*float64(height))
	switch rasterType, ok := geoKeys.Params[GeoKeyGTRasterType]; {
	case !ok && (pointExtent || areaExtent):
	case ok && rasterType == rasterTypePixelIsPoint && pointExtent:
	case ok && rasterType == rasterTypePixelIsArea && areaExtent:
	default:
		return errors.Wrapf(ErrUnsupportedGeoreference, "pixel scale %g x %g for %dx%d pixels", scaleX, scaleY, width, height)
	}
	return nil
}

// spansGlobe returns whether extentX by extentY degrees covers the globe.
func spansGlobe(extentX, extentY float64) bool {
	return math.Abs(extentX-360) <= scaleTolerance*360 && math.Abs(extentY-180) <= scaleTolerance*180
}
