package hexelevation

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeRasterGrid decodes an image from r and returns its luma as a
// RasterGrid. GeoTIFFs must be in geographic coordinates and cover the globe
// from (-180, 90).
func DecodeRasterGrid(r io.Reader) (*RasterGrid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageDecodeFailure, err)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageDecodeFailure, err)
	}
	if format == "tiff" {
		bounds := img.Bounds()
		if err := checkGeoTIFFGeoreference(bytes.NewReader(data), bounds.Dx(), bounds.Dy()); err != nil {
			return nil, err
		}
	}
	return NewRasterGridFromImage(img)
}

// LoadRasterGrid loads the image filename from fsys.
func LoadRasterGrid(fsys fs.FS, filename string) (*RasterGrid, error) {
	file, err := fsys.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	grid, err := DecodeRasterGrid(file)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", filename)
	}
	return grid, nil
}
