package hexelevation_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"testing/iotest"

	"github.com/alecthomas/assert/v2"
	"golang.org/x/image/tiff"

	"github.com/twpayne/go-hexelevation"
)

func newTestGrayImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 4, 3))
	for y := range 3 {
		for x := range 4 {
			img.SetGray(x, y, color.Gray{Y: uint8(16*y + x)})
		}
	}
	return img
}

func assertGrayGrid(t *testing.T, grid *hexelevation.RasterGrid) {
	t.Helper()
	width, height := grid.Size()
	assert.Equal(t, 4, width)
	assert.Equal(t, 3, height)
	for y := range 3 {
		for x := range 4 {
			assert.Equal(t, uint8(16*y+x), grid.At(x, y))
		}
	}
}

func TestNewRasterGrid(t *testing.T) {
	for _, tc := range []struct {
		name          string
		width, height int
		pix           []uint8
		expectedErr   error
	}{
		{name: "ok", width: 2, height: 2, pix: []uint8{1, 2, 3, 4}},
		{name: "too_narrow", width: 1, height: 4, pix: []uint8{1, 2, 3, 4}, expectedErr: hexelevation.ErrDimensionTooSmall},
		{name: "too_short", width: 4, height: 1, pix: []uint8{1, 2, 3, 4}, expectedErr: hexelevation.ErrDimensionTooSmall},
	} {
		t.Run(tc.name, func(t *testing.T) {
			grid, err := hexelevation.NewRasterGrid(tc.width, tc.height, tc.pix)
			if tc.expectedErr != nil {
				assert.IsError(t, err, tc.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.width, grid.Width())
			assert.Equal(t, tc.height, grid.Height())
		})
	}

	_, err := hexelevation.NewRasterGrid(2, 2, []uint8{1, 2, 3})
	assert.Error(t, err)

	_, err = hexelevation.NewRasterGridFromRows([][]uint8{{1, 2}, {3}})
	assert.Error(t, err)
}

func TestNewRasterGridCopies(t *testing.T) {
	pix := []uint8{1, 2, 3, 4}
	grid, err := hexelevation.NewRasterGrid(2, 2, pix)
	assert.NoError(t, err)
	pix[0] = 99
	assert.Equal(t, uint8(1), grid.At(0, 0))
}

func TestNewRasterGridFromImage(t *testing.T) {
	grid, err := hexelevation.NewRasterGridFromImage(newTestGrayImage())
	assert.NoError(t, err)
	assertGrayGrid(t, grid)

	sub := newTestGrayImage().SubImage(image.Rect(1, 1, 3, 3)).(*image.Gray)
	grid, err = hexelevation.NewRasterGridFromImage(sub)
	assert.NoError(t, err)
	assert.Equal(t, uint8(17), grid.At(0, 0))
	assert.Equal(t, uint8(34), grid.At(1, 1))

	rgba := image.NewRGBA(image.Rect(0, 0, 2, 2))
	rgba.Set(0, 0, color.White)
	rgba.Set(1, 1, color.RGBA{R: 255, A: 255})
	grid, err = hexelevation.NewRasterGridFromImage(rgba)
	assert.NoError(t, err)
	assert.Equal(t, uint8(255), grid.At(0, 0))
	assert.Equal(t, color.GrayModel.Convert(color.RGBA{R: 255, A: 255}).(color.Gray).Y, grid.At(1, 1))

	_, err = hexelevation.NewRasterGridFromImage(image.NewGray(image.Rect(0, 0, 1, 8)))
	assert.IsError(t, err, hexelevation.ErrDimensionTooSmall)
}

func TestDecodeRasterGrid(t *testing.T) {
	t.Run("png", func(t *testing.T) {
		var buf bytes.Buffer
		assert.NoError(t, png.Encode(&buf, newTestGrayImage()))
		grid, err := hexelevation.DecodeRasterGrid(&buf)
		assert.NoError(t, err)
		assertGrayGrid(t, grid)
	})

	t.Run("tiff", func(t *testing.T) {
		var buf bytes.Buffer
		assert.NoError(t, tiff.Encode(&buf, newTestGrayImage(), nil))
		grid, err := hexelevation.DecodeRasterGrid(&buf)
		assert.NoError(t, err)
		assertGrayGrid(t, grid)
	})

	t.Run("read_error", func(t *testing.T) {
		errRead := errors.New("read error")
		_, err := hexelevation.DecodeRasterGrid(iotest.ErrReader(errRead))
		assert.IsError(t, err, hexelevation.ErrImageDecodeFailure)
		assert.IsError(t, err, errRead)
	})

	t.Run("truncated", func(t *testing.T) {
		var buf bytes.Buffer
		assert.NoError(t, png.Encode(&buf, newTestGrayImage()))
		_, err := hexelevation.DecodeRasterGrid(bytes.NewReader(buf.Bytes()[:buf.Len()-20]))
		assert.IsError(t, err, hexelevation.ErrImageDecodeFailure)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := hexelevation.DecodeRasterGrid(bytes.NewReader([]byte("not an image")))
		assert.IsError(t, err, hexelevation.ErrImageDecodeFailure)
	})
}

func TestLoadRasterGrid(t *testing.T) {
	dir := t.TempDir()
	file, err := os.Create(filepath.Join(dir, "elevation.png"))
	assert.NoError(t, err)
	assert.NoError(t, png.Encode(file, newTestGrayImage()))
	assert.NoError(t, file.Close())

	grid, err := hexelevation.LoadRasterGrid(os.DirFS(dir), "elevation.png")
	assert.NoError(t, err)
	assertGrayGrid(t, grid)

	_, err = hexelevation.LoadRasterGrid(os.DirFS(dir), "missing.png")
	assert.Error(t, err)
}
