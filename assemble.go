package hexelevation

import (
	"context"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type assembleOptions struct {
	workers int
}

// An AssembleOption sets an option on Assemble.
type AssembleOption func(*assembleOptions)

// WithWorkers sets the maximum number of goroutines used by Assemble.
func WithWorkers(workers int) AssembleOption {
	return func(o *assembleOptions) {
		o.workers = workers
	}
}

// Assemble returns the elevation of raster at the centroid of each of cells,
// keyed by cell. Either every cell is sampled or an error is returned.
func Assemble(ctx context.Context, raster Raster, index GridIndex, cells []CellID, options ...AssembleOption) (map[CellID]float64, error) {
	o := assembleOptions{
		workers: runtime.GOMAXPROCS(0),
	}
	for _, option := range options {
		option(&o)
	}

	start := time.Now()
	defer func() {
		assembleDuration.Observe(time.Since(start).Seconds())
	}()

	cells = uniqueCells(cells)
	elevations := make([]float64, len(cells))

	// Each worker owns a contiguous shard of elevations.
	workers := max(1, min(o.workers, len(cells)))
	shardSize := (len(cells) + workers - 1) / workers
	g, ctx := errgroup.WithContext(ctx)
	for lo := 0; lo < len(cells); lo += shardSize {
		hi := min(lo+shardSize, len(cells))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				latLng, err := index.Centroid(cells[i])
				if err != nil {
					return err
				}
				if !latLng.Valid() {
					return errors.Wrapf(ErrInvalidCoordinate, "cell %x centroid %f,%f", uint64(cells[i]), latLng.Lat, latLng.Lng)
				}
				elevations[i] = Elevation(raster, latLng.Lat, latLng.Lng)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make(map[CellID]float64, len(cells))
	for i, cell := range cells {
		result[cell] = elevations[i]
	}
	cellsSampled.Add(float64(len(cells)))
	return result, nil
}

// uniqueCells returns cells with duplicates removed, preserving the order of
// first occurrence.
func uniqueCells(cells []CellID) []CellID {
	seen := make(map[CellID]struct{}, len(cells))
	result := make([]CellID, 0, len(cells))
	for _, cell := range cells {
		if _, ok := seen[cell]; ok {
			continue
		}
		seen[cell] = struct{}{}
		result = append(result, cell)
	}
	return result
}
