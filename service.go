package hexelevation

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/hauke96/sigolo/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

// A resultKey identifies a disk of cells.
type resultKey struct {
	center     CellID
	resolution int
	k          int
}

func (k resultKey) String() string {
	return fmt.Sprintf("%x/%d/%d", uint64(k.center), k.resolution, k.k)
}

// A Service samples elevations and colors for disks of cells around a center
// coordinate.
type Service struct {
	inflight    singleflight.Group
	raster      Raster
	index       GridIndex
	resolution  int
	workers     int
	cacheSize   int
	resultCache *lru.Cache[resultKey, *Result]
}

// A ServiceOption sets an option on a Service.
type ServiceOption func(*Service)

// NewService returns a new Service that samples raster.
func NewService(raster Raster, options ...ServiceOption) (*Service, error) {
	s := &Service{
		raster:     raster,
		index:      NewH3Index(),
		resolution: 5,
		cacheSize:  16,
	}
	for _, option := range options {
		option(s)
	}

	var err error
	s.resultCache, err = lru.New[resultKey, *Result](s.cacheSize)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func WithCacheSize(cacheSize int) ServiceOption {
	return func(s *Service) {
		s.cacheSize = cacheSize
	}
}

func WithGridIndex(index GridIndex) ServiceOption {
	return func(s *Service) {
		s.index = index
	}
}

func WithResolution(resolution int) ServiceOption {
	return func(s *Service) {
		s.resolution = resolution
	}
}

func WithServiceWorkers(workers int) ServiceOption {
	return func(s *Service) {
		s.workers = workers
	}
}

// Resolution returns s's grid resolution.
func (s *Service) Resolution() int {
	return s.resolution
}

// Disk returns the elevation and color of every cell within k rings of the
// cell containing center. Results are cached and must not be modified.
func (s *Service) Disk(ctx context.Context, center LatLng, k int) (*Result, error) {
	if k < 0 {
		return nil, errors.Wrapf(ErrNegativeDistance, "%d", k)
	}
	centerCell, err := s.index.ResolveCenter(center, s.resolution)
	if err != nil {
		return nil, err
	}
	key := resultKey{
		center:     centerCell,
		resolution: s.resolution,
		k:          k,
	}

	if result, ok := s.resultCache.Get(key); ok {
		resultCacheHits.Inc()
		sigolo.Tracef("Result cache hit for cell %x k=%d", uint64(centerCell), k)
		return result, nil
	}

	// Concurrent misses on the same key share a single computation.
	value, err, _ := s.inflight.Do(key.String(), func() (any, error) {
		if result, ok := s.resultCache.Get(key); ok {
			resultCacheHits.Inc()
			return result, nil
		}

		resultCacheMisses.Inc()

		result, err := s.newResult(ctx, key)
		if err != nil {
			return nil, err
		}

		if eviction := s.resultCache.Add(key, result); eviction {
			resultCacheEvictions.Inc()
		}

		return result, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(*Result), nil
}

// newResult computes the result for key.
func (s *Service) newResult(ctx context.Context, key resultKey) (*Result, error) {
	cells, err := s.index.Disk(key.center, key.k)
	if err != nil {
		return nil, err
	}
	centerLatLng, err := s.index.Centroid(key.center)
	if err != nil {
		return nil, err
	}

	var assembleOptions []AssembleOption
	if s.workers > 0 {
		assembleOptions = append(assembleOptions, WithWorkers(s.workers))
	}
	elevations, err := Assemble(ctx, s.raster, s.index, cells, assembleOptions...)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Center:       key.center,
		CenterLatLng: centerLatLng,
		Resolution:   key.resolution,
		K:            key.k,
		Cells:        make([]CellSample, 0, len(elevations)),
	}
	for _, cell := range uniqueCells(cells) {
		latLng, err := s.index.Centroid(cell)
		if err != nil {
			return nil, err
		}
		elevation := elevations[cell]
		result.Cells = append(result.Cells, CellSample{
			Cell:      cell,
			LatLng:    latLng,
			Elevation: elevation,
			Color:     Encode(elevation),
		})
	}
	sigolo.Debugf("Assembled %d cells around cell %x at resolution %d", len(result.Cells), uint64(key.center), key.resolution)
	return result, nil
}
