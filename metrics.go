package hexelevation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	resultCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hexelevation_result_cache_hits_total",
		Help: "The total number of hits on the result cache",
	})
	resultCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hexelevation_result_cache_misses_total",
		Help: "The total number of misses on the result cache",
	})
	resultCacheEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hexelevation_result_cache_evictions_total",
		Help: "The total number of evictions from the result cache",
	})
	cellsSampled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hexelevation_cells_sampled_total",
		Help: "The total number of cells whose elevation was sampled",
	})
	assembleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hexelevation_assemble_duration_seconds",
		Help:    "The time taken to assemble the elevations of a set of cells",
		Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
	})
)
