// Package metrics holds the Prometheus metrics of accessor reads and buffer
// loading.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Read kinds.
const (
	KindDense  = "dense"
	KindSparse = "sparse"
	KindZero   = "zero"
)

// Failure reasons.
const (
	ReasonUnavailable = "unavailable"
	ReasonBounds      = "out_of_bounds"
	ReasonSparse      = "malformed_sparse"
	ReasonMismatch    = "type_mismatch"
	ReasonOther       = "other"
)

// Metrics holds all Prometheus metrics for accessor reads. Counters are
// updated when a read is constructed, never while it is iterated.
type Metrics struct {
	Reads           *prometheus.CounterVec
	ReadErrors      *prometheus.CounterVec
	SparseOverrides prometheus.Counter
	CacheHits       prometheus.Counter
	CacheMisses     prometheus.Counter
}

// New creates and registers all metrics with the provided registry.
func New(reg prometheus.Registerer) *Metrics {
	reads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gltf_accessor_reads_total",
		Help: "Accessor reads constructed, by kind",
	}, []string{"kind"})

	readErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gltf_accessor_read_errors_total",
		Help: "Accessor reads that failed to construct, by reason",
	}, []string{"reason"})

	overrides := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gltf_sparse_overrides_total",
		Help: "Elements replaced by sparse overlays",
	})

	hits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gltf_buffer_cache_hits_total",
		Help: "Buffer loads served from the cache",
	})

	misses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gltf_buffer_cache_misses_total",
		Help: "Buffer loads that missed the cache",
	})

	reg.MustRegister(reads, readErrors, overrides, hits, misses)

	return &Metrics{
		Reads:           reads,
		ReadErrors:      readErrors,
		SparseOverrides: overrides,
		CacheHits:       hits,
		CacheMisses:     misses,
	}
}

// Nop returns metrics registered with a private registry, for callers that do
// not export them.
func Nop() *Metrics {
	return New(prometheus.NewRegistry())
}
