package gltf

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/robert-malhotra/go-gltf/internal/metrics"
)

// DefaultBufferCacheBytes is the default byte budget of the external buffer
// cache used by Open.
const DefaultBufferCacheBytes = 64 << 20

// Option configures how a document is loaded.
type Option func(*options)

type options struct {
	logger     *zap.Logger
	metrics    *metrics.Metrics
	baseDir    string
	cacheBytes int64
	sources    []BufferSource
}

func defaultOptions() *options {
	return &options{
		logger:     zap.NewNop(),
		cacheBytes: DefaultBufferCacheBytes,
	}
}

// WithLogger sets the logger used while loading buffers and constructing
// reads. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics registers read and cache metrics with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) {
		if reg != nil {
			o.metrics = metrics.New(reg)
		}
	}
}

// WithBaseDir sets the directory that relative buffer URIs are resolved
// against. Open defaults to the directory of the opened file; Parse resolves
// no files unless this is set.
func WithBaseDir(dir string) Option {
	return func(o *options) {
		o.baseDir = dir
	}
}

// WithBufferCacheBytes sets the byte budget of the external buffer cache.
// Zero or negative disables caching.
func WithBufferCacheBytes(n int64) Option {
	return func(o *options) {
		o.cacheBytes = n
	}
}

// WithBufferSource adds a source consulted before the built-in ones.
// Multiple WithBufferSource options are tried in order.
func WithBufferSource(src BufferSource) Option {
	return func(o *options) {
		if src != nil {
			o.sources = append(o.sources, src)
		}
	}
}
