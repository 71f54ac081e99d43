package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Reads(t *testing.T) {
	m := New(prometheus.NewRegistry())
	require.NotNil(t, m)

	m.Reads.WithLabelValues(KindDense).Inc()
	m.Reads.WithLabelValues(KindDense).Inc()
	m.Reads.WithLabelValues(KindSparse).Inc()

	require.Equal(t, float64(2), testutil.ToFloat64(m.Reads.WithLabelValues(KindDense)))
	require.Equal(t, float64(1), testutil.ToFloat64(m.Reads.WithLabelValues(KindSparse)))
}

func TestMetrics_ReadErrors(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ReadErrors.WithLabelValues(ReasonBounds).Add(3)
	require.Equal(t, float64(3), testutil.ToFloat64(m.ReadErrors.WithLabelValues(ReasonBounds)))
	require.Equal(t, float64(0), testutil.ToFloat64(m.ReadErrors.WithLabelValues(ReasonSparse)))
}

func TestMetrics_Cache(t *testing.T) {
	m := Nop()

	m.CacheHits.Inc()
	m.CacheMisses.Add(2)
	m.SparseOverrides.Add(7)

	require.Equal(t, float64(1), testutil.ToFloat64(m.CacheHits))
	require.Equal(t, float64(2), testutil.ToFloat64(m.CacheMisses))
	require.Equal(t, float64(7), testutil.ToFloat64(m.SparseOverrides))
}

func TestMetrics_DoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	require.Panics(t, func() { New(reg) })
}
