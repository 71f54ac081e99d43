package gltf

import (
	"errors"
	"fmt"
	"iter"
	"reflect"

	"go.uber.org/zap"

	"github.com/robert-malhotra/go-gltf/internal/dtype"
	"github.com/robert-malhotra/go-gltf/internal/layout"
	"github.com/robert-malhotra/go-gltf/internal/metrics"
	"github.com/robert-malhotra/go-gltf/internal/sparse"
)

// Iter is a lazy, finite sequence of the decoded elements of an accessor.
// Elements are decoded on demand from the source bytes; nothing is
// materialized up front. An Iter may be traversed any number of times and
// from several goroutines at once.
type Iter[T any] struct {
	seq       sequence[T]
	overrides int
}

type sequence[T any] interface {
	Len() int
	At(i int) (T, error)
	All() iter.Seq2[T, error]
}

// Len returns the number of elements, the accessor's count.
func (it *Iter[T]) Len() int {
	return it.seq.Len()
}

// Overrides returns the number of elements replaced by sparse values.
func (it *Iter[T]) Overrides() int {
	return it.overrides
}

// At decodes element i. A failure affects only that element: other
// elements of a truncated view still decode.
func (it *Iter[T]) At(i int) (T, error) {
	if i < 0 || i >= it.seq.Len() {
		var zero T
		return zero, fmt.Errorf("%w: element %d of %d", ErrOutOfBounds, i, it.seq.Len())
	}
	return it.seq.At(i)
}

// All yields every element in order. Iteration stops after the first
// error, which is yielded with the zero value.
func (it *Iter[T]) All() iter.Seq2[T, error] {
	return it.seq.All()
}

// collectChunk bounds the up-front allocation of Collect. A declared count
// is not trusted until its elements have been read.
const collectChunk = 1 << 12

// Collect decodes every element into a slice.
func (it *Iter[T]) Collect() ([]T, error) {
	out := make([]T, 0, min(it.seq.Len(), collectChunk))
	for v, err := range it.seq.All() {
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// dense decodes the elements of a layout on demand.
type dense[T any] struct {
	layout layout.Layout
	dec    *dtype.Decoder
}

func (d dense[T]) Len() int {
	return d.layout.Len()
}

func (d dense[T]) At(i int) (T, error) {
	elem, err := d.layout.Element(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return dtype.DecodeAs[T](d.dec, elem)
}

func (d dense[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for i := range d.layout.Len() {
			v, err := d.At(i)
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

// Read creates a typed read of accessor a over the bytes supplied by src.
// A nil src uses the document's own source.
//
// T selects the decoded form: a component type C for SCALAR, [N]C for VECN,
// [N][N]C for MATN (outer index is the column), or []float64 for any shape.
// C is float32, float64, uint8, int8, uint16, int16 or uint32. Float
// components read FLOAT or normalized accessors; integer components need
// the matching component type and yield the stored values.
//
// Errors are reported here rather than during iteration whenever the whole
// accessor is affected: ErrTypeMismatch for an unsuitable T, ErrUnavailable
// when src lacks a buffer, ErrMalformedSparse for invalid sparse indices and
// ErrOutOfBounds for truncated sparse data. Dense elements outside the
// supplied bytes fail individually with ErrOutOfBounds.
func Read[T any](a Accessor, src BufferSource) (*Iter[T], error) {
	if a.doc.closed.Load() {
		return nil, ErrClosed
	}
	if src == nil {
		src = a.doc.source
	}

	it, kind, err := newIter[T](a, src)
	a.doc.observe(a, kind, it, err)
	if err != nil {
		return nil, fmt.Errorf("accessor %d: %w", a.index, err)
	}
	return it, nil
}

func newIter[T any](a Accessor, src BufferSource) (*Iter[T], string, error) {
	r := a.rec()
	dec, err := dtype.NewDecoder(r.enc, r.shape, r.normalized, reflect.TypeFor[T]())
	if err != nil {
		return nil, "", err
	}
	size := dec.ElementSize()

	kind := metrics.KindDense
	var base layout.Layout
	if v, ok := a.View(); ok {
		data, err := v.Data(src)
		if err != nil {
			return nil, kind, err
		}
		if base, err = layout.New(v.layout(), data, r.byteOffset, r.count, size); err != nil {
			return nil, kind, err
		}
	} else {
		kind = metrics.KindZero
		base = layout.NewZero(r.count, size)
	}

	seq := dense[T]{layout: base, dec: dec}
	sp, ok := a.Sparse()
	if !ok {
		return &Iter[T]{seq: seq}, kind, nil
	}

	kind = metrics.KindSparse
	indices, err := readIndices(sp, src, r.count)
	if err != nil {
		return nil, kind, err
	}

	values := sp.Values()
	valueData, err := values.View().Data(src)
	if err != nil {
		return nil, kind, fmt.Errorf("sparse values: %w", err)
	}
	valueLayout, err := layout.NewStrided(valueData, values.ByteOffset(), size, size, sp.Count())
	if err != nil {
		return nil, kind, fmt.Errorf("sparse values: %w", err)
	}

	ov, err := sparse.New[T](seq, indices, dense[T]{layout: valueLayout, dec: dec})
	if err != nil {
		return nil, kind, err
	}
	return &Iter[T]{seq: ov, overrides: ov.Count()}, kind, nil
}

func readIndices(sp Sparse, src BufferSource, limit int) ([]uint32, error) {
	idx := sp.Indices()
	data, err := idx.View().Data(src)
	if err != nil {
		return nil, fmt.Errorf("sparse indices: %w", err)
	}
	return sparse.DecodeIndices(idx.IndexType().ComponentType(), data, idx.ByteOffset(), sp.Count(), limit)
}

// observe records the outcome of constructing a read. It runs once per Read,
// never per element.
func (d *Document) observe(a Accessor, kind string, it interface{ Overrides() int }, err error) {
	if err != nil {
		reason := failureReason(err)
		d.logger.Debug("accessor read failed",
			zap.Int("accessor", a.index),
			zap.String("reason", reason),
			zap.Error(err))
		if d.metrics != nil {
			d.metrics.ReadErrors.WithLabelValues(reason).Inc()
		}
		return
	}
	if d.metrics != nil {
		d.metrics.Reads.WithLabelValues(kind).Inc()
		d.metrics.SparseOverrides.Add(float64(it.Overrides()))
	}
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrUnavailable):
		return metrics.ReasonUnavailable
	case errors.Is(err, ErrMalformedSparse):
		return metrics.ReasonSparse
	case errors.Is(err, ErrTypeMismatch):
		return metrics.ReasonMismatch
	case errors.Is(err, ErrOutOfBounds):
		return metrics.ReasonBounds
	default:
		return metrics.ReasonOther
	}
}
