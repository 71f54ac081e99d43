// Package sparse overlays explicit index/value corrections on a base
// sequence of accessor elements.
//
// A sparse accessor stores count strictly increasing indices and count
// replacement values. The resulting sequence equals the base sequence (view
// backed, or all zero when the accessor has no view) except at the listed
// indices. Index data is fully validated when the overlay is built, so a
// malformed accessor fails before any element is produced.
package sparse

import (
	"errors"
	"fmt"
	"iter"
	"sort"

	"github.com/robert-malhotra/go-gltf/internal/binary"
	"github.com/robert-malhotra/go-gltf/internal/dtype"
)

// ErrMalformed is returned for sparse data that violates the index rules.
var ErrMalformed = errors.New("malformed sparse accessor")

// Sequence is a finite, random-access sequence of elements.
type Sequence[T any] interface {
	Len() int
	At(i int) (T, error)
}

// DecodeIndices reads count indices of the given encoding, tightly packed
// from offset in data. Indices must be strictly increasing and below limit,
// the element count of the accessor being patched.
func DecodeIndices(enc dtype.Encoding, data []byte, offset, count, limit int) ([]uint32, error) {
	if !enc.IsIndex() {
		return nil, fmt.Errorf("%w: index component type %s", ErrMalformed, enc)
	}
	if count < 0 || count > limit {
		return nil, fmt.Errorf("%w: %d overrides for %d elements", ErrMalformed, count, limit)
	}

	size := enc.Size()
	r := binary.NewReader(data).At(offset)
	if _, err := r.Peek(count * size); err != nil {
		return nil, fmt.Errorf("sparse indices: %w", err)
	}

	indices := make([]uint32, count)
	for j := range indices {
		v, err := r.ReadUintN(size)
		if err != nil {
			return nil, fmt.Errorf("sparse index %d: %w", j, err)
		}
		idx := uint32(v)
		if int64(idx) >= int64(limit) {
			return nil, fmt.Errorf("%w: index %d at position %d is not below count %d", ErrMalformed, idx, j, limit)
		}
		if j > 0 && idx <= indices[j-1] {
			return nil, fmt.Errorf("%w: index %d at position %d does not increase (previous %d)", ErrMalformed, idx, j, indices[j-1])
		}
		indices[j] = idx
	}
	return indices, nil
}

// Overlay is a base sequence with some elements replaced.
type Overlay[T any] struct {
	base    Sequence[T]
	indices []uint32
	values  Sequence[T]
}

// New creates an overlay replacing base element indices[j] with values[j].
// indices must come from DecodeIndices for base.Len(). The last value is read
// once so that a values view too short for all replacements fails here
// rather than mid-iteration.
func New[T any](base Sequence[T], indices []uint32, values Sequence[T]) (*Overlay[T], error) {
	if values.Len() != len(indices) {
		return nil, fmt.Errorf("%w: %d indices but %d values", ErrMalformed, len(indices), values.Len())
	}
	if len(indices) > base.Len() {
		return nil, fmt.Errorf("%w: %d overrides for %d elements", ErrMalformed, len(indices), base.Len())
	}
	if n := len(indices); n > 0 {
		if int(indices[n-1]) >= base.Len() {
			return nil, fmt.Errorf("%w: index %d is not below count %d", ErrMalformed, indices[n-1], base.Len())
		}
		if _, err := values.At(n - 1); err != nil {
			return nil, fmt.Errorf("sparse values: %w", err)
		}
	}

	return &Overlay[T]{
		base:    base,
		indices: indices,
		values:  values,
	}, nil
}

// Len returns the number of elements, equal to the base length.
func (o *Overlay[T]) Len() int {
	return o.base.Len()
}

// Count returns the number of replaced elements.
func (o *Overlay[T]) Count() int {
	return len(o.indices)
}

// At returns element i, looking the index up by binary search.
func (o *Overlay[T]) At(i int) (T, error) {
	j := sort.Search(len(o.indices), func(k int) bool { return int64(o.indices[k]) >= int64(i) })
	if j < len(o.indices) && int64(o.indices[j]) == int64(i) {
		return o.values.At(j)
	}
	return o.base.At(i)
}

// All yields every element in order with a single pass over the base
// sequence and the index list. Iteration stops after the first error.
func (o *Overlay[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		next := 0
		for i := 0; i < o.base.Len(); i++ {
			var (
				v   T
				err error
			)
			if next < len(o.indices) && int(o.indices[next]) == i {
				v, err = o.values.At(next)
				next++
			} else {
				v, err = o.base.At(i)
			}
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}
