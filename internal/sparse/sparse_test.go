package sparse

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-gltf/internal/binary"
	"github.com/robert-malhotra/go-gltf/internal/dtype"
)

// slice is a Sequence over an in-memory slice with an optional failing index.
type slice[T any] struct {
	items  []T
	failAt int
}

func newSlice[T any](items ...T) *slice[T] {
	return &slice[T]{items: items, failAt: -1}
}

func (s *slice[T]) Len() int { return len(s.items) }

func (s *slice[T]) At(i int) (T, error) {
	var zero T
	if i == s.failAt {
		return zero, fmt.Errorf("element %d: %w", i, binary.ErrOutOfBounds)
	}
	if i < 0 || i >= len(s.items) {
		return zero, fmt.Errorf("element %d: index out of range", i)
	}
	return s.items[i], nil
}

func collect[T any](t *testing.T, o *Overlay[T]) []T {
	t.Helper()
	var out []T
	for v, err := range o.All() {
		require.NoError(t, err)
		out = append(out, v)
	}
	return out
}

func TestDecodeIndicesUnsignedShort(t *testing.T) {
	indices, err := DecodeIndices(dtype.UnsignedShort, []byte{0x01, 0x00}, 0, 1, 5)
	require.NoError(t, err)
	require.Equal(t, []uint32{1}, indices)
}

func TestDecodeIndicesEncodings(t *testing.T) {
	tests := []struct {
		enc  dtype.Encoding
		data []byte
	}{
		{dtype.UnsignedByte, []byte{0xFF, 1, 3}},
		{dtype.UnsignedShort, []byte{0xFF, 1, 0, 3, 0}},
		{dtype.UnsignedInt, []byte{0xFF, 1, 0, 0, 0, 3, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.enc.String(), func(t *testing.T) {
			// Skip the leading junk byte with the offset.
			indices, err := DecodeIndices(tt.enc, tt.data, 1, 2, 5)
			require.NoError(t, err)
			require.Equal(t, []uint32{1, 3}, indices)
		})
	}
}

func TestDecodeIndicesMalformed(t *testing.T) {
	tests := []struct {
		name  string
		enc   dtype.Encoding
		data  []byte
		count int
		limit int
	}{
		{"not increasing", dtype.UnsignedByte, []byte{3, 1}, 2, 5},
		{"duplicate", dtype.UnsignedByte, []byte{2, 2}, 2, 5},
		{"out of range", dtype.UnsignedByte, []byte{1, 5}, 2, 5},
		{"count above limit", dtype.UnsignedByte, []byte{0, 1, 2}, 3, 2},
		{"float indices", dtype.Float, make([]byte, 8), 2, 5},
		{"signed indices", dtype.Short, make([]byte, 4), 2, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeIndices(tt.enc, tt.data, 0, tt.count, tt.limit)
			require.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestDecodeIndicesTruncated(t *testing.T) {
	_, err := DecodeIndices(dtype.UnsignedInt, []byte{1, 0, 0, 0, 2, 0}, 0, 2, 5)
	require.ErrorIs(t, err, binary.ErrOutOfBounds)
	require.False(t, errors.Is(err, ErrMalformed))
}

func TestOverlayZeroBaseline(t *testing.T) {
	zero := [3]float32{}
	base := newSlice(zero, zero, zero, zero, zero)
	values := newSlice([3]float32{1, 0, 0}, [3]float32{0, 1, 0})

	o, err := New[[3]float32](base, []uint32{1, 3}, values)
	require.NoError(t, err)
	require.Equal(t, 5, o.Len())
	require.Equal(t, 2, o.Count())

	expected := [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 0, 0}, {0, 1, 0}, {0, 0, 0}}
	require.Equal(t, expected, collect(t, o))

	for i, want := range expected {
		got, err := o.At(i)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestOverlayCorrectness(t *testing.T) {
	base := newSlice(10, 11, 12, 13, 14, 15, 16, 17)
	indices := []uint32{0, 2, 7}
	values := newSlice(100, 102, 107)

	o, err := New[int](base, indices, values)
	require.NoError(t, err)

	out := collect(t, o)
	require.Len(t, out, base.Len())
	for i, v := range out {
		replaced := false
		for j, idx := range indices {
			if int(idx) == i {
				require.Equal(t, values.items[j], v)
				replaced = true
			}
		}
		if !replaced {
			require.Equal(t, base.items[i], v)
		}
	}
}

func TestOverlayRestartable(t *testing.T) {
	o, err := New[int](newSlice(1, 2, 3), []uint32{1}, newSlice(20))
	require.NoError(t, err)

	first := collect(t, o)
	second := collect(t, o)
	require.Equal(t, first, second)

	// Stopping early and starting again reproduces the prefix.
	for v := range o.All() {
		require.Equal(t, 1, v)
		break
	}
	require.Equal(t, first, collect(t, o))
}

func TestOverlayNoOverrides(t *testing.T) {
	o, err := New[int](newSlice(1, 2, 3), nil, newSlice[int]())
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, collect(t, o))
}

func TestOverlayMismatchedValues(t *testing.T) {
	_, err := New[int](newSlice(1, 2, 3), []uint32{0, 1}, newSlice(5))
	require.ErrorIs(t, err, ErrMalformed)

	_, err = New[int](newSlice(1, 2), []uint32{0, 1, 2}, newSlice(5, 6, 7))
	require.ErrorIs(t, err, ErrMalformed)
}

func TestOverlayValuesTooShort(t *testing.T) {
	values := newSlice(5, 6)
	values.failAt = 1

	_, err := New[int](newSlice(1, 2, 3), []uint32{0, 2}, values)
	require.ErrorIs(t, err, binary.ErrOutOfBounds)
}

func TestOverlayStopsAtBaseError(t *testing.T) {
	base := newSlice(1, 2, 3, 4)
	base.failAt = 2

	o, err := New[int](base, []uint32{0}, newSlice(9))
	require.NoError(t, err)

	var got []int
	var iterErr error
	for v, err := range o.All() {
		if err != nil {
			iterErr = err
			continue
		}
		got = append(got, v)
	}
	require.Equal(t, []int{9, 2}, got)
	require.ErrorIs(t, iterErr, binary.ErrOutOfBounds)
}
