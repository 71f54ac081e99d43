package gltf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadSparseZeroBase(t *testing.T) {
	a, data := sparseDoc(t, 5, []uint16{1, 3}, []float32{1, 0, 0, 0, 1, 0})

	it, err := Read[[3]float32](a, Buffers(data))
	require.NoError(t, err)
	require.Equal(t, 5, it.Len())
	require.Equal(t, 2, it.Overrides())

	got, err := it.Collect()
	require.NoError(t, err)
	require.Equal(t, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 0, 0}, {0, 1, 0}, {0, 0, 0}}, got)

	for i, want := range got {
		v, err := it.At(i)
		require.NoError(t, err)
		require.Equal(t, want, v, "random access must match iteration at %d", i)
	}
}

func TestReadSparseUnsignedShortIndex(t *testing.T) {
	a, data := sparseDoc(t, 2, []uint16{1}, []float32{7, 8, 9})
	require.Equal(t, []byte{0x01, 0x00}, data[:2])

	it, err := Read[[3]float32](a, Buffers(data))
	require.NoError(t, err)
	got, err := it.Collect()
	require.NoError(t, err)
	require.Equal(t, [][3]float32{{}, {7, 8, 9}}, got)
}

func TestReadSparseOverView(t *testing.T) {
	base := f32le(10, 11, 12, 13, 14, 15)
	idx := []byte{0, 2, 5, 0}
	val := f32le(-1, -2, -3)
	data := concat(base, idx, val)

	doc := parseDoc(t, documentJSON{
		Buffers: []bufferJSON{{ByteLength: len(data)}},
		BufferViews: []viewJSON{
			{ByteOffset: 0, ByteLength: len(base)},
			{ByteOffset: len(base), ByteLength: len(idx)},
			{ByteOffset: len(base) + len(idx), ByteLength: len(val)},
		},
		Accessors: []accessorJSON{{
			BufferView:    ptr(0),
			ComponentType: uint32(Float),
			Type:          "SCALAR",
			Count:         6,
			Sparse: &sparseJSON{
				Count:   3,
				Indices: sparseIndicesJSON{BufferView: 1, ComponentType: uint32(UnsignedByte)},
				Values:  sparseValuesJSON{BufferView: 2},
			},
		}},
	})
	a, err := doc.Accessor(0)
	require.NoError(t, err)

	sp, ok := a.Sparse()
	require.True(t, ok)
	require.Equal(t, 3, sp.Count())
	require.Equal(t, IndexUnsignedByte, sp.Indices().IndexType())
	require.Equal(t, 1, sp.Indices().IndexType().Size())
	require.Equal(t, 1, sp.Indices().View().Index())
	require.Equal(t, 2, sp.Values().View().Index())
	require.Equal(t, 0, sp.Values().ByteOffset())

	it, err := Read[float32](a, Buffers(data))
	require.NoError(t, err)
	got, err := it.Collect()
	require.NoError(t, err)
	require.Equal(t, []float32{-1, 11, -2, 13, 14, -3}, got)

	// Overlay correctness against the dense base.
	again, err := Read[float32](a, Buffers(data))
	require.NoError(t, err)
	overridden := map[int]float32{0: -1, 2: -2, 5: -3}
	for i := range 6 {
		v, err := again.At(i)
		require.NoError(t, err)
		if want, ok := overridden[i]; ok {
			require.Equal(t, want, v)
		} else {
			require.Equal(t, float32(10+i), v)
		}
	}
}

func TestReadSparseMalformed(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		indices []uint16
	}{
		{"decreasing", 5, []uint16{3, 1}},
		{"duplicate", 5, []uint16{2, 2}},
		{"index at count", 5, []uint16{1, 5}},
		{"more overrides than elements", 1, []uint16{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := make([]float32, 3*len(tt.indices))
			a, data := sparseDoc(t, tt.count, tt.indices, values)

			it, err := Read[[3]float32](a, Buffers(data))
			require.ErrorIs(t, err, ErrMalformedSparse)
			require.Nil(t, it)
		})
	}
}

func TestReadSparseTruncatedValues(t *testing.T) {
	idx := u16le(0, 1)
	val := f32le(1, 2, 3, 4, 5) // one component short
	data := concat(idx, val)

	doc := parseDoc(t, documentJSON{
		Buffers: []bufferJSON{{ByteLength: len(data)}},
		BufferViews: []viewJSON{
			{ByteLength: len(idx)},
			{ByteOffset: len(idx), ByteLength: len(val)},
		},
		Accessors: []accessorJSON{{
			ComponentType: uint32(Float),
			Type:          "VEC3",
			Count:         2,
			Sparse: &sparseJSON{
				Count:   2,
				Indices: sparseIndicesJSON{BufferView: 0, ComponentType: uint32(UnsignedShort)},
				Values:  sparseValuesJSON{BufferView: 1},
			},
		}},
	})
	a, err := doc.Accessor(0)
	require.NoError(t, err)

	_, err = Read[[3]float32](a, Buffers(data))
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestReadSparseUnavailable(t *testing.T) {
	a, _ := sparseDoc(t, 5, []uint16{1, 3}, make([]float32, 6))

	_, err := Read[[3]float32](a, Buffers())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestParseIndexType(t *testing.T) {
	tests := []struct {
		code uint32
		want IndexType
		size int
	}{
		{5121, IndexUnsignedByte, 1},
		{5123, IndexUnsignedShort, 2},
		{5125, IndexUnsignedInt, 4},
	}
	for _, tt := range tests {
		got, err := ParseIndexType(tt.code)
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
		require.Equal(t, tt.size, got.Size())
		require.Equal(t, tt.code, got.ComponentType().Code())
	}

	for _, code := range []uint32{0, 5120, 5122, 5126, 9999} {
		_, err := ParseIndexType(code)
		require.ErrorIs(t, err, ErrMalformed, code)
	}
}
