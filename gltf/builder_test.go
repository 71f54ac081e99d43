package gltf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilderRoundTrip(t *testing.T) {
	b := NewBuilder("builder test")

	positions := [][3]float32{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	pos, err := AddAccessor(b, "POSITION", positions, EncodeOptions{ComponentType: Float, Type: Vec3})
	require.NoError(t, err)

	// 3 bytes of indices push the next view onto a padded offset.
	indices := []uint8{0, 1, 2}
	idx, err := AddAccessor(b, "indices", indices, EncodeOptions{ComponentType: UnsignedByte, Type: Scalar})
	require.NoError(t, err)

	colors := [][4]float32{{1, 0.5, 0, 1}}
	col, err := AddAccessor(b, "COLOR_0", colors, EncodeOptions{ComponentType: UnsignedByte, Type: Vec4, Normalized: true, ByteStride: 4})
	require.NoError(t, err)

	data, err := b.GLB()
	require.NoError(t, err)

	doc, err := Parse(data)
	require.NoError(t, err)
	defer doc.Close()
	require.Equal(t, "builder test", doc.Generator())

	views := doc.Views()
	require.Len(t, views, 3)
	for _, v := range views {
		require.Zero(t, v.ByteOffset()%4, "view %d", v.Index())
	}
	require.Equal(t, 40, views[2].ByteOffset())
	stride, ok := views[2].ByteStride()
	require.True(t, ok)
	require.Equal(t, 4, stride)

	a, err := doc.Accessor(pos)
	require.NoError(t, err)
	it, err := Read[[3]float32](a, nil)
	require.NoError(t, err)
	gotPos, err := it.Collect()
	require.NoError(t, err)
	require.Equal(t, positions, gotPos)

	a, err = doc.Accessor(idx)
	require.NoError(t, err)
	ii, err := Read[uint8](a, nil)
	require.NoError(t, err)
	gotIdx, err := ii.Collect()
	require.NoError(t, err)
	require.Equal(t, indices, gotIdx)

	a, err = doc.Accessor(col)
	require.NoError(t, err)
	require.True(t, a.Normalized())
	ci, err := Read[[4]float32](a, nil)
	require.NoError(t, err)
	c, err := ci.At(0)
	require.NoError(t, err)
	require.InDelta(t, 0.5, c[1], 1.0/255)
	require.Equal(t, float32(1), c[0])
}

func TestBuilderRejects(t *testing.T) {
	b := NewBuilder("")
	_, err := b.AddView(nil, 0)
	require.ErrorIs(t, err, ErrMalformed)

	_, err = AddAccessor(b, "", []uint16{1}, EncodeOptions{ComponentType: UnsignedByte, Type: Scalar})
	require.ErrorIs(t, err, ErrTypeMismatch)

	for _, stride := range []int{2, 6, 256, 300} {
		_, err = b.AddView(make([]byte, 8), stride)
		require.ErrorIs(t, err, ErrMalformed, "stride %d", stride)
		_, err = AddAccessor(b, "", []uint8{1, 2}, EncodeOptions{ComponentType: UnsignedByte, Type: Scalar, ByteStride: stride})
		require.ErrorIs(t, err, ErrMalformed, "stride %d", stride)
	}

	data, err := b.GLB()
	require.NoError(t, err)
	doc, err := Parse(data)
	require.NoError(t, err)
	require.Empty(t, doc.Buffers())
	require.NoError(t, doc.Close())
}
