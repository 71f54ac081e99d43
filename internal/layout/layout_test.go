package layout

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-gltf/internal/binary"
)

func sequentialBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestResolve(t *testing.T) {
	buffer := sequentialBytes(32)

	data, err := Resolve(View{ByteOffset: 4, ByteLength: 8}, buffer)
	require.NoError(t, err)
	require.Equal(t, []byte{4, 5, 6, 7, 8, 9, 10, 11}, data)

	// The whole buffer.
	data, err = Resolve(View{ByteOffset: 0, ByteLength: 32}, buffer)
	require.NoError(t, err)
	require.Len(t, data, 32)
}

func TestResolveShortBuffer(t *testing.T) {
	_, err := Resolve(View{ByteOffset: 16, ByteLength: 20}, sequentialBytes(32))
	require.ErrorIs(t, err, binary.ErrOutOfBounds)

	_, err = Resolve(View{ByteOffset: -1, ByteLength: 4}, sequentialBytes(32))
	require.ErrorIs(t, err, ErrInvalidView)
}

func TestStridedTightlyPacked(t *testing.T) {
	data := sequentialBytes(12)
	l, err := New(View{ByteLength: 12}, data, 0, 4, 3)
	require.NoError(t, err)
	require.Equal(t, 4, l.Len())
	require.Equal(t, 3, l.ElementSize())

	for i := 0; i < 4; i++ {
		elem, err := l.Element(i)
		require.NoError(t, err)
		require.Equal(t, []byte{byte(3 * i), byte(3*i + 1), byte(3*i + 2)}, elem)
	}
}

func TestStridedInterleaved(t *testing.T) {
	// Two-byte elements interleaved with two bytes of something else.
	data := []byte{1, 2, 0xAA, 0xAA, 3, 4, 0xAA, 0xAA, 5, 6}
	l, err := New(View{ByteLength: len(data), ByteStride: 4}, data, 0, 3, 2)
	require.NoError(t, err)

	var got [][]byte
	for i := 0; i < l.Len(); i++ {
		elem, err := l.Element(i)
		require.NoError(t, err)
		got = append(got, elem)
	}
	require.Equal(t, [][]byte{{1, 2}, {3, 4}, {5, 6}}, got)
}

func TestStrideDefaultMatchesExplicit(t *testing.T) {
	data := sequentialBytes(48)
	implicit, err := New(View{ByteLength: 48}, data, 4, 3, 12)
	require.NoError(t, err)
	explicit, err := New(View{ByteLength: 48, ByteStride: 12}, data, 4, 3, 12)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		a, errA := implicit.Element(i)
		b, errB := explicit.Element(i)
		require.NoError(t, errA)
		require.NoError(t, errB)
		require.Equal(t, a, b)
	}
}

func TestStridedRejectsSmallStride(t *testing.T) {
	_, err := New(View{ByteLength: 48, ByteStride: 8}, sequentialBytes(48), 0, 4, 12)
	require.ErrorIs(t, err, ErrInvalidStride)
}

func TestStridedTruncated(t *testing.T) {
	// 40 bytes hold three 12-byte elements but not a fourth.
	data := sequentialBytes(40)
	l, err := New(View{ByteLength: 40}, data, 0, 4, 12)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := l.Element(i)
		require.NoError(t, err)
	}

	_, err = l.Element(3)
	require.ErrorIs(t, err, binary.ErrOutOfBounds)

	var rangeErr *binary.RangeError
	require.True(t, errors.As(err, &rangeErr))
	require.Equal(t, 36, rangeErr.Offset)
	require.Equal(t, 40, rangeErr.Len)
}

func TestStridedIndexRange(t *testing.T) {
	l, err := NewStrided(sequentialBytes(8), 0, 4, 4, 2)
	require.NoError(t, err)

	_, err = l.Element(-1)
	require.Error(t, err)
	_, err = l.Element(2)
	require.Error(t, err)
}

func TestZero(t *testing.T) {
	z := NewZero(5, 12)
	require.Equal(t, 5, z.Len())
	require.Equal(t, 12, z.ElementSize())

	elem, err := z.Element(4)
	require.NoError(t, err)
	require.Equal(t, make([]byte, 12), elem)

	_, err = z.Element(5)
	require.Error(t, err)
}

func TestWriterRoundTrip(t *testing.T) {
	data := []byte{
		0, 0, 0, 0, // accessor offset
		1, 2, 3, 0, 0, 0,
		4, 5, 6, 0, 0, 0,
		7, 8, 9,
	}
	l, err := NewStrided(data, 4, 6, 3, 3)
	require.NoError(t, err)

	w, err := NewWriter(4, 6, 3)
	require.NoError(t, err)
	for i := 0; i < l.Len(); i++ {
		elem, err := l.Element(i)
		require.NoError(t, err)
		require.NoError(t, w.Append(elem))
	}

	require.Equal(t, 3, w.Len())
	require.True(t, bytes.Equal(data, w.Bytes()), "expected %v, got %v", data, w.Bytes())
}

func TestWriterRejectsWrongWidth(t *testing.T) {
	w, err := NewWriter(0, 0, 4)
	require.NoError(t, err)
	require.Error(t, w.Append([]byte{1, 2, 3}))

	_, err = NewWriter(0, 2, 4)
	require.ErrorIs(t, err, ErrInvalidStride)
}
