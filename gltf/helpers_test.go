package gltf

import (
	"encoding/binary"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func ptr(i int) *int {
	return &i
}

func f32le(vals ...float32) []byte {
	out := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(out[4*i:], math.Float32bits(v))
	}
	return out
}

func u16le(vals ...uint16) []byte {
	out := make([]byte, 2*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint16(out[2*i:], v)
	}
	return out
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// parseDoc marshals raw and parses it back, so tests exercise the same path
// as documents read from disk.
func parseDoc(t *testing.T, raw documentJSON, opts ...Option) *Document {
	t.Helper()
	if raw.Asset.Version == "" {
		raw.Asset.Version = "2.0"
	}
	data, err := json.Marshal(raw)
	require.NoError(t, err)
	doc, err := Parse(data, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { doc.Close() })
	return doc
}

// singleAccessor builds a document with one buffer of length n, one view
// over all of it and the given accessor.
func singleAccessor(t *testing.T, n int, view viewJSON, acc accessorJSON, opts ...Option) Accessor {
	t.Helper()
	if view.ByteLength == 0 {
		view.ByteLength = n - view.ByteOffset
	}
	if acc.BufferView == nil {
		acc.BufferView = ptr(0)
	}
	doc := parseDoc(t, documentJSON{
		Buffers:     []bufferJSON{{ByteLength: n}},
		BufferViews: []viewJSON{view},
		Accessors:   []accessorJSON{acc},
	}, opts...)
	a, err := doc.Accessor(0)
	require.NoError(t, err)
	return a
}

// sparseDoc builds a sparse VEC3 FLOAT accessor of count elements without a
// base view. Indices are UNSIGNED_SHORT in view 0, values in view 1.
func sparseDoc(t *testing.T, count int, indices []uint16, values []float32, opts ...Option) (Accessor, []byte) {
	t.Helper()
	idx := u16le(indices...)
	val := f32le(values...)
	data := concat(idx, val)
	doc := parseDoc(t, documentJSON{
		Buffers: []bufferJSON{{ByteLength: len(data)}},
		BufferViews: []viewJSON{
			{Buffer: 0, ByteOffset: 0, ByteLength: len(idx)},
			{Buffer: 0, ByteOffset: len(idx), ByteLength: len(val)},
		},
		Accessors: []accessorJSON{{
			ComponentType: uint32(Float),
			Type:          "VEC3",
			Count:         count,
			Sparse: &sparseJSON{
				Count:   len(indices),
				Indices: sparseIndicesJSON{BufferView: 0, ComponentType: uint32(UnsignedShort)},
				Values:  sparseValuesJSON{BufferView: 1},
			},
		}},
	}, opts...)
	a, err := doc.Accessor(0)
	require.NoError(t, err)
	return a, data
}
