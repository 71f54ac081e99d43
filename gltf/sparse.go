package gltf

import (
	"fmt"

	"github.com/robert-malhotra/go-gltf/internal/dtype"
)

// IndexType is the component type of sparse indices. Only the three
// unsigned integer encodings are valid.
type IndexType uint8

const (
	IndexUnsignedByte IndexType = iota + 1
	IndexUnsignedShort
	IndexUnsignedInt
)

var indexEncodings = map[IndexType]dtype.Encoding{
	IndexUnsignedByte:  dtype.UnsignedByte,
	IndexUnsignedShort: dtype.UnsignedShort,
	IndexUnsignedInt:   dtype.UnsignedInt,
}

// ParseIndexType maps a wire componentType code to an IndexType. Any code
// other than 5121, 5123 or 5125 is ErrMalformed.
func ParseIndexType(code uint32) (IndexType, error) {
	for it, enc := range indexEncodings {
		if enc.Code() == code {
			return it, nil
		}
	}
	return 0, fmt.Errorf("%w: sparse index componentType %d", ErrMalformed, code)
}

// ComponentType returns the encoding of one index.
func (t IndexType) ComponentType() ComponentType {
	return indexEncodings[t]
}

// Size returns the byte width of one index.
func (t IndexType) Size() int {
	return indexEncodings[t].Size()
}

func (t IndexType) String() string {
	if enc, ok := indexEncodings[t]; ok {
		return enc.String()
	}
	return fmt.Sprintf("IndexType(%d)", uint8(t))
}

// Sparse describes the sparse storage of an accessor.
type Sparse struct {
	accessor Accessor
}

func (s Sparse) rec() *sparseRecord {
	return s.accessor.rec().sparse
}

// Count returns the number of replaced elements.
func (s Sparse) Count() int {
	return s.rec().count
}

// Indices returns the location of the index array.
func (s Sparse) Indices() SparseIndices {
	return SparseIndices{sparse: s}
}

// Values returns the location of the replacement values.
func (s Sparse) Values() SparseValues {
	return SparseValues{sparse: s}
}

// SparseIndices locates the strictly increasing indices of the replaced
// elements.
type SparseIndices struct {
	sparse Sparse
}

// View returns the buffer view holding the indices.
func (i SparseIndices) View() View {
	return View{doc: i.sparse.accessor.doc, index: i.sparse.rec().indicesView}
}

// ByteOffset returns the offset of the first index inside the view.
func (i SparseIndices) ByteOffset() int {
	return i.sparse.rec().indicesOffset
}

// IndexType returns the index component type.
func (i SparseIndices) IndexType() IndexType {
	return i.sparse.rec().indexType
}

// SparseValues locates the replacement values, tightly packed with the
// accessor's element type.
type SparseValues struct {
	sparse Sparse
}

// View returns the buffer view holding the values.
func (v SparseValues) View() View {
	return View{doc: v.sparse.accessor.doc, index: v.sparse.rec().valuesView}
}

// ByteOffset returns the offset of the first value inside the view.
func (v SparseValues) ByteOffset() int {
	return v.sparse.rec().valuesOffset
}
