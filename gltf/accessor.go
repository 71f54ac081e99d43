package gltf

import (
	"github.com/robert-malhotra/go-gltf/internal/dtype"
)

// ComponentType is the storage encoding of one accessor component. Its
// values are the wire componentType codes.
type ComponentType = dtype.Encoding

const (
	Byte          = dtype.Byte
	UnsignedByte  = dtype.UnsignedByte
	Short         = dtype.Short
	UnsignedShort = dtype.UnsignedShort
	UnsignedInt   = dtype.UnsignedInt
	Float         = dtype.Float
)

// ElementType is the shape of one accessor element.
type ElementType = dtype.Shape

const (
	Scalar = dtype.Scalar
	Vec2   = dtype.Vec2
	Vec3   = dtype.Vec3
	Vec4   = dtype.Vec4
	Mat2   = dtype.Mat2
	Mat3   = dtype.Mat3
	Mat4   = dtype.Mat4
)

// ElementSize returns the byte width of one element, including the column
// padding of matrices with 1- or 2-byte components. It is the default stride.
func ElementSize(ct ComponentType, et ElementType) int {
	return dtype.ElementSize(ct, et)
}

// Accessor is a handle to an accessor of a document.
type Accessor struct {
	doc   *Document
	index int
}

func (a Accessor) rec() *accessorRecord {
	return &a.doc.accessors[a.index]
}

// Index returns the accessor's position in the document.
func (a Accessor) Index() int {
	return a.index
}

// Name returns the optional user-defined name.
func (a Accessor) Name() string {
	return a.rec().name
}

// Count returns the number of elements.
func (a Accessor) Count() int {
	return a.rec().count
}

// ComponentType returns the component encoding.
func (a Accessor) ComponentType() ComponentType {
	return a.rec().enc
}

// Type returns the element shape.
func (a Accessor) Type() ElementType {
	return a.rec().shape
}

// Normalized reports whether integer components map to [0, 1] or [-1, 1].
func (a Accessor) Normalized() bool {
	return a.rec().normalized
}

// ByteOffset returns the offset of the first element inside the view.
func (a Accessor) ByteOffset() int {
	return a.rec().byteOffset
}

// ElementSize returns the padded byte width of one element.
func (a Accessor) ElementSize() int {
	r := a.rec()
	return dtype.ElementSize(r.enc, r.shape)
}

// View returns the accessor's buffer view, or false when it has none.
// Such accessors read as all zeros, patched by their sparse values if any.
func (a Accessor) View() (View, bool) {
	r := a.rec()
	if r.view < 0 {
		return View{}, false
	}
	return View{doc: a.doc, index: r.view}, true
}

// Min returns the declared per-component minimum. It is not checked
// against the data.
func (a Accessor) Min() []float64 {
	return a.rec().min
}

// Max returns the declared per-component maximum. It is not checked
// against the data.
func (a Accessor) Max() []float64 {
	return a.rec().max
}

// Sparse returns the sparse storage description, or false for a dense
// accessor.
func (a Accessor) Sparse() (Sparse, bool) {
	if a.rec().sparse == nil {
		return Sparse{}, false
	}
	return Sparse{accessor: a}, true
}

// Document returns the document owning the accessor.
func (a Accessor) Document() *Document {
	return a.doc
}
