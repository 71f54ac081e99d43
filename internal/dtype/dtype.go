package dtype

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrUnknownEncoding = errors.New("unknown component type")
	ErrUnknownShape    = errors.New("unknown element type")
	ErrMismatch        = errors.New("element type mismatch")
)

// Encoding is the storage encoding of one component. Values are the wire
// componentType codes.
type Encoding uint16

const (
	Byte          Encoding = 5120 // int8
	UnsignedByte  Encoding = 5121 // uint8
	Short         Encoding = 5122 // int16
	UnsignedShort Encoding = 5123 // uint16
	UnsignedInt   Encoding = 5125 // uint32
	Float         Encoding = 5126 // IEEE-754 float32
)

var encodingNames = map[Encoding]string{
	Byte:          "BYTE",
	UnsignedByte:  "UNSIGNED_BYTE",
	Short:         "SHORT",
	UnsignedShort: "UNSIGNED_SHORT",
	UnsignedInt:   "UNSIGNED_INT",
	Float:         "FLOAT",
}

// ParseEncoding maps a wire componentType code to an Encoding.
// Unknown codes are rejected.
func ParseEncoding(code uint32) (Encoding, error) {
	e := Encoding(code)
	if code > 0xFFFF {
		return 0, fmt.Errorf("%w: %d", ErrUnknownEncoding, code)
	}
	if _, ok := encodingNames[e]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownEncoding, code)
	}
	return e, nil
}

// Code returns the wire componentType code.
func (e Encoding) Code() uint32 {
	return uint32(e)
}

func (e Encoding) String() string {
	if name, ok := encodingNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Encoding(%d)", uint16(e))
}

// Size returns the byte width of one component: 1, 2 or 4.
// It returns 0 for an unknown encoding.
func (e Encoding) Size() int {
	switch e {
	case Byte, UnsignedByte:
		return 1
	case Short, UnsignedShort:
		return 2
	case UnsignedInt, Float:
		return 4
	default:
		return 0
	}
}

// Signed reports whether the encoding is a two's-complement integer.
func (e Encoding) Signed() bool {
	return e == Byte || e == Short
}

// IsInteger reports whether the encoding stores integers.
func (e Encoding) IsInteger() bool {
	return e != Float && e.Size() != 0
}

// IsIndex reports whether the encoding may be used for sparse indices.
func (e Encoding) IsIndex() bool {
	return e == UnsignedByte || e == UnsignedShort || e == UnsignedInt
}

// Shape is the logical arity of one element.
type Shape uint8

const (
	Scalar Shape = iota + 1
	Vec2
	Vec3
	Vec4
	Mat2
	Mat3
	Mat4
)

var shapeNames = map[Shape]string{
	Scalar: "SCALAR",
	Vec2:   "VEC2",
	Vec3:   "VEC3",
	Vec4:   "VEC4",
	Mat2:   "MAT2",
	Mat3:   "MAT3",
	Mat4:   "MAT4",
}

// ParseShape maps a wire type string ("SCALAR", "VEC3", ...) to a Shape.
func ParseShape(s string) (Shape, error) {
	for shape, name := range shapeNames {
		if name == s {
			return shape, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShape, s)
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

// Components returns the number of components in one element.
func (s Shape) Components() int {
	switch s {
	case Scalar:
		return 1
	case Vec2:
		return 2
	case Vec3:
		return 3
	case Vec4, Mat2:
		return 4
	case Mat3:
		return 9
	case Mat4:
		return 16
	default:
		return 0
	}
}

// IsMatrix reports whether the shape is a square matrix.
func (s Shape) IsMatrix() bool {
	return s == Mat2 || s == Mat3 || s == Mat4
}

// Dim returns the vector length, or the order of a matrix (rows == columns).
func (s Shape) Dim() int {
	switch s {
	case Scalar:
		return 1
	case Vec2, Mat2:
		return 2
	case Vec3, Mat3:
		return 3
	case Vec4, Mat4:
		return 4
	default:
		return 0
	}
}

// columnStride returns the byte distance between matrix columns. Each column
// starts on a 4-byte boundary.
func columnStride(e Encoding, s Shape) int {
	return align4(s.Dim() * e.Size())
}

func align4(n int) int {
	return (n + 3) &^ 3
}

// ElementSize returns the packed byte width of one element, including the
// column padding required for matrices with 1- or 2-byte components. This is
// the default stride between consecutive elements.
func ElementSize(e Encoding, s Shape) int {
	if s.IsMatrix() {
		return s.Dim() * columnStride(e, s)
	}
	return s.Components() * e.Size()
}

// ComponentOffsets returns the byte offset of each component within one
// element, in storage order. Matrix column padding is skipped, so the result
// always has s.Components() entries.
func ComponentOffsets(e Encoding, s Shape) []int {
	n := s.Components()
	size := e.Size()
	offsets := make([]int, n)
	if !s.IsMatrix() {
		for i := range offsets {
			offsets[i] = i * size
		}
		return offsets
	}

	dim := s.Dim()
	stride := columnStride(e, s)
	for i := range offsets {
		col, row := i/dim, i%dim
		offsets[i] = col*stride + row*size
	}
	return offsets
}
