package layout

import (
	"errors"
	"fmt"

	"github.com/robert-malhotra/go-gltf/internal/binary"
)

// Errors
var (
	ErrInvalidStride = errors.New("byte stride smaller than element size")
	ErrInvalidView   = errors.New("invalid buffer view")
)

// Layout locates the packed bytes of each element of an accessor.
type Layout interface {
	// Len returns the number of elements.
	Len() int

	// ElementSize returns the packed byte width of one element.
	ElementSize() int

	// Element returns the bytes of element i. The slice aliases the
	// underlying buffer and must not be modified.
	Element(i int) ([]byte, error)
}

// View is a window into a buffer. A zero ByteStride means tightly packed.
type View struct {
	ByteOffset int
	ByteLength int
	ByteStride int
}

// Resolve returns the part of buffer covered by the view. A buffer shorter
// than the view's end is a bounds error; the view is never silently clamped.
func Resolve(v View, buffer []byte) ([]byte, error) {
	if v.ByteOffset < 0 || v.ByteLength < 0 {
		return nil, fmt.Errorf("%w: offset %d, length %d", ErrInvalidView, v.ByteOffset, v.ByteLength)
	}
	data, err := binary.NewReader(buffer).Slice(v.ByteOffset, v.ByteLength)
	if err != nil {
		return nil, fmt.Errorf("resolving view: %w", err)
	}
	return data, nil
}

// New creates the layout of count elements of elemSize bytes starting at
// byteOffset inside data, the resolved bytes of view v.
func New(v View, data []byte, byteOffset, count, elemSize int) (Layout, error) {
	stride := v.ByteStride
	if stride == 0 {
		stride = elemSize
	}
	return NewStrided(data, byteOffset, stride, elemSize, count)
}
