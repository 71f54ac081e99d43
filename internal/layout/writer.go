package layout

import (
	"fmt"

	"github.com/robert-malhotra/go-gltf/internal/binary"
)

// Writer packs elements into a buffer view with a given stride. It is the
// write-side counterpart of Strided.
type Writer struct {
	w        *binary.Writer
	offset   int
	stride   int
	elemSize int
	count    int
}

// NewWriter creates a writer for elements of elemSize bytes placed stride
// bytes apart, starting at offset. A zero stride means tightly packed.
func NewWriter(offset, stride, elemSize int) (*Writer, error) {
	if stride == 0 {
		stride = elemSize
	}
	if stride < elemSize {
		return nil, fmt.Errorf("%w: stride %d, element size %d", ErrInvalidStride, stride, elemSize)
	}
	w := binary.NewWriter(offset + stride)
	w.Skip(offset)
	return &Writer{
		w:        w,
		offset:   offset,
		stride:   stride,
		elemSize: elemSize,
	}, nil
}

// Append writes the next element. elem must be exactly one element wide.
func (w *Writer) Append(elem []byte) error {
	if len(elem) != w.elemSize {
		return fmt.Errorf("element %d: got %d bytes, want %d", w.count, len(elem), w.elemSize)
	}
	w.w.Seek(w.offset + w.count*w.stride)
	w.w.WriteBytes(elem)
	w.count++
	return nil
}

// Len returns the number of elements written.
func (w *Writer) Len() int {
	return w.count
}

// Bytes returns the packed view. Trailing stride padding after the last
// element is not included.
func (w *Writer) Bytes() []byte {
	return w.w.Bytes()
}
