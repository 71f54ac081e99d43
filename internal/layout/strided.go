package layout

import (
	"fmt"

	"github.com/robert-malhotra/go-gltf/internal/binary"
)

// Strided represents elements stored at a fixed distance from each other
// inside one resolved buffer view. Tightly packed data is the special case
// stride == element size.
type Strided struct {
	data     []byte
	offset   int
	stride   int
	elemSize int
	count    int
}

// NewStrided creates a strided layout handler. The stride must be at least
// the element size. Whether every element fits in data is checked per
// element, so a truncated view still yields its leading elements.
func NewStrided(data []byte, offset, stride, elemSize, count int) (*Strided, error) {
	if elemSize <= 0 {
		return nil, fmt.Errorf("invalid element size %d", elemSize)
	}
	if stride < elemSize {
		return nil, fmt.Errorf("%w: stride %d, element size %d", ErrInvalidStride, stride, elemSize)
	}
	if offset < 0 || count < 0 {
		return nil, fmt.Errorf("invalid offset %d or count %d", offset, count)
	}

	return &Strided{
		data:     data,
		offset:   offset,
		stride:   stride,
		elemSize: elemSize,
		count:    count,
	}, nil
}

// Len returns the number of elements.
func (s *Strided) Len() int {
	return s.count
}

// ElementSize returns the packed byte width of one element.
func (s *Strided) ElementSize() int {
	return s.elemSize
}

// Element returns the bytes of element i.
func (s *Strided) Element(i int) ([]byte, error) {
	if i < 0 || i >= s.count {
		return nil, fmt.Errorf("element %d: index out of range [0, %d)", i, s.count)
	}
	start := s.offset + i*s.stride
	buf, err := binary.NewReader(s.data).Slice(start, s.elemSize)
	if err != nil {
		return nil, fmt.Errorf("element %d: %w", i, err)
	}
	return buf, nil
}
