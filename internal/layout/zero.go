package layout

import "fmt"

// Zero represents an accessor without a buffer view. Every element reads as
// zero bytes, which decode to a zero value in every encoding.
type Zero struct {
	count int
	zero  []byte
}

// NewZero creates a zero-filled layout of count elements.
func NewZero(count, elemSize int) *Zero {
	return &Zero{
		count: count,
		zero:  make([]byte, elemSize),
	}
}

// Len returns the number of elements.
func (z *Zero) Len() int {
	return z.count
}

// ElementSize returns the packed byte width of one element.
func (z *Zero) ElementSize() int {
	return len(z.zero)
}

// Element returns the zero element. The same slice is returned for every
// index.
func (z *Zero) Element(i int) ([]byte, error) {
	if i < 0 || i >= z.count {
		return nil, fmt.Errorf("element %d: index out of range [0, %d)", i, z.count)
	}
	return z.zero, nil
}
