// Package binary provides bounds-checked little-endian access to byte slices.
//
// Every read is checked against the length of the slice it was created over.
// A read that would cross the end of the slice fails with a *RangeError that
// unwraps to ErrOutOfBounds; nothing is ever read past the slice.
package binary

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a byte range exceeds the available data.
var ErrOutOfBounds = errors.New("byte range out of bounds")

// ErrInvalidSize is returned when an unsupported integer width is requested.
var ErrInvalidSize = errors.New("invalid integer size: must be 1, 2, 4, or 8")

// RangeError describes a read of Size bytes at Offset from a slice of Len bytes.
type RangeError struct {
	Offset int
	Size   int
	Len    int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("byte range [%d, %d) exceeds %d available bytes", e.Offset, e.Offset+e.Size, e.Len)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfBounds
}

// CheckRange reports whether [offset, offset+size) lies within a slice of
// length n. The comparison is arranged so that it cannot overflow.
func CheckRange(offset, size, n int) error {
	if offset < 0 || size < 0 || offset > n || size > n-offset {
		return &RangeError{Offset: offset, Size: size, Len: n}
	}
	return nil
}

// Reader reads little-endian values from an immutable byte slice.
// A Reader never copies or modifies the slice.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// At returns a new reader positioned at the given offset.
// The new reader shares the underlying slice but has independent position.
func (r *Reader) At(offset int) *Reader {
	return &Reader{data: r.data, pos: offset}
}

// Remaining returns the number of bytes between the position and the end.
func (r *Reader) Remaining() int {
	if r.pos >= len(r.data) {
		return 0
	}
	return len(r.data) - r.pos
}

// Slice returns the n bytes at offset without copying.
func (r *Reader) Slice(offset, n int) ([]byte, error) {
	if err := CheckRange(offset, n, len(r.data)); err != nil {
		return nil, err
	}
	return r.data[offset : offset+n : offset+n], nil
}

// ReadBytes returns the next n bytes and advances the position.
// The returned slice aliases the underlying data.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	buf, err := r.Slice(r.pos, n)
	if err != nil {
		return nil, err
	}
	r.pos += n
	return buf, nil
}

// ReadUint32 reads an unsigned 32-bit integer.
func (r *Reader) ReadUint32() (uint32, error) {
	buf, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}

// ReadUintN reads an unsigned integer of n bytes (1, 2, 4, or 8).
func (r *Reader) ReadUintN(n int) (uint64, error) {
	if n != 1 && n != 2 && n != 4 && n != 8 {
		return 0, ErrInvalidSize
	}
	buf, err := r.ReadBytes(n)
	if err != nil {
		return 0, err
	}
	return DecodeUint(buf, n), nil
}

// DecodeUint decodes a little-endian unsigned integer of the given width
// from the start of buf. The caller guarantees len(buf) >= size.
func DecodeUint(buf []byte, size int) uint64 {
	switch size {
	case 1:
		return uint64(buf[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(buf))
	case 4:
		return uint64(binary.LittleEndian.Uint32(buf))
	case 8:
		return binary.LittleEndian.Uint64(buf)
	default:
		var val uint64
		for i := size - 1; i >= 0; i-- {
			val = (val << 8) | uint64(buf[i])
		}
		return val
	}
}

// Skip advances the position by n bytes.
func (r *Reader) Skip(n int) {
	r.pos += n
}

// Align advances the position to the next multiple of alignment.
// If already aligned, the position is unchanged.
func (r *Reader) Align(alignment int) {
	if alignment <= 1 {
		return
	}
	if remainder := r.pos % alignment; remainder != 0 {
		r.pos += alignment - remainder
	}
}

// Peek returns n bytes without advancing the position.
func (r *Reader) Peek(n int) ([]byte, error) {
	return r.Slice(r.pos, n)
}
