package binary

import "encoding/binary"

// Writer writes little-endian values into a growable byte slice.
// Writing past the current end extends the slice with zero bytes, so gaps
// left by Skip or Align read back as padding.
type Writer struct {
	buf []byte
	pos int
}

// NewWriter creates a writer with capacity for sizeHint bytes.
func NewWriter(sizeHint int) *Writer {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Writer{buf: make([]byte, 0, sizeHint)}
}

// Seek moves the write position to offset.
func (w *Writer) Seek(offset int) {
	w.pos = offset
}

// Bytes returns the written data.
func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) grow(end int) {
	if end <= len(w.buf) {
		return
	}
	if end <= cap(w.buf) {
		w.buf = w.buf[:end]
		return
	}
	next := make([]byte, end, max(end, 2*cap(w.buf)))
	copy(next, w.buf)
	w.buf = next
}

// WriteBytes writes the given bytes at the current position.
func (w *Writer) WriteBytes(data []byte) {
	if len(data) == 0 {
		return
	}
	w.grow(w.pos + len(data))
	copy(w.buf[w.pos:], data)
	w.pos += len(data)
}

// WriteUint8 writes an unsigned 8-bit integer.
func (w *Writer) WriteUint8(v uint8) {
	w.grow(w.pos + 1)
	w.buf[w.pos] = v
	w.pos++
}

// WriteUint32 writes an unsigned 32-bit integer.
func (w *Writer) WriteUint32(v uint32) {
	w.grow(w.pos + 4)
	binary.LittleEndian.PutUint32(w.buf[w.pos:], v)
	w.pos += 4
}

// Skip advances the position by n bytes, zero-filling if the buffer grows.
func (w *Writer) Skip(n int) {
	w.grow(w.pos + n)
	w.pos += n
}

// Align advances the position to the next multiple of alignment.
func (w *Writer) Align(alignment int) {
	if alignment <= 1 {
		return
	}
	if remainder := w.pos % alignment; remainder != 0 {
		w.Skip(alignment - remainder)
	}
}

// EncodeUint writes v as a little-endian unsigned integer of the given width
// into the start of buf. The caller guarantees len(buf) >= size.
func EncodeUint(buf []byte, v uint64, size int) {
	switch size {
	case 1:
		buf[0] = uint8(v)
	case 2:
		binary.LittleEndian.PutUint16(buf, uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(buf, uint32(v))
	case 8:
		binary.LittleEndian.PutUint64(buf, v)
	default:
		for i := 0; i < size; i++ {
			buf[i] = uint8(v >> (8 * i))
		}
	}
}
