// Package source supplies the raw bytes of glTF buffers.
//
// A Source maps a buffer reference to an immutable byte slice. A source
// without data for a buffer reports false rather than an error: a missing
// external file is a normal outcome during partial loads, and the reader
// decides what that means for the accessors that need the buffer.
package source

import "strconv"

// Ref identifies a buffer of a document.
type Ref struct {
	Index      int
	URI        string
	ByteLength int
}

// Key returns a string that identifies the referenced bytes within one
// document. Buffers with a URI are keyed by it, so two buffers naming the
// same file share a cache entry.
func (r Ref) Key() string {
	if r.URI != "" {
		return r.URI
	}
	return "#" + strconv.Itoa(r.Index)
}

// Source yields the bytes of a buffer, or false when it has none.
// The returned slice must not be modified.
type Source interface {
	Load(ref Ref) ([]byte, bool)
}

// Func adapts a function to the Source interface.
type Func func(ref Ref) ([]byte, bool)

// Load calls f(ref).
func (f Func) Load(ref Ref) ([]byte, bool) {
	return f(ref)
}

// Chain tries each source in order and returns the first bytes found.
type Chain []Source

var _ Source = Chain(nil)

// Load implements Source.
func (c Chain) Load(ref Ref) ([]byte, bool) {
	for _, s := range c {
		if s == nil {
			continue
		}
		if data, ok := s.Load(ref); ok {
			return data, true
		}
	}
	return nil, false
}

// Memory holds buffers in memory, keyed by buffer index. It is immutable
// once created.
type Memory struct {
	data map[int][]byte
}

var _ Source = (*Memory)(nil)

// NewMemory creates a memory source. The slice at position i becomes the
// bytes of buffer i; nil entries are unavailable.
func NewMemory(buffers ...[]byte) *Memory {
	m := &Memory{data: map[int][]byte{}}
	for i, b := range buffers {
		if b != nil {
			m.data[i] = b
		}
	}
	return m
}

// Load implements Source.
func (m *Memory) Load(ref Ref) ([]byte, bool) {
	d, ok := m.data[ref.Index]
	return d, ok
}
