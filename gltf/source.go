package gltf

import (
	"github.com/robert-malhotra/go-gltf/internal/source"
)

// BufferSource supplies the bytes of a document's buffers. Returning false
// means the bytes are unavailable, which reads report as ErrUnavailable. The
// returned slice must stay unmodified while reads over it are in use.
//
// Implementations used from several goroutines must be safe for concurrent
// use; the reading code itself never mutates the bytes.
type BufferSource interface {
	BufferData(b Buffer) ([]byte, bool)
}

// SourceFunc adapts a function to the BufferSource interface.
type SourceFunc func(b Buffer) ([]byte, bool)

// BufferData calls f(b).
func (f SourceFunc) BufferData(b Buffer) ([]byte, bool) {
	return f(b)
}

// Buffers returns a source serving data[i] as buffer i. Nil entries are
// unavailable.
func Buffers(data ...[]byte) BufferSource {
	return sourceAdapter{source.NewMemory(data...)}
}

// sourceAdapter exposes an internal source as a BufferSource.
type sourceAdapter struct {
	src source.Source
}

func (a sourceAdapter) BufferData(b Buffer) ([]byte, bool) {
	return a.src.Load(b.ref())
}

// chainSource tries each BufferSource in order.
type chainSource []BufferSource

func (c chainSource) BufferData(b Buffer) ([]byte, bool) {
	for _, s := range c {
		if data, ok := s.BufferData(b); ok {
			return data, true
		}
	}
	return nil, false
}
