package gltf

import (
	"fmt"

	"github.com/robert-malhotra/go-gltf/internal/layout"
	"github.com/robert-malhotra/go-gltf/internal/source"
)

// Buffer is a handle to a buffer of a document.
type Buffer struct {
	doc   *Document
	index int
}

func (b Buffer) rec() *bufferRecord {
	return &b.doc.buffers[b.index]
}

// Index returns the buffer's position in the document.
func (b Buffer) Index() int {
	return b.index
}

// Name returns the optional user-defined name.
func (b Buffer) Name() string {
	return b.rec().name
}

// URI returns the buffer's URI. It is empty for the binary chunk of a GLB
// file.
func (b Buffer) URI() string {
	return b.rec().uri
}

// ByteLength returns the declared length of the buffer.
func (b Buffer) ByteLength() int {
	return b.rec().byteLength
}

func (b Buffer) ref() source.Ref {
	r := b.rec()
	return source.Ref{Index: b.index, URI: r.uri, ByteLength: r.byteLength}
}

// View is a handle to a buffer view: a window of ByteLength bytes at
// ByteOffset inside one buffer.
type View struct {
	doc   *Document
	index int
}

func (v View) rec() *viewRecord {
	return &v.doc.views[v.index]
}

// Index returns the view's position in the document.
func (v View) Index() int {
	return v.index
}

// Name returns the optional user-defined name.
func (v View) Name() string {
	return v.rec().name
}

// Buffer returns the buffer the view points into.
func (v View) Buffer() Buffer {
	return Buffer{doc: v.doc, index: v.rec().buffer}
}

// ByteOffset returns the view's offset into its buffer.
func (v View) ByteOffset() int {
	return v.rec().byteOffset
}

// ByteLength returns the view's length in bytes.
func (v View) ByteLength() int {
	return v.rec().byteLength
}

// ByteStride returns the explicit stride, or false when elements are
// tightly packed.
func (v View) ByteStride() (int, bool) {
	s := v.rec().byteStride
	return s, s != 0
}

func (v View) layout() layout.View {
	r := v.rec()
	return layout.View{
		ByteOffset: r.byteOffset,
		ByteLength: r.byteLength,
		ByteStride: r.byteStride,
	}
}

// Data returns the bytes the view covers. It fails with ErrUnavailable when
// src has no data for the buffer and with ErrOutOfBounds when the data is
// shorter than the view.
func (v View) Data(src BufferSource) ([]byte, error) {
	b := v.Buffer()
	buf, ok := src.BufferData(b)
	if !ok {
		return nil, fmt.Errorf("%w: buffer %d", ErrUnavailable, b.index)
	}
	data, err := layout.Resolve(v.layout(), buf)
	if err != nil {
		return nil, fmt.Errorf("buffer view %d: %w", v.index, err)
	}
	return data, nil
}
