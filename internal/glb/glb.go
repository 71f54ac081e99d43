// Package glb handles the binary container form of a glTF document.
//
// A GLB file is a 12-byte header followed by chunks. The first chunk holds
// the JSON document; an optional second chunk holds the binary buffer that
// the document refers to as buffer 0 without a URI.
package glb

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/robert-malhotra/go-gltf/internal/binary"
)

// Magic is the "glTF" signature at the start of every GLB file.
var Magic = []byte{'g', 'l', 'T', 'F'}

// Chunk types.
const (
	ChunkJSON uint32 = 0x4E4F534A // "JSON"
	ChunkBIN  uint32 = 0x004E4942 // "BIN\x00"
)

const (
	headerSize      = 12
	chunkHeaderSize = 8
	// Version is the only container version this package reads.
	Version = 2
)

// Errors
var (
	ErrNotGLB             = errors.New("not a GLB file: magic not found")
	ErrUnsupportedVersion = errors.New("unsupported GLB version")
	ErrInvalidChunk       = errors.New("invalid GLB chunk")
)

// File holds the chunks of a parsed GLB container. JSON and BIN alias the
// input slice.
type File struct {
	Version uint32
	Length  uint32
	JSON    []byte
	BIN     []byte
}

// IsGLB reports whether data starts with the GLB magic.
func IsGLB(data []byte) bool {
	return len(data) >= len(Magic) && bytes.Equal(data[:len(Magic)], Magic)
}

// Read parses a GLB container. The declared total length must not exceed
// the data, and every chunk must fit inside the declared length.
func Read(data []byte) (*File, error) {
	if !IsGLB(data) {
		return nil, ErrNotGLB
	}

	r := binary.NewReader(data)
	r.Skip(len(Magic))

	version, err := r.ReadUint32()
	if err != nil {
		return nil, fmt.Errorf("reading version: %w", err)
	}
	if version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	length, err := r.ReadUint32()
	if err != nil {
		return nil, fmt.Errorf("reading length: %w", err)
	}
	if int64(length) > int64(len(data)) || length < headerSize {
		return nil, fmt.Errorf("%w: declared length %d, have %d bytes", ErrInvalidChunk, length, len(data))
	}

	f := &File{Version: version, Length: length}
	body := binary.NewReader(data[:length]).At(headerSize)

	for i := 0; body.Remaining() > 0; i++ {
		chunkLen, err := body.ReadUint32()
		if err != nil {
			return nil, fmt.Errorf("%w: chunk %d header: %v", ErrInvalidChunk, i, err)
		}
		chunkType, err := body.ReadUint32()
		if err != nil {
			return nil, fmt.Errorf("%w: chunk %d header: %v", ErrInvalidChunk, i, err)
		}
		chunk, err := body.ReadBytes(int(chunkLen))
		if err != nil {
			return nil, fmt.Errorf("%w: chunk %d body: %v", ErrInvalidChunk, i, err)
		}
		body.Align(4)

		switch {
		case i == 0 && chunkType != ChunkJSON:
			return nil, fmt.Errorf("%w: first chunk is 0x%08x, want JSON", ErrInvalidChunk, chunkType)
		case i == 0:
			f.JSON = chunk
		case i == 1 && chunkType == ChunkBIN:
			f.BIN = chunk
		default:
			// Unknown chunks are skipped.
		}
	}

	if f.JSON == nil {
		return nil, fmt.Errorf("%w: missing JSON chunk", ErrInvalidChunk)
	}
	return f, nil
}
