package gltf

import (
	"encoding/json"
	"fmt"

	"github.com/robert-malhotra/go-gltf/internal/alloc"
	"github.com/robert-malhotra/go-gltf/internal/glb"
)

// viewAlignment keeps every buffer view 4-byte aligned.
const viewAlignment = 4

// Builder assembles a GLB file whose binary chunk holds the data of every
// accessor added to it. It is the write-side counterpart of Parse.
type Builder struct {
	alloc *alloc.Allocator
	views [][]byte
	raw   documentJSON
}

// NewBuilder creates an empty builder. generator is recorded in the asset.
func NewBuilder(generator string) *Builder {
	return &Builder{
		alloc: alloc.New(viewAlignment),
		raw: documentJSON{
			Asset: assetJSON{Version: "2.0", Generator: generator},
		},
	}
}

// AddView places data in the binary chunk as a new buffer view and returns
// the view index. A zero stride leaves the view tightly packed; any other
// stride must be a multiple of 4 in [4, 252].
func (b *Builder) AddView(data []byte, stride int) (int, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("%w: empty buffer view", ErrMalformed)
	}
	if err := checkStride(stride); err != nil {
		return 0, err
	}
	index := len(b.raw.BufferViews)
	off, err := b.alloc.Alloc(len(data), fmt.Sprintf("view %d", index))
	if err != nil {
		return 0, err
	}
	b.views = append(b.views, data)
	b.raw.BufferViews = append(b.raw.BufferViews, viewJSON{
		ByteOffset: off,
		ByteLength: len(data),
		ByteStride: stride,
	})
	return index, nil
}

// AddAccessor encodes values into a new buffer view and declares an
// accessor over it. It returns the accessor index.
func AddAccessor[T any](b *Builder, name string, values []T, opts EncodeOptions) (int, error) {
	if err := checkStride(opts.ByteStride); err != nil {
		return 0, err
	}
	data, err := Encode(values, opts)
	if err != nil {
		return 0, err
	}
	view, err := b.AddView(data, opts.ByteStride)
	if err != nil {
		return 0, err
	}

	index := len(b.raw.Accessors)
	b.raw.Accessors = append(b.raw.Accessors, accessorJSON{
		Name:          name,
		BufferView:    &view,
		ByteOffset:    opts.ByteOffset,
		ComponentType: opts.ComponentType.Code(),
		Normalized:    opts.Normalized,
		Count:         len(values),
		Type:          opts.Type.String(),
	})
	return index, nil
}

// GLB returns the assembled GLB file.
func (b *Builder) GLB() ([]byte, error) {
	if err := b.alloc.Validate(); err != nil {
		return nil, err
	}

	var bin []byte
	raw := b.raw
	if n := b.alloc.End(); n > 0 {
		bin = make([]byte, n)
		for i, r := range b.alloc.Allocations() {
			copy(bin[r.Offset:r.Offset+r.Size], b.views[i])
		}
		raw.Buffers = []bufferJSON{{ByteLength: n}}
	}

	jsonDoc, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("encoding JSON: %w", err)
	}
	return glb.Write(jsonDoc, bin), nil
}
