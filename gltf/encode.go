package gltf

import (
	"fmt"
	"reflect"

	"github.com/robert-malhotra/go-gltf/internal/dtype"
	"github.com/robert-malhotra/go-gltf/internal/layout"
)

// EncodeOptions describes the packed form written by Encode.
type EncodeOptions struct {
	ComponentType ComponentType
	Type          ElementType
	Normalized    bool
	// ByteStride places elements this many bytes apart. Zero packs them
	// tightly.
	ByteStride int
	// ByteOffset reserves leading bytes before the first element.
	ByteOffset int
}

// Encode packs values the way Read decodes them, returning buffer view
// bytes. T follows the rules of Read. For non-normalized accessors, reading
// the result yields values again; normalized components are quantized.
func Encode[T any](values []T, opts EncodeOptions) ([]byte, error) {
	enc, err := dtype.NewEncoder(opts.ComponentType, opts.Type, opts.Normalized, reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}
	size := enc.ElementSize()

	w, err := layout.NewWriter(opts.ByteOffset, opts.ByteStride, size)
	if err != nil {
		return nil, err
	}
	elem := make([]byte, size)
	for i, v := range values {
		clear(elem)
		if err := dtype.EncodeAs(enc, v, elem); err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		if err := w.Append(elem); err != nil {
			return nil, err
		}
	}
	return w.Bytes(), nil
}
