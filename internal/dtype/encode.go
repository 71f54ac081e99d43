package dtype

import (
	"fmt"
	"math"
	"reflect"

	"github.com/robert-malhotra/go-gltf/internal/binary"
)

// Encoder converts Go values to packed elements. It is the inverse of
// Decoder for the same format and type.
type Encoder struct {
	*codec
}

// NewEncoder creates an encoder for values of type t into elements of the
// given format.
func NewEncoder(e Encoding, s Shape, normalized bool, t reflect.Type) (*Encoder, error) {
	c, err := newCodec(e, s, normalized, t)
	if err != nil {
		return nil, err
	}
	return &Encoder{codec: c}, nil
}

// Encode writes src into the start of dst. Padding bytes inside the element
// are left untouched.
func (enc *Encoder) Encode(src reflect.Value, dst []byte) error {
	if err := binary.CheckRange(0, enc.ElementSize(), len(dst)); err != nil {
		return err
	}
	size := enc.enc.Size()

	if enc.dynamic {
		if src.Len() != len(enc.offsets) {
			return fmt.Errorf("%w: %d components for %s", ErrMismatch, src.Len(), enc.shape)
		}
		for i, off := range enc.offsets {
			enc.putFloat(dst[off:off+size], src.Index(i).Float())
		}
		return nil
	}

	for i, off := range enc.offsets {
		b := dst[off : off+size]
		v := enc.component(src, i)
		switch {
		case enc.rawFloat32(v):
			binary.EncodeUint(b, uint64(math.Float32bits(v.Interface().(float32))), size)
		case enc.leaf == reflect.Float32 || enc.leaf == reflect.Float64:
			enc.putFloat(b, v.Float())
		case enc.leaf == reflect.Int8 || enc.leaf == reflect.Int16:
			binary.EncodeUint(b, uint64(v.Int()), size)
		default:
			binary.EncodeUint(b, v.Uint(), size)
		}
	}
	return nil
}

// putFloat stores a floating point component, quantizing it for normalized
// integer encodings and rounding it to the nearest integer otherwise.
func (enc *Encoder) putFloat(b []byte, f float64) {
	size := enc.enc.Size()
	switch {
	case enc.enc == Float:
		binary.EncodeUint(b, uint64(math.Float32bits(float32(f))), size)
	case enc.normalized:
		binary.EncodeUint(b, uint64(enc.enc.Denormalize(f)), size)
	default:
		binary.EncodeUint(b, uint64(int64(math.Round(f))), size)
	}
}

// EncodeAs encodes one value of type T into dst.
func EncodeAs[T any](enc *Encoder, v T, dst []byte) error {
	return enc.Encode(reflect.ValueOf(v), dst)
}
