package dtype

// Element Conversion
//
// An element is Shape.Components() components, each Encoding.Size() bytes,
// stored little-endian at the offsets given by ComponentOffsets. Decoding
// writes the components into a Go value whose type describes the shape:
//
//	Go type          | Shape
//	-----------------|------------------------------
//	C                | Scalar
//	[N]C             | VecN (N = 2, 3, 4)
//	[N][N]C          | MatN, outer index is the column
//	[]float64        | any shape, components flattened
//
// C is float32, float64, uint8, int8, uint16, int16 or uint32.
//
// Float components read Float data directly, or integer data when the
// accessor is normalized. Integer components must match the encoding exactly
// and always receive the literal stored value. The []float64 form accepts
// every combination: normalized integers are scaled, other integers are
// widened.
//
// # Normalization
//
// Unsigned values are divided by the largest value of their width (255,
// 65535, 4294967295). Signed values are divided by the largest positive value
// (127, 32767) and clamped below at -1.0, so the most negative raw value
// decodes to exactly -1.0.

import (
	"fmt"
	"math"
	"reflect"

	"github.com/robert-malhotra/go-gltf/internal/binary"
)

// maxValue returns the normalization divisor of an integer encoding.
func (e Encoding) maxValue() float64 {
	switch e {
	case UnsignedByte:
		return math.MaxUint8
	case UnsignedShort:
		return math.MaxUint16
	case UnsignedInt:
		return math.MaxUint32
	case Byte:
		return math.MaxInt8
	case Short:
		return math.MaxInt16
	default:
		return 1
	}
}

// Uint decodes the raw unsigned bits of one component at the start of b.
func (e Encoding) Uint(b []byte) uint32 {
	return uint32(binary.DecodeUint(b, e.Size()))
}

// Int decodes the literal integer value of one component at the start of b,
// sign-extending signed encodings. Float components are truncated toward zero.
func (e Encoding) Int(b []byte) int64 {
	switch e {
	case Byte:
		return int64(int8(b[0]))
	case Short:
		return int64(int16(binary.DecodeUint(b, 2)))
	case Float:
		return int64(math.Float32frombits(e.Uint(b)))
	default:
		return int64(e.Uint(b))
	}
}

// Float decodes one component at the start of b as a floating point value.
// Integer encodings are scaled when normalized is set and widened otherwise.
func (e Encoding) Float(b []byte, normalized bool) float64 {
	if e == Float {
		return float64(math.Float32frombits(e.Uint(b)))
	}
	v := e.Int(b)
	if !normalized {
		return float64(v)
	}
	return e.Normalize(v)
}

// Normalize maps a raw integer component to its fixed-point value.
func (e Encoding) Normalize(raw int64) float64 {
	f := float64(raw) / e.maxValue()
	if e.Signed() && f < -1 {
		return -1
	}
	return f
}

// Denormalize maps a fixed-point value back to the nearest raw integer of the
// encoding, clamping to the representable range.
func (e Encoding) Denormalize(f float64) int64 {
	lo := 0.0
	if e.Signed() {
		lo = -e.maxValue()
	}
	v := math.Round(f * e.maxValue())
	return int64(math.Max(lo, math.Min(e.maxValue(), v)))
}

// leafKinds maps a Go component kind to the only integer encoding it can hold.
var leafKinds = map[reflect.Kind]Encoding{
	reflect.Uint8:  UnsignedByte,
	reflect.Int8:   Byte,
	reflect.Uint16: UnsignedShort,
	reflect.Int16:  Short,
	reflect.Uint32: UnsignedInt,
}

func isLeaf(k reflect.Kind) bool {
	if k == reflect.Float32 || k == reflect.Float64 {
		return true
	}
	_, ok := leafKinds[k]
	return ok
}

// ShapeOf reports the shape described by a Go element type and its component
// kind. dynamic is true for []float64, which fits any shape.
func ShapeOf(t reflect.Type) (s Shape, leaf reflect.Kind, dynamic bool, err error) {
	if t == nil {
		return 0, 0, false, fmt.Errorf("%w: nil type", ErrMismatch)
	}
	if t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Float64 {
		return 0, reflect.Float64, true, nil
	}
	if isLeaf(t.Kind()) {
		return Scalar, t.Kind(), false, nil
	}
	if t.Kind() != reflect.Array || t.Len() < 2 || t.Len() > 4 {
		return 0, 0, false, fmt.Errorf("%w: unsupported element type %v", ErrMismatch, t)
	}

	n := t.Len()
	inner := t.Elem()
	if isLeaf(inner.Kind()) {
		return Vec2 + Shape(n-2), inner.Kind(), false, nil
	}
	if inner.Kind() == reflect.Array && inner.Len() == n && isLeaf(inner.Elem().Kind()) {
		return Mat2 + Shape(n-2), inner.Elem().Kind(), false, nil
	}
	return 0, 0, false, fmt.Errorf("%w: unsupported element type %v", ErrMismatch, t)
}

// Compatible reports whether a component kind can hold values of the given
// encoding.
func Compatible(leaf reflect.Kind, e Encoding, normalized bool) bool {
	switch leaf {
	case reflect.Float32, reflect.Float64:
		return e == Float || normalized
	default:
		enc, ok := leafKinds[leaf]
		return ok && enc == e
	}
}

// codec holds what decoding and encoding share: the accessor's element
// format and the layout of the Go element type.
type codec struct {
	enc        Encoding
	shape      Shape
	normalized bool
	typ        reflect.Type
	leaf       reflect.Kind
	dynamic    bool
	offsets    []int
}

func newCodec(e Encoding, s Shape, normalized bool, t reflect.Type) (*codec, error) {
	if e.Size() == 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEncoding, uint16(e))
	}
	if s.Components() == 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnknownShape, uint8(s))
	}

	ts, leaf, dynamic, err := ShapeOf(t)
	if err != nil {
		return nil, err
	}
	if !dynamic {
		if ts != s {
			return nil, fmt.Errorf("%w: %v holds %s, accessor is %s", ErrMismatch, t, ts, s)
		}
		if !Compatible(leaf, e, normalized) {
			return nil, fmt.Errorf("%w: %v cannot hold %s components (normalized=%t)", ErrMismatch, t, e, normalized)
		}
	}

	return &codec{
		enc:        e,
		shape:      s,
		normalized: normalized,
		typ:        t,
		leaf:       leaf,
		dynamic:    dynamic,
		offsets:    ComponentOffsets(e, s),
	}, nil
}

// ElementSize returns the packed byte width of one element.
func (c *codec) ElementSize() int {
	return ElementSize(c.enc, c.shape)
}

// Type returns the Go element type.
func (c *codec) Type() reflect.Type {
	return c.typ
}

var float32Type = reflect.TypeFor[float32]()

// rawFloat32 reports whether component v holds Float data as a plain
// float32, in which case the bits are copied without widening. Widening
// through float64 would quiet signaling NaNs.
func (c *codec) rawFloat32(v reflect.Value) bool {
	return c.enc == Float && v.Type() == float32Type
}

// component returns the settable value for component i of v.
func (c *codec) component(v reflect.Value, i int) reflect.Value {
	switch {
	case c.shape == Scalar:
		return v
	case c.shape.IsMatrix():
		dim := c.shape.Dim()
		return v.Index(i / dim).Index(i % dim)
	default:
		return v.Index(i)
	}
}

// Decoder converts packed elements to Go values.
type Decoder struct {
	*codec
}

// NewDecoder creates a decoder for elements of the given format into values
// of type t. It fails with ErrMismatch when t cannot represent the format.
func NewDecoder(e Encoding, s Shape, normalized bool, t reflect.Type) (*Decoder, error) {
	c, err := newCodec(e, s, normalized, t)
	if err != nil {
		return nil, err
	}
	return &Decoder{codec: c}, nil
}

// Decode converts the element at the start of elem into dst, which must be a
// settable value of the decoder's type.
func (d *Decoder) Decode(elem []byte, dst reflect.Value) error {
	if err := binary.CheckRange(0, d.ElementSize(), len(elem)); err != nil {
		return err
	}
	size := d.enc.Size()

	if d.dynamic {
		out := make([]float64, len(d.offsets))
		for i, off := range d.offsets {
			out[i] = d.enc.Float(elem[off:off+size], d.normalized)
		}
		dst.Set(reflect.ValueOf(out))
		return nil
	}

	for i, off := range d.offsets {
		b := elem[off : off+size]
		v := d.component(dst, i)
		switch {
		case d.rawFloat32(v):
			v.Set(reflect.ValueOf(math.Float32frombits(d.enc.Uint(b))))
		case d.leaf == reflect.Float32 || d.leaf == reflect.Float64:
			v.SetFloat(d.enc.Float(b, d.normalized))
		case d.leaf == reflect.Int8 || d.leaf == reflect.Int16:
			v.SetInt(d.enc.Int(b))
		default:
			v.SetUint(uint64(d.enc.Uint(b)))
		}
	}
	return nil
}

// DecodeAs decodes one element into a new value of type T.
func DecodeAs[T any](d *Decoder, elem []byte) (T, error) {
	var out T
	err := d.Decode(elem, reflect.ValueOf(&out).Elem())
	return out, err
}

// Zero returns the zero element of the decoder's type. For the dynamic
// []float64 form this is a slice of zero components, not nil.
func (d *Decoder) Zero() reflect.Value {
	v := reflect.New(d.typ).Elem()
	if d.dynamic {
		v.Set(reflect.ValueOf(make([]float64, len(d.offsets))))
	}
	return v
}
