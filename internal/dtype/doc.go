// Package dtype provides component encodings, element shapes and the
// conversion between packed element bytes and Go values.
//
// # Formats
//
// An element format is an [Encoding] (one of the six wire componentType
// codes) and a [Shape] (SCALAR through MAT4). [ElementSize] gives the packed
// width of one element including matrix column padding, and
// [ComponentOffsets] gives where each component lives inside it.
//
//	Encoding        | Code | Size | Normalized divisor
//	----------------|------|------|-------------------
//	Byte            | 5120 | 1    | 127 (clamped at -1)
//	UnsignedByte    | 5121 | 1    | 255
//	Short           | 5122 | 2    | 32767 (clamped at -1)
//	UnsignedShort   | 5123 | 2    | 65535
//	UnsignedInt     | 5125 | 4    | 4294967295
//	Float           | 5126 | 4    | not scaled
//
// # Reading Data
//
// Use [NewDecoder] with the Go element type, then [Decoder.Decode] or
// [DecodeAs] per element:
//
//	dec, err := dtype.NewDecoder(dtype.Float, dtype.Vec3, false, reflect.TypeOf([3]float32{}))
//	v, err := dtype.DecodeAs[[3]float32](dec, elem)
//
// # Writing Data
//
// [NewEncoder] and [Encoder.Encode] perform the inverse conversion.
package dtype
