// Package layout locates accessor elements inside buffer views.
//
// A buffer view is a window (offset, length, optional stride) into a buffer.
// [Resolve] cuts the view out of the buffer bytes supplied by the caller,
// failing when the buffer is shorter than the view claims. The elements of an
// accessor are then found through a [Layout]:
//
//   - [Strided]: elements inside a resolved view, stride bytes apart. When the
//     view has no stride the elements are tightly packed and the stride is
//     the padded element size.
//
//   - [Zero]: an accessor with no view. Every element is zero bytes, the
//     baseline that sparse accessors patch.
//
// Each element is bounds-checked individually against the resolved view, so
// a truncated view fails only on the elements it cannot hold.
//
// # Writing Data
//
// [Writer] packs elements with a stride, producing the bytes that [Strided]
// reads back.
package layout
