// Package alloc lays out regions inside a buffer being written.
//
// A glTF buffer written by this module holds several buffer views back to
// back. Each view must start on a 4-byte boundary so that float and integer
// components stay aligned, and views must not overlap.
//
// # Allocator
//
// The [Allocator] type is append-only:
//
//   - Each allocation is placed at the current end, padded up to the
//     allocator's alignment.
//   - Allocations are recorded with an optional tag for debugging and
//     checked by Validate.
//
// # Usage
//
//	a := alloc.New(4)
//	off, _ := a.Alloc(12, "positions") // 0
//	off, _ = a.Alloc(6, "indices")     // 12
//	off, _ = a.Alloc(8, "uvs")         // 20, after 2 bytes of padding
package alloc
