// Package gltf reads typed accessor data out of glTF 2.0 documents.
//
// A Document is loaded with Open or Parse. It owns the records of buffers,
// buffer views, accessors and the objects that refer to them; handles such
// as Accessor are small values holding an index into the document.
//
// Accessor data is decoded lazily by Read:
//
//	doc, err := gltf.Open("model.gltf")
//	if err != nil {
//		return err
//	}
//	defer doc.Close()
//
//	acc, err := doc.Accessor(0)
//	if err != nil {
//		return err
//	}
//	positions, err := gltf.Read[[3]float32](acc, nil)
//	if err != nil {
//		return err
//	}
//	for p, err := range positions.All() {
//		if err != nil {
//			return err
//		}
//		fmt.Println(p)
//	}
//
// Buffer bytes come from a BufferSource. Documents loaded with Open serve
// the GLB binary chunk, base64 data URIs and files next to the document
// (zstd-compressed files ending in ".zst" are decompressed). Callers that
// manage bytes themselves pass their own source to Read or WithBufferSource.
//
// # Errors
//
// A missing buffer is ErrUnavailable, which is distinct from data errors:
// ErrOutOfBounds for bytes past the end of the supplied data,
// ErrMalformedSparse for invalid sparse indices, and ErrTypeMismatch when
// the requested Go type does not fit the accessor.
package gltf
