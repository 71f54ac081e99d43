package gltf

// Skin is a handle to a skin of a document.
type Skin struct {
	doc   *Document
	index int
}

func (s Skin) rec() *skinRecord {
	return &s.doc.skins[s.index]
}

// Index returns the skin's position in the document.
func (s Skin) Index() int {
	return s.index
}

// Name returns the optional user-defined name.
func (s Skin) Name() string {
	return s.rec().name
}

// Joints returns the node indices of the skin's joints.
func (s Skin) Joints() []int {
	return append([]int(nil), s.rec().joints...)
}

// Skeleton returns the node used as the skeleton root, if any.
func (s Skin) Skeleton() (int, bool) {
	n := s.rec().skeleton
	return n, n >= 0
}

// InverseBindMatrices returns the accessor holding one MAT4 per joint, or
// false when the matrices are implicitly identity.
func (s Skin) InverseBindMatrices() (Accessor, bool) {
	a := s.rec().ibm
	if a < 0 {
		return Accessor{}, false
	}
	return Accessor{doc: s.doc, index: a}, true
}

// Reader returns a reader of the skin's data over src. A nil src uses the
// document's own source.
func (s Skin) Reader(src BufferSource) SkinReader {
	return SkinReader{skin: s, src: src}
}

// SkinReader reads skin data from a buffer source.
type SkinReader struct {
	skin Skin
	src  BufferSource
}

// ReadInverseBindMatrices reads the inverse bind matrices, column major.
// It returns nil and no error for a skin without them.
func (r SkinReader) ReadInverseBindMatrices() (*Iter[[4][4]float32], error) {
	a, ok := r.skin.InverseBindMatrices()
	if !ok {
		return nil, nil
	}
	return Read[[4][4]float32](a, r.src)
}
