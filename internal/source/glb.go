package source

// GLB serves the binary chunk of a GLB container. Only buffer 0 without a
// URI refers to the chunk.
type GLB struct {
	bin []byte
}

var _ Source = (*GLB)(nil)

// NewGLB creates a source for a container's BIN chunk. A nil chunk makes
// every buffer unavailable.
func NewGLB(bin []byte) *GLB {
	return &GLB{bin: bin}
}

// Load implements Source.
func (g *GLB) Load(ref Ref) ([]byte, bool) {
	if g.bin == nil || ref.Index != 0 || ref.URI != "" {
		return nil, false
	}
	return g.bin, true
}
