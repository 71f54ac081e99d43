package gltf

import "fmt"

// MagFilter is a magnification filter. Zero means unset.
type MagFilter int

const (
	MagNearest MagFilter = 9728
	MagLinear  MagFilter = 9729
)

// MinFilter is a minification filter. Zero means unset.
type MinFilter int

const (
	MinNearest              MinFilter = 9728
	MinLinear               MinFilter = 9729
	MinNearestMipmapNearest MinFilter = 9984
	MinLinearMipmapNearest  MinFilter = 9985
	MinNearestMipmapLinear  MinFilter = 9986
	MinLinearMipmapLinear   MinFilter = 9987
)

// WrappingMode is a texture coordinate wrapping mode.
type WrappingMode int

const (
	ClampToEdge    WrappingMode = 33071
	MirroredRepeat WrappingMode = 33648
	Repeat         WrappingMode = 10497
)

func (m WrappingMode) valid() bool {
	return m == ClampToEdge || m == MirroredRepeat || m == Repeat
}

// Sampler holds texture filtering and wrapping modes. It is a plain value.
type Sampler struct {
	index     int // -1 for the default sampler
	name      string
	magFilter MagFilter
	minFilter MinFilter
	wrapS     WrappingMode
	wrapT     WrappingMode
}

// DefaultSampler returns the sampler of textures that do not name one: no
// filters and repeat wrapping in both directions.
func DefaultSampler() Sampler {
	return Sampler{index: -1, wrapS: Repeat, wrapT: Repeat}
}

func newSampler(index int, s samplerJSON) (Sampler, error) {
	smp := Sampler{
		index:     index,
		name:      s.Name,
		magFilter: MagFilter(s.MagFilter),
		minFilter: MinFilter(s.MinFilter),
		wrapS:     WrappingMode(s.WrapS),
		wrapT:     WrappingMode(s.WrapT),
	}
	if smp.wrapS == 0 {
		smp.wrapS = Repeat
	}
	if smp.wrapT == 0 {
		smp.wrapT = Repeat
	}

	switch smp.magFilter {
	case 0, MagNearest, MagLinear:
	default:
		return Sampler{}, malformed("magFilter %d", s.MagFilter)
	}
	switch smp.minFilter {
	case 0, MinNearest, MinLinear, MinNearestMipmapNearest, MinLinearMipmapNearest,
		MinNearestMipmapLinear, MinLinearMipmapLinear:
	default:
		return Sampler{}, malformed("minFilter %d", s.MinFilter)
	}
	if !smp.wrapS.valid() || !smp.wrapT.valid() {
		return Sampler{}, malformed("wrap modes %d, %d", s.WrapS, s.WrapT)
	}
	return smp, nil
}

// Index returns the sampler's position in the document, or false for the
// default sampler.
func (s Sampler) Index() (int, bool) {
	if s.index < 0 {
		return 0, false
	}
	return s.index, true
}

// Name returns the optional user-defined name.
func (s Sampler) Name() string {
	return s.name
}

// MagFilter returns the magnification filter, if set.
func (s Sampler) MagFilter() (MagFilter, bool) {
	return s.magFilter, s.magFilter != 0
}

// MinFilter returns the minification filter, if set.
func (s Sampler) MinFilter() (MinFilter, bool) {
	return s.minFilter, s.minFilter != 0
}

// WrapS returns the s coordinate wrapping mode.
func (s Sampler) WrapS() WrappingMode {
	return s.wrapS
}

// WrapT returns the t coordinate wrapping mode.
func (s Sampler) WrapT() WrappingMode {
	return s.wrapT
}

func (s Sampler) String() string {
	if s.index < 0 {
		return "default sampler"
	}
	return fmt.Sprintf("sampler %d", s.index)
}

// Texture is a handle to a texture of a document.
type Texture struct {
	doc   *Document
	index int
}

func (t Texture) rec() *textureRecord {
	return &t.doc.textures[t.index]
}

// Index returns the texture's position in the document.
func (t Texture) Index() int {
	return t.index
}

// Name returns the optional user-defined name.
func (t Texture) Name() string {
	return t.rec().name
}

// Sampler returns the texture's sampler, or DefaultSampler() when it names
// none.
func (t Texture) Sampler() Sampler {
	if i := t.rec().sampler; i >= 0 {
		return t.doc.samplers[i]
	}
	return DefaultSampler()
}

// Source returns the index of the texture's image, if any.
func (t Texture) Source() (int, bool) {
	i := t.rec().source
	return i, i >= 0
}
