package gltf

import (
	"fmt"
	"math"
	"strings"

	"github.com/robert-malhotra/go-gltf/internal/dtype"
)

// Records are the validated, immutable form of the wire structures.

type bufferRecord struct {
	name       string
	uri        string
	byteLength int
}

type viewRecord struct {
	name       string
	buffer     int
	byteOffset int
	byteLength int
	byteStride int
}

type accessorRecord struct {
	name       string
	view       int // -1 without a buffer view
	byteOffset int
	enc        dtype.Encoding
	shape      dtype.Shape
	normalized bool
	count      int
	min, max   []float64
	sparse     *sparseRecord
}

type sparseRecord struct {
	count         int
	indicesView   int
	indicesOffset int
	indexType     IndexType
	valuesView    int
	valuesOffset  int
}

type skinRecord struct {
	name     string
	ibm      int // -1 without inverse bind matrices
	skeleton int // -1 without a skeleton root
	joints   []int
}

type textureRecord struct {
	name    string
	sampler int // -1 for the default sampler
	source  int // -1 without an image
}

// Limits on byteStride from the glTF schema.
const (
	minByteStride = 4
	maxByteStride = 252
)

// Limit on every element and sparse count. Counts are unsigned 32-bit
// values on the wire.
const maxCount int64 = math.MaxUint32

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}

// checkStride accepts zero (tightly packed) or a multiple of 4 within the
// schema limits.
func checkStride(stride int) error {
	if stride == 0 {
		return nil
	}
	if stride < minByteStride || stride > maxByteStride || stride%4 != 0 {
		return malformed("byteStride %d is not a multiple of 4 in [%d, %d]", stride, minByteStride, maxByteStride)
	}
	return nil
}

// newDocument validates raw and builds the document records. Every index
// between records is checked here, so handle methods never fail on a
// dangling reference.
func newDocument(raw *documentJSON) (*Document, error) {
	if v := raw.Asset.Version; v != "" && !strings.HasPrefix(v, "2.") {
		return nil, malformed("unsupported asset version %q", v)
	}

	d := &Document{asset: raw.Asset}

	for i, b := range raw.Buffers {
		if b.ByteLength < 1 {
			return nil, malformed("buffer %d: byteLength %d", i, b.ByteLength)
		}
		d.buffers = append(d.buffers, bufferRecord{
			name:       b.Name,
			uri:        b.URI,
			byteLength: b.ByteLength,
		})
	}

	for i, v := range raw.BufferViews {
		if v.Buffer < 0 || v.Buffer >= len(d.buffers) {
			return nil, malformed("buffer view %d: buffer %d does not exist", i, v.Buffer)
		}
		if v.ByteOffset < 0 || v.ByteLength < 1 {
			return nil, malformed("buffer view %d: byteOffset %d, byteLength %d", i, v.ByteOffset, v.ByteLength)
		}
		if end := int64(v.ByteOffset) + int64(v.ByteLength); end > int64(d.buffers[v.Buffer].byteLength) {
			return nil, malformed("buffer view %d: ends at %d past buffer %d length %d",
				i, end, v.Buffer, d.buffers[v.Buffer].byteLength)
		}
		if err := checkStride(v.ByteStride); err != nil {
			return nil, fmt.Errorf("buffer view %d: %w", i, err)
		}
		d.views = append(d.views, viewRecord{
			name:       v.Name,
			buffer:     v.Buffer,
			byteOffset: v.ByteOffset,
			byteLength: v.ByteLength,
			byteStride: v.ByteStride,
		})
	}

	for i := range raw.Accessors {
		rec, err := d.accessorRecord(&raw.Accessors[i])
		if err != nil {
			return nil, fmt.Errorf("accessor %d: %w", i, err)
		}
		d.accessors = append(d.accessors, rec)
	}

	for i, c := range raw.Cameras {
		switch {
		case c.Type == cameraPerspective && c.Perspective != nil:
		case c.Type == cameraOrthographic && c.Orthographic != nil:
		default:
			return nil, malformed("camera %d: type %q without matching projection", i, c.Type)
		}
		d.cameras = append(d.cameras, c)
	}

	for i, s := range raw.Skins {
		rec := skinRecord{name: s.Name, ibm: -1, skeleton: -1, joints: s.Joints}
		if s.InverseBindMatrices != nil {
			a := *s.InverseBindMatrices
			if a < 0 || a >= len(d.accessors) {
				return nil, malformed("skin %d: inverseBindMatrices accessor %d does not exist", i, a)
			}
			rec.ibm = a
		}
		if s.Skeleton != nil {
			rec.skeleton = *s.Skeleton
		}
		d.skins = append(d.skins, rec)
	}

	for i, s := range raw.Samplers {
		smp, err := newSampler(i, s)
		if err != nil {
			return nil, fmt.Errorf("sampler %d: %w", i, err)
		}
		d.samplers = append(d.samplers, smp)
	}

	for i, t := range raw.Textures {
		rec := textureRecord{name: t.Name, sampler: -1, source: -1}
		if t.Sampler != nil {
			if *t.Sampler < 0 || *t.Sampler >= len(d.samplers) {
				return nil, malformed("texture %d: sampler %d does not exist", i, *t.Sampler)
			}
			rec.sampler = *t.Sampler
		}
		if t.Source != nil {
			rec.source = *t.Source
		}
		d.textures = append(d.textures, rec)
	}

	return d, nil
}

func (d *Document) accessorRecord(a *accessorJSON) (accessorRecord, error) {
	enc, err := dtype.ParseEncoding(a.ComponentType)
	if err != nil {
		return accessorRecord{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	shape, err := dtype.ParseShape(a.Type)
	if err != nil {
		return accessorRecord{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if a.Count < 0 || int64(a.Count) > maxCount || a.ByteOffset < 0 {
		return accessorRecord{}, malformed("count %d, byteOffset %d", a.Count, a.ByteOffset)
	}
	if n := shape.Components(); (len(a.Min) != 0 && len(a.Min) != n) || (len(a.Max) != 0 && len(a.Max) != n) {
		return accessorRecord{}, malformed("min/max need %d components for %s", n, shape)
	}

	rec := accessorRecord{
		name:       a.Name,
		view:       -1,
		byteOffset: a.ByteOffset,
		enc:        enc,
		shape:      shape,
		normalized: a.Normalized,
		count:      a.Count,
		min:        a.Min,
		max:        a.Max,
	}
	if a.BufferView != nil {
		if err := d.checkView(*a.BufferView); err != nil {
			return accessorRecord{}, err
		}
		rec.view = *a.BufferView
	}

	if s := a.Sparse; s != nil {
		if s.Count < 1 || int64(s.Count) > maxCount {
			return accessorRecord{}, malformed("sparse count %d", s.Count)
		}
		it, err := ParseIndexType(s.Indices.ComponentType)
		if err != nil {
			return accessorRecord{}, err
		}
		if err := d.checkView(s.Indices.BufferView); err != nil {
			return accessorRecord{}, fmt.Errorf("sparse indices: %w", err)
		}
		if err := d.checkView(s.Values.BufferView); err != nil {
			return accessorRecord{}, fmt.Errorf("sparse values: %w", err)
		}
		if s.Indices.ByteOffset < 0 || s.Values.ByteOffset < 0 {
			return accessorRecord{}, malformed("negative sparse byteOffset")
		}
		rec.sparse = &sparseRecord{
			count:         s.Count,
			indicesView:   s.Indices.BufferView,
			indicesOffset: s.Indices.ByteOffset,
			indexType:     it,
			valuesView:    s.Values.BufferView,
			valuesOffset:  s.Values.ByteOffset,
		}
	}
	return rec, nil
}

func (d *Document) checkView(i int) error {
	if i < 0 || i >= len(d.views) {
		return malformed("buffer view %d does not exist", i)
	}
	return nil
}
