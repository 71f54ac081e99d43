package gltf

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/robert-malhotra/go-gltf/internal/glb"
	"github.com/robert-malhotra/go-gltf/internal/metrics"
	"github.com/robert-malhotra/go-gltf/internal/source"
)

// Document is a parsed glTF document. It owns the records of every object;
// the handles it returns are an index into those records plus a pointer back
// to the document. A Document is immutable after Parse and safe for
// concurrent reads.
type Document struct {
	path  string
	asset assetJSON

	buffers   []bufferRecord
	views     []viewRecord
	accessors []accessorRecord
	cameras   []cameraJSON
	skins     []skinRecord
	samplers  []Sampler
	textures  []textureRecord

	source  BufferSource
	closers []func()
	closed  atomic.Bool

	logger  *zap.Logger
	metrics *metrics.Metrics
}

// Open reads a .gltf or .glb file. Relative buffer URIs resolve against the
// directory of path unless WithBaseDir says otherwise.
func Open(path string, opts ...Option) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}

	opts = append([]Option{WithBaseDir(filepath.Dir(path))}, opts...)
	doc, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	doc.path = path
	return doc, nil
}

// Parse decodes a glTF document from JSON or GLB bytes. The binary chunk of
// a GLB container, when present, is served as buffer 0. data must not be
// modified while the document is in use.
func Parse(data []byte, opts ...Option) (*Document, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	jsonData := data
	var bin []byte
	if glb.IsGLB(data) {
		f, err := glb.Read(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		jsonData, bin = f.JSON, f.BIN
	}

	var raw documentJSON
	if err := json.Unmarshal(jsonData, &raw); err != nil {
		return nil, fmt.Errorf("%w: decoding JSON: %w", ErrMalformed, err)
	}

	doc, err := newDocument(&raw)
	if err != nil {
		return nil, err
	}
	doc.logger = o.logger
	doc.metrics = o.metrics

	if err := doc.initSources(o, bin); err != nil {
		doc.Close()
		return nil, err
	}

	doc.logger.Debug("parsed document",
		zap.String("version", raw.Asset.Version),
		zap.Int("buffers", len(doc.buffers)),
		zap.Int("views", len(doc.views)),
		zap.Int("accessors", len(doc.accessors)),
		zap.Bool("glb", bin != nil))
	return doc, nil
}

// maxBufferLength returns the largest declared buffer length, rounded up to
// the 4-byte padding a binary chunk may carry.
func (d *Document) maxBufferLength() int {
	n := 0
	for _, b := range d.buffers {
		n = max(n, b.byteLength)
	}
	return (n + 3) &^ 3
}

// initSources builds the document's buffer source: caller supplied sources
// first, then the GLB chunk, data URIs and files under the base directory.
func (d *Document) initSources(o *options, bin []byte) error {
	builtin := source.Chain{}
	if bin != nil {
		builtin = append(builtin, source.NewGLB(bin))
	}
	builtin = append(builtin, source.NewDataURI(o.logger))

	if o.baseDir != "" {
		dir, err := source.NewDir(o.baseDir, o.logger, source.WithMaxDecoded(d.maxBufferLength()))
		if err != nil {
			return fmt.Errorf("creating buffer directory source: %w", err)
		}
		d.closers = append(d.closers, dir.Close)

		var files source.Source = dir
		if o.cacheBytes > 0 {
			cached, err := source.NewCached(dir, o.cacheBytes, o.metrics)
			if err != nil {
				return err
			}
			files = cached
		}
		builtin = append(builtin, files)
	}

	chain := make(chainSource, 0, len(o.sources)+1)
	chain = append(chain, o.sources...)
	d.source = append(chain, sourceAdapter{builtin})
	return nil
}

// Close releases the resources held by the document's built-in sources.
// Handles stay valid for metadata, but reads fail with ErrClosed.
func (d *Document) Close() error {
	if d.closed.Swap(true) {
		return nil
	}
	for _, c := range d.closers {
		c()
	}
	d.closers = nil
	return nil
}

// Path returns the file path for documents loaded with Open.
func (d *Document) Path() string {
	return d.path
}

// Version returns the asset version, normally "2.0".
func (d *Document) Version() string {
	return d.asset.Version
}

// Generator returns the tool that wrote the document, if recorded.
func (d *Document) Generator() string {
	return d.asset.Generator
}

// Source returns the document's buffer source.
func (d *Document) Source() BufferSource {
	return d.source
}

// Buffers returns every buffer in document order.
func (d *Document) Buffers() []Buffer {
	out := make([]Buffer, len(d.buffers))
	for i := range out {
		out[i] = Buffer{doc: d, index: i}
	}
	return out
}

// Buffer returns buffer i.
func (d *Document) Buffer(i int) (Buffer, error) {
	if i < 0 || i >= len(d.buffers) {
		return Buffer{}, fmt.Errorf("%w: buffer %d", ErrNotFound, i)
	}
	return Buffer{doc: d, index: i}, nil
}

// Views returns every buffer view in document order.
func (d *Document) Views() []View {
	out := make([]View, len(d.views))
	for i := range out {
		out[i] = View{doc: d, index: i}
	}
	return out
}

// View returns buffer view i.
func (d *Document) View(i int) (View, error) {
	if i < 0 || i >= len(d.views) {
		return View{}, fmt.Errorf("%w: buffer view %d", ErrNotFound, i)
	}
	return View{doc: d, index: i}, nil
}

// Accessors returns every accessor in document order.
func (d *Document) Accessors() []Accessor {
	out := make([]Accessor, len(d.accessors))
	for i := range out {
		out[i] = Accessor{doc: d, index: i}
	}
	return out
}

// Accessor returns accessor i.
func (d *Document) Accessor(i int) (Accessor, error) {
	if i < 0 || i >= len(d.accessors) {
		return Accessor{}, fmt.Errorf("%w: accessor %d", ErrNotFound, i)
	}
	return Accessor{doc: d, index: i}, nil
}

// Cameras returns every camera in document order.
func (d *Document) Cameras() []Camera {
	out := make([]Camera, len(d.cameras))
	for i := range out {
		out[i] = Camera{doc: d, index: i}
	}
	return out
}

// Skins returns every skin in document order.
func (d *Document) Skins() []Skin {
	out := make([]Skin, len(d.skins))
	for i := range out {
		out[i] = Skin{doc: d, index: i}
	}
	return out
}

// Skin returns skin i.
func (d *Document) Skin(i int) (Skin, error) {
	if i < 0 || i >= len(d.skins) {
		return Skin{}, fmt.Errorf("%w: skin %d", ErrNotFound, i)
	}
	return Skin{doc: d, index: i}, nil
}

// Samplers returns the samplers defined by the document. The default sampler
// is not among them.
func (d *Document) Samplers() []Sampler {
	out := make([]Sampler, len(d.samplers))
	copy(out, d.samplers)
	return out
}

// Textures returns every texture in document order.
func (d *Document) Textures() []Texture {
	out := make([]Texture, len(d.textures))
	for i := range out {
		out[i] = Texture{doc: d, index: i}
	}
	return out
}

// Texture returns texture i.
func (d *Document) Texture(i int) (Texture, error) {
	if i < 0 || i >= len(d.textures) {
		return Texture{}, fmt.Errorf("%w: texture %d", ErrNotFound, i)
	}
	return Texture{doc: d, index: i}, nil
}
