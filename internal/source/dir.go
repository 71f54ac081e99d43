package source

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"
)

// ErrUnsafePath is returned for a buffer URI that leaves the base directory.
var ErrUnsafePath = errors.New("buffer URI escapes base directory")

// ZstdSuffix marks external buffers stored zstd-compressed.
const ZstdSuffix = ".zst"

// DefaultMaxDecoded caps the decompressed size of one external buffer.
const DefaultMaxDecoded = 1 << 30

// minDecoderMemory is the smallest memory limit handed to the zstd decoder.
// Frames reserve at least a 1 KiB window, so tighter limits are enforced on
// the decoded length instead.
const minDecoderMemory = 1 << 20

// DirOption configures a Dir.
type DirOption func(*Dir)

// WithMaxDecoded caps the decompressed size of one buffer at n bytes.
// Larger payloads are unavailable.
func WithMaxDecoded(n int) DirOption {
	return func(d *Dir) {
		if n > 0 {
			d.maxDecoded = n
		}
	}
}

// Dir serves external buffers stored as files relative to a base directory,
// the directory of the .gltf file that references them. Files ending in
// ZstdSuffix are decompressed, up to a size limit.
type Dir struct {
	base       string
	logger     *zap.Logger
	decoder    *zstd.Decoder
	maxDecoded int
}

var _ Source = (*Dir)(nil)

// NewDir creates a directory source. A nil logger disables logging.
func NewDir(base string, logger *zap.Logger, opts ...DirOption) (*Dir, error) {
	base, err := filepath.Abs(base)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	d := &Dir{
		base:       base,
		logger:     logger,
		maxDecoded: DefaultMaxDecoded,
	}
	for _, opt := range opts {
		opt(d)
	}

	// DecodeAll on a decoder without a reader is safe for concurrent use.
	d.decoder, err = zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(0),
		zstd.WithDecoderMaxMemory(uint64(max(d.maxDecoded, minDecoderMemory))))
	if err != nil {
		return nil, fmt.Errorf("creating zstd decoder: %w", err)
	}
	return d, nil
}

// Path returns the file path for a relative buffer URI.
func (d *Dir) Path(uri string) (string, error) {
	rel, err := url.PathUnescape(uri)
	if err != nil {
		return "", err
	}
	rel = filepath.FromSlash(rel)
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%w: %q", ErrUnsafePath, uri)
	}
	return filepath.Join(d.base, rel), nil
}

// Read loads the file behind a buffer URI.
func (d *Dir) Read(uri string) ([]byte, error) {
	path, err := d.Path(uri)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ZstdSuffix) {
		data, err = d.decoder.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("decompressing %s: %w", filepath.Base(path), err)
		}
		if len(data) > d.maxDecoded {
			return nil, fmt.Errorf("decompressing %s: %d bytes exceeds limit %d", filepath.Base(path), len(data), d.maxDecoded)
		}
	}
	return data, nil
}

// Load implements Source. Buffers without a URI and data: URIs are left to
// other sources.
func (d *Dir) Load(ref Ref) ([]byte, bool) {
	if ref.URI == "" || IsDataURI(ref.URI) {
		return nil, false
	}
	data, err := d.Read(ref.URI)
	if err != nil {
		d.logger.Warn("loading external buffer",
			zap.Int("buffer", ref.Index),
			zap.String("uri", ref.URI),
			zap.Error(err))
		return nil, false
	}
	d.logger.Debug("loaded external buffer",
		zap.Int("buffer", ref.Index),
		zap.String("uri", ref.URI),
		zap.Int("bytes", len(data)))
	return data, true
}

// Close releases the decompressor.
func (d *Dir) Close() {
	d.decoder.Close()
}
