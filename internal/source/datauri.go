package source

import (
	"encoding/base64"
	"errors"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// ErrInvalidDataURI is returned for a data: URI that cannot be decoded.
var ErrInvalidDataURI = errors.New("invalid data URI")

// IsDataURI reports whether uri is an embedded data: URI.
func IsDataURI(uri string) bool {
	return strings.HasPrefix(uri, "data:")
}

// DecodeDataURI returns the payload of a data: URI. Base64 payloads are
// decoded; others are percent-unescaped.
func DecodeDataURI(uri string) ([]byte, error) {
	if !IsDataURI(uri) {
		return nil, ErrInvalidDataURI
	}
	header, payload, ok := strings.Cut(uri[len("data:"):], ",")
	if !ok {
		return nil, ErrInvalidDataURI
	}

	if strings.HasSuffix(header, ";base64") {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, errors.Join(ErrInvalidDataURI, err)
		}
		return data, nil
	}

	s, err := url.PathUnescape(payload)
	if err != nil {
		return nil, errors.Join(ErrInvalidDataURI, err)
	}
	return []byte(s), nil
}

// DataURI serves buffers embedded in the document as data: URIs.
type DataURI struct {
	logger *zap.Logger
}

var _ Source = (*DataURI)(nil)

// NewDataURI creates a data URI source. A nil logger disables logging.
func NewDataURI(logger *zap.Logger) *DataURI {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DataURI{logger: logger}
}

// Load implements Source. Buffers whose URI is not a data: URI are left to
// other sources.
func (d *DataURI) Load(ref Ref) ([]byte, bool) {
	if !IsDataURI(ref.URI) {
		return nil, false
	}
	data, err := DecodeDataURI(ref.URI)
	if err != nil {
		d.logger.Warn("decoding embedded buffer",
			zap.Int("buffer", ref.Index),
			zap.Error(err))
		return nil, false
	}
	return data, true
}
