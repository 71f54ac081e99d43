package gltf

import (
	"errors"

	"github.com/robert-malhotra/go-gltf/internal/binary"
	"github.com/robert-malhotra/go-gltf/internal/dtype"
	"github.com/robert-malhotra/go-gltf/internal/sparse"
)

// Common errors
var (
	// ErrUnavailable means the buffer source has no bytes for a buffer the
	// read needs. It is not a data error.
	ErrUnavailable = errors.New("buffer data unavailable")

	// ErrOutOfBounds means a byte range reaches past the supplied data.
	ErrOutOfBounds = binary.ErrOutOfBounds

	// ErrMalformedSparse means sparse indices are not strictly increasing,
	// reach past the accessor count, or there are more of them than elements.
	ErrMalformedSparse = sparse.ErrMalformed

	// ErrTypeMismatch means the requested Go type cannot represent the
	// accessor's element type, component type or normalization.
	ErrTypeMismatch = dtype.ErrMismatch

	// ErrMalformed means the document itself is invalid.
	ErrMalformed = errors.New("malformed document")

	ErrNotFound = errors.New("object not found")
	ErrClosed   = errors.New("document is closed")
)
