package png

import (
	"errors"

	"github.com/joshuapare/pngkit/internal/format"
)

// Frame-level sentinels, re-exported so callers never import internal/format.
var (
	// ErrSignatureMismatch indicates the buffer did not begin with the PNG
	// signature.
	ErrSignatureMismatch = format.ErrSignatureMismatch
	// ErrTruncated indicates a chunk frame was cut short or its declared
	// length overran the buffer.
	ErrTruncated = format.ErrTruncated
	// ErrChecksumMismatch indicates a frame's stored CRC did not match its
	// type and payload bytes.
	ErrChecksumMismatch = format.ErrChecksumMismatch
	// ErrTrailingBytes indicates leftover bytes after the last complete
	// frame that are too few to begin another one.
	ErrTrailingBytes = format.ErrTrailingBytes
)

var (
	// ErrInvalidTypeCode indicates a type code string was not exactly four
	// ASCII alphabetic characters.
	ErrInvalidTypeCode = errors.New("png: chunk type must be four alphabetic characters")
	// ErrTypeNotText indicates a type code's raw bytes have no textual
	// rendering.
	ErrTypeNotText = errors.New("png: chunk type is not textual")
	// ErrNotUTF8 indicates a chunk payload is not valid UTF-8.
	ErrNotUTF8 = errors.New("png: payload is not valid utf-8")
	// ErrChunkNotFound indicates no chunk with the requested type exists.
	ErrChunkNotFound = errors.New("png: chunk not found")
)
