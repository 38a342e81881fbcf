package format

import "errors"

var (
	// ErrSignatureMismatch indicates the buffer did not begin with the
	// datastream signature.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a
	// complete chunk frame.
	ErrTruncated = errors.New("format: truncated chunk frame")
	// ErrChecksumMismatch indicates a frame's stored CRC did not match the
	// CRC computed over its type and payload bytes.
	ErrChecksumMismatch = errors.New("format: crc mismatch")
	// ErrTrailingBytes indicates leftover bytes after the last complete
	// frame that are too few to begin another one.
	ErrTrailingBytes = errors.New("format: trailing bytes after last chunk")
)
