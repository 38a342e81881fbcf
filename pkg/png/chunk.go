package png

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/pngkit/internal/format"
)

// Chunk pairs a type code with an opaque payload. Length and CRC are never
// stored; both derive from the held bytes on demand.
type Chunk struct {
	typ  TypeCode
	data []byte
}

// NewChunk builds a chunk from a type code and payload. The payload is not
// validated or copied; the chunk takes ownership of the slice.
func NewChunk(typ TypeCode, payload []byte) Chunk {
	return Chunk{typ: typ, data: payload}
}

// ParseChunk decodes a single chunk frame from the start of b. The frame is
// length || type || payload || crc with big-endian length and CRC fields;
// the payload is copied so the chunk does not alias b.
func ParseChunk(b []byte) (Chunk, error) {
	f, _, err := format.DecodeFrame(b)
	if err != nil {
		return Chunk{}, err
	}
	return Chunk{typ: TypeCode(f.Type), data: bytes.Clone(f.Payload)}, nil
}

// Type returns the chunk's type code.
func (c Chunk) Type() TypeCode {
	return c.typ
}

// Payload returns the chunk's payload bytes. Callers must not mutate the
// returned slice.
func (c Chunk) Payload() []byte {
	return c.data
}

// Length returns the payload byte count.
func (c Chunk) Length() uint32 {
	return uint32(len(c.data))
}

// Checksum computes the CRC-32/ISO-HDLC over the type and payload bytes.
func (c Chunk) Checksum() uint32 {
	return format.Checksum([4]byte(c.typ), c.data)
}

// Text renders the payload as UTF-8, wrapping ErrNotUTF8 when it is not.
func (c Chunk) Text() (string, error) {
	if !utf8.Valid(c.data) {
		return "", fmt.Errorf("chunk %s payload: %w", c.typ, ErrNotUTF8)
	}
	return string(c.data), nil
}

// TextLatin1 renders the payload as ISO 8859-1, the character set the
// container mandates for tEXt chunks. Every byte sequence decodes.
func (c Chunk) TextLatin1() (string, error) {
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(c.data)
	if err != nil {
		return "", fmt.Errorf("chunk %s payload: %w", c.typ, err)
	}
	return string(decoded), nil
}

// Serialize emits the chunk's full wire frame, recomputing the length and
// CRC fields from the held bytes.
func (c Chunk) Serialize() []byte {
	return c.AppendFrame(nil)
}

// AppendFrame appends the chunk's wire frame to dst.
func (c Chunk) AppendFrame(dst []byte) []byte {
	return format.AppendFrame(dst, [4]byte(c.typ), c.data)
}

// String returns a multi-line human summary of the chunk.
func (c Chunk) String() string {
	return fmt.Sprintf("Length: %d\nType: %s\nData: %d bytes\nCRC: %d\n",
		c.Length(), c.typ, len(c.data), c.Checksum())
}
