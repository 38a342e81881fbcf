package png

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/pngkit/internal/format"
)

// File models a chunk container: the fixed eight-byte signature followed by
// an ordered, owned chunk sequence. Insertion order is meaningful and is
// preserved across append, remove, and serialize.
type File struct {
	chunks []Chunk
}

// NewFile returns an empty container. Serializing it yields just the
// signature.
func NewFile() *File {
	return &File{}
}

// Parse decodes an entire container from b. The operation is all-or-nothing:
// a bad signature, any frame error, or an unparseable remainder yields an
// error and no partial File. Chunk payloads are copied out of b.
func Parse(b []byte) (*File, error) {
	if err := format.CheckSignature(b); err != nil {
		return nil, err
	}

	f := &File{}
	rest := b[format.SignatureSize:]
	for len(rest) > 0 {
		if len(rest) < format.FrameOverhead {
			return nil, fmt.Errorf("container: %d bytes after last chunk: %w", len(rest), ErrTrailingBytes)
		}
		fr, n, err := format.DecodeFrame(rest)
		if err != nil {
			return nil, err
		}
		f.chunks = append(f.chunks, Chunk{typ: TypeCode(fr.Type), data: bytes.Clone(fr.Payload)})
		rest = rest[n:]
	}
	return f, nil
}

// Chunks returns the chunk sequence in container order. The slice is shared
// with the File; callers must not mutate it.
func (f *File) Chunks() []Chunk {
	return f.chunks
}

// AppendChunk adds c to the end of the chunk sequence.
func (f *File) AppendChunk(c Chunk) {
	f.chunks = append(f.chunks, c)
}

// ChunkByType returns the first chunk whose type equals typ.
func (f *File) ChunkByType(typ TypeCode) (Chunk, bool) {
	for _, c := range f.chunks {
		if c.typ == typ {
			return c, true
		}
	}
	return Chunk{}, false
}

// RemoveChunk removes and returns the first chunk whose type matches
// typeText, preserving the relative order of the remaining chunks. A type
// string that does not parse propagates ErrInvalidTypeCode; an absent type
// wraps ErrChunkNotFound and leaves the sequence untouched.
func (f *File) RemoveChunk(typeText string) (Chunk, error) {
	typ, err := ParseTypeCode(typeText)
	if err != nil {
		return Chunk{}, err
	}
	for i, c := range f.chunks {
		if c.typ == typ {
			f.chunks = append(f.chunks[:i], f.chunks[i+1:]...)
			return c, nil
		}
	}
	return Chunk{}, fmt.Errorf("container: no %q chunk: %w", typeText, ErrChunkNotFound)
}

// Serialize emits the signature followed by every chunk's wire frame in
// container order.
func (f *File) Serialize() []byte {
	size := format.SignatureSize
	for _, c := range f.chunks {
		size += format.FrameOverhead + len(c.data)
	}
	out := make([]byte, 0, size)
	out = append(out, format.Signature...)
	for _, c := range f.chunks {
		out = c.AppendFrame(out)
	}
	return out
}
