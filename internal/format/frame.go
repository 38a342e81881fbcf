package format

import (
	"bytes"
	"fmt"
	"hash/crc32"

	"github.com/joshuapare/pngkit/internal/buf"
)

// Frame is a decoded chunk frame.
//
// Frame layout (big-endian):
//
//	Offset  Size  Description
//	0x00    4     Payload length N. Framing fields are not counted.
//	0x04    4     Chunk type code.
//	0x08    N     Payload.
//	0x08+N  4     CRC-32/ISO-HDLC over type and payload.
type Frame struct {
	Type    [TypeSize]byte
	Payload []byte // Aliases the source buffer; callers copy when retaining.
}

// Checksum computes the frame CRC over the type code followed by the
// payload. crc32.IEEE is the ISO-HDLC polynomial the container mandates.
func Checksum(typ [TypeSize]byte, payload []byte) uint32 {
	crc := crc32.Update(0, crc32.IEEETable, typ[:])
	return crc32.Update(crc, crc32.IEEETable, payload)
}

// DecodeFrame decodes the chunk frame at the start of b and returns it
// together with the number of bytes consumed. The payload slice aliases b.
func DecodeFrame(b []byte) (Frame, int, error) {
	if len(b) < FrameOverhead {
		return Frame{}, 0, fmt.Errorf("chunk frame: %d bytes, need at least %d: %w", len(b), FrameOverhead, ErrTruncated)
	}
	declared := buf.U32BE(b[FrameLengthOffset:])
	if declared > MaxPayloadSize {
		return Frame{}, 0, fmt.Errorf("chunk frame: declared length %d exceeds %d: %w", declared, MaxPayloadSize, ErrTruncated)
	}
	total, ok := buf.AddOverflowSafe(FrameOverhead, int(declared))
	if !ok || !buf.Has(b, 0, total) {
		return Frame{}, 0, fmt.Errorf("chunk frame: declared length %d overruns buffer of %d bytes: %w", declared, len(b), ErrTruncated)
	}

	var typ [TypeSize]byte
	copy(typ[:], b[FrameTypeOffset:FramePayloadOffset])
	payload := b[FramePayloadOffset : FramePayloadOffset+int(declared)]

	stored := buf.U32BE(b[FramePayloadOffset+int(declared):])
	if computed := Checksum(typ, payload); computed != stored {
		return Frame{}, 0, fmt.Errorf("chunk %q: stored crc %08x, computed %08x: %w", typ[:], stored, computed, ErrChecksumMismatch)
	}

	return Frame{Type: typ, Payload: payload}, total, nil
}

// AppendFrame appends the encoded frame for typ and payload to dst. The
// length and CRC fields are recomputed from the actual payload, never
// carried over from a previous decode.
func AppendFrame(dst []byte, typ [TypeSize]byte, payload []byte) []byte {
	dst = buf.AppendU32BE(dst, uint32(len(payload)))
	dst = append(dst, typ[:]...)
	dst = append(dst, payload...)
	return buf.AppendU32BE(dst, Checksum(typ, payload))
}

// CheckSignature verifies that b begins with the datastream signature.
func CheckSignature(b []byte) error {
	if len(b) < SignatureSize || !bytes.Equal(b[:SignatureSize], Signature) {
		return fmt.Errorf("signature: % x: %w", head(b, SignatureSize), ErrSignatureMismatch)
	}
	return nil
}

func head(b []byte, n int) []byte {
	if len(b) < n {
		return b
	}
	return b[:n]
}
