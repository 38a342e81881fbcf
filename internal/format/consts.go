// Package format houses the low-level codec for the PNG chunk container
// format. The goal is to keep the framing logic focused, allocation-free
// where possible, and independent from the public API so higher-level
// packages can orchestrate the data in a more ergonomic form.
package format

var (
	// Signature is the eight-byte magic at the start of every PNG datastream.
	// Layout:
	//   0x00  0x89 'P' 'N' 'G' '\r' '\n' 0x1A '\n'
	Signature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}
)

const (
	// SignatureSize is the size of the datastream signature in bytes.
	SignatureSize = 8

	// LengthFieldSize, TypeSize, and CRCFieldSize are the sizes of the three
	// framing fields surrounding a chunk payload. Length and CRC are stored
	// big-endian.
	LengthFieldSize = 4
	TypeSize        = 4
	CRCFieldSize    = 4

	// FrameOverhead is the number of framing bytes around a chunk payload.
	// A zero-payload chunk occupies exactly this many bytes.
	FrameOverhead = LengthFieldSize + TypeSize + CRCFieldSize

	// Frame field offsets relative to the start of a chunk frame.
	FrameLengthOffset  = 0
	FrameTypeOffset    = LengthFieldSize
	FramePayloadOffset = LengthFieldSize + TypeSize

	// MaxPayloadSize is the largest payload length the format permits. The
	// length field is 32 bits but the container spec caps it at 2^31-1 so
	// signed 32-bit readers cannot misinterpret it.
	MaxPayloadSize = 1<<31 - 1
)
