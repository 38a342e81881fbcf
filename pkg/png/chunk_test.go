package png

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secretMessage = "This is where your secret message will be!"

func secretChunk(t *testing.T) Chunk {
	t.Helper()
	tc, err := ParseTypeCode("RuSt")
	require.NoError(t, err)
	return NewChunk(tc, []byte(secretMessage))
}

func TestNewChunk(t *testing.T) {
	c := secretChunk(t)
	assert.Equal(t, uint32(42), c.Length())
	assert.Equal(t, uint32(2882656334), c.Checksum())
	assert.Equal(t, "RuSt", c.Type().String())
}

func TestParseChunk(t *testing.T) {
	frame := secretChunk(t).Serialize()

	c, err := ParseChunk(frame)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), c.Length())
	assert.Equal(t, "RuSt", c.Type().String())
	assert.Equal(t, []byte(secretMessage), c.Payload())
	assert.Equal(t, uint32(2882656334), c.Checksum())

	// Round-trip law: re-serializing a parsed chunk reproduces its source
	// frame byte for byte.
	assert.Equal(t, frame, c.Serialize())
}

func TestParseChunkBadCRC(t *testing.T) {
	frame := secretChunk(t).Serialize()
	frame[len(frame)-1]++

	_, err := ParseChunk(frame)
	assert.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestParseChunkTruncated(t *testing.T) {
	frame := secretChunk(t).Serialize()

	_, err := ParseChunk(frame[:11])
	assert.ErrorIs(t, err, ErrTruncated)

	_, err = ParseChunk(frame[:len(frame)-1])
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestChunkText(t *testing.T) {
	c := secretChunk(t)
	s, err := c.Text()
	require.NoError(t, err)
	assert.Equal(t, secretMessage, s)

	tc, err := ParseTypeCode("ruSt")
	require.NoError(t, err)
	raw := NewChunk(tc, []byte{0xFF, 0xFE})
	_, err = raw.Text()
	assert.ErrorIs(t, err, ErrNotUTF8)
}

func TestChunkTextLatin1(t *testing.T) {
	tc, err := ParseTypeCode("teXt")
	require.NoError(t, err)

	// 0xE9 is e-acute in ISO 8859-1 but not valid UTF-8 on its own.
	c := NewChunk(tc, []byte{'c', 'a', 'f', 0xE9})
	_, err = c.Text()
	assert.ErrorIs(t, err, ErrNotUTF8)

	s, err := c.TextLatin1()
	require.NoError(t, err)
	assert.Equal(t, "café", s)
}

func TestChunkString(t *testing.T) {
	got := secretChunk(t).String()
	assert.Contains(t, got, "Length: 42")
	assert.Contains(t, got, "Type: RuSt")
	assert.Contains(t, got, "Data: 42 bytes")
	assert.Contains(t, got, "CRC: 2882656334")
}

func TestChunkZeroPayload(t *testing.T) {
	tc, err := ParseTypeCode("teSt")
	require.NoError(t, err)
	c := NewChunk(tc, nil)

	assert.Equal(t, uint32(0), c.Length())
	frame := c.Serialize()
	assert.Len(t, frame, 12)

	back, err := ParseChunk(frame)
	require.NoError(t, err)
	assert.Equal(t, tc, back.Type())
	assert.Empty(t, back.Payload())
}
