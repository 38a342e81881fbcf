package png

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pngkit/internal/format"
)

func mustChunk(t *testing.T, typeText, payload string) Chunk {
	t.Helper()
	tc, err := ParseTypeCode(typeText)
	require.NoError(t, err)
	return NewChunk(tc, []byte(payload))
}

func testFile(t *testing.T) *File {
	t.Helper()
	f := NewFile()
	f.AppendChunk(mustChunk(t, "FrSt", "I am the first chunk"))
	f.AppendChunk(mustChunk(t, "miDl", "I am another chunk"))
	f.AppendChunk(mustChunk(t, "LASt", "I am the last chunk"))
	return f
}

func chunkTypes(f *File) []string {
	var out []string
	for _, c := range f.Chunks() {
		out = append(out, c.Type().String())
	}
	return out
}

func TestNewFileSerialize(t *testing.T) {
	assert.Equal(t, format.Signature, NewFile().Serialize())
}

func TestParseRoundTrip(t *testing.T) {
	raw := testFile(t).Serialize()

	f, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"FrSt", "miDl", "LASt"}, chunkTypes(f))
	assert.Equal(t, raw, f.Serialize())
}

func TestParseBadSignature(t *testing.T) {
	raw := testFile(t).Serialize()
	raw[0] = 'X'

	_, err := Parse(raw)
	assert.ErrorIs(t, err, ErrSignatureMismatch)

	_, err = Parse([]byte{0x89, 'P', 'N'})
	assert.ErrorIs(t, err, ErrSignatureMismatch)
}

func TestParseIsAtomic(t *testing.T) {
	raw := testFile(t).Serialize()

	// Corrupt the last chunk's CRC; the whole parse must fail even though
	// two chunks were already well-formed.
	raw[len(raw)-1]++
	f, err := Parse(raw)
	assert.ErrorIs(t, err, ErrChecksumMismatch)
	assert.Nil(t, f)
}

func TestParseTruncatedMidFrame(t *testing.T) {
	raw := testFile(t).Serialize()

	_, err := Parse(raw[:len(raw)-4])
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestParseTrailingBytes(t *testing.T) {
	raw := testFile(t).Serialize()
	raw = append(raw, 0xDE, 0xAD)

	_, err := Parse(raw)
	assert.ErrorIs(t, err, ErrTrailingBytes)
}

func TestAppendPreservesOrder(t *testing.T) {
	f := NewFile()
	f.AppendChunk(mustChunk(t, "onEa", "1"))
	f.AppendChunk(mustChunk(t, "twOb", "2"))
	f.AppendChunk(mustChunk(t, "thRe", "3"))

	back, err := Parse(f.Serialize())
	require.NoError(t, err)
	assert.Equal(t, []string{"onEa", "twOb", "thRe"}, chunkTypes(back))
}

func TestChunkByType(t *testing.T) {
	f := testFile(t)

	tc, err := ParseTypeCode("miDl")
	require.NoError(t, err)
	c, ok := f.ChunkByType(tc)
	require.True(t, ok)
	assert.Equal(t, []byte("I am another chunk"), c.Payload())

	absent, err := ParseTypeCode("noNe")
	require.NoError(t, err)
	_, ok = f.ChunkByType(absent)
	assert.False(t, ok)
}

func TestRemoveChunk(t *testing.T) {
	f := testFile(t)

	removed, err := f.RemoveChunk("miDl")
	require.NoError(t, err)
	assert.Equal(t, "miDl", removed.Type().String())
	assert.Equal(t, []string{"FrSt", "LASt"}, chunkTypes(f))
}

func TestRemoveChunkFirstMatchOnly(t *testing.T) {
	f := NewFile()
	f.AppendChunk(mustChunk(t, "duPe", "first"))
	f.AppendChunk(mustChunk(t, "miDl", "keep"))
	f.AppendChunk(mustChunk(t, "duPe", "second"))

	removed, err := f.RemoveChunk("duPe")
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), removed.Payload())
	assert.Equal(t, []string{"miDl", "duPe"}, chunkTypes(f))
}

func TestRemoveChunkAbsent(t *testing.T) {
	f := testFile(t)
	before := f.Serialize()

	_, err := f.RemoveChunk("noNe")
	assert.ErrorIs(t, err, ErrChunkNotFound)

	// The failed removal must not disturb the container.
	assert.Equal(t, before, f.Serialize())
}

func TestRemoveChunkBadTypeText(t *testing.T) {
	f := testFile(t)

	_, err := f.RemoveChunk("Ru1t")
	assert.ErrorIs(t, err, ErrInvalidTypeCode)

	_, err = f.RemoveChunk("toolong")
	assert.ErrorIs(t, err, ErrInvalidTypeCode)
}
