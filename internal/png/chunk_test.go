package png

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkTypeProperties(t *testing.T) {
	assert.False(t, chunkIHDR.IsAncillary())
	assert.False(t, chunkIDAT.IsAncillary())
	assert.False(t, chunkIEND.IsAncillary())

	gama := ChunkType('g'<<24 | 'A'<<16 | 'M'<<8 | 'A')
	assert.True(t, gama.IsAncillary())
	assert.False(t, gama.IsPrivate())
	assert.False(t, gama.IsReserved())
	assert.False(t, gama.IsSafeToCopy())

	text := ChunkType('t'<<24 | 'E'<<16 | 'X'<<8 | 't')
	assert.True(t, text.IsAncillary())
	assert.True(t, text.IsSafeToCopy())
}

func TestChunkTypeString(t *testing.T) {
	assert.Equal(t, "IHDR", chunkIHDR.String())
	assert.Equal(t, "IEND", chunkIEND.String())
}

func TestByteStreamerReads(t *testing.T) {
	bs := newByteStreamer([]byte{0x01, 0x02, 0x03, 0x04, 0x05})

	v, err := bs.readUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x01020304), v)

	b, err := bs.readByte()
	require.NoError(t, err)
	assert.Equal(t, byte(0x05), b)
	assert.True(t, bs.eof())

	_, err = bs.readByte()
	assert.ErrorIs(t, err, ErrPrematureEndOfFile)
	_, err = bs.readUint32()
	assert.ErrorIs(t, err, ErrPrematureEndOfFile)
}

func TestByteStreamerReadBytes(t *testing.T) {
	bs := newByteStreamer([]byte{1, 2, 3})

	b, err := bs.readBytes(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, b)

	_, err = bs.readBytes(2)
	assert.ErrorIs(t, err, ErrPrematureEndOfFile)
}

func TestReadChunkHeader(t *testing.T) {
	bs := newByteStreamer([]byte{0x00, 0x00, 0x00, 0x0d, 'I', 'H', 'D', 'R'})
	c, err := readChunkHeader(bs)
	require.NoError(t, err)
	assert.Equal(t, uint32(13), c.length)
	assert.Equal(t, chunkIHDR, c.typ)
}
