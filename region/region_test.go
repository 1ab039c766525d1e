// go-nbtsniper
// SPDX-License-Identifier: LGPL-3.0-or-later

package region

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// scheme 3: identity, registered directly here so region_test.go
	// can exercise ReadChunk without importing the uncompressed
	// subpackage (which would itself import this package, a cycle).
	RegisterCompressor(3, func(data []byte) ([]byte, error) {
		out := make([]byte, len(data))
		copy(out, data)
		return out, nil
	})
}

func buildRegionFile(chunks map[[2]int][]byte) []byte {
	buf := make([]byte, HeaderLength)
	body := make([]byte, 0)

	nextSector := int32(HeaderLength / sectorSize)
	for coord, payload := range chunks {
		x, z := coord[0], coord[1]
		framed := make([]byte, 0, 5+len(payload))
		length := int32(len(payload) + 1)
		framed = append(framed,
			byte(length>>24), byte(length>>16), byte(length>>8), byte(length),
			3, // uncompressed
		)
		framed = append(framed, payload...)
		for len(framed)%sectorSize != 0 {
			framed = append(framed, 0)
		}
		sectorCount := len(framed) / sectorSize

		idx := z*chunkGridDim + x
		buf[idx*4] = byte(nextSector >> 16)
		buf[idx*4+1] = byte(nextSector >> 8)
		buf[idx*4+2] = byte(nextSector)
		buf[idx*4+3] = byte(sectorCount)

		body = append(body, framed...)
		nextSector += int32(sectorCount)
	}

	return append(buf, body...)
}

func TestOpenRejectsShortFile(t *testing.T) {
	_, err := Open(make([]byte, 100))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHeaderLength)
}

func TestReadChunkRoundTrip(t *testing.T) {
	payload := []byte("fake nbt payload")
	data := buildRegionFile(map[[2]int][]byte{{1, 2}: payload})

	r, err := Open(data)
	require.NoError(t, err)

	desc, err := r.Descriptor(1, 2)
	require.NoError(t, err)
	assert.True(t, desc.Present())

	out, err := r.ReadChunk(1, 2)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(payload, out))

	empty, err := r.ReadChunk(0, 0)
	require.NoError(t, err)
	assert.Nil(t, empty)

	scheme, err := r.ChunkScheme(1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint8(3), scheme)

	emptyScheme, err := r.ChunkScheme(0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), emptyScheme)
}

func TestChunkCoordinateOutOfRange(t *testing.T) {
	data := buildRegionFile(nil)
	r, err := Open(data)
	require.NoError(t, err)

	_, err = r.Descriptor(32, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrChunkOutOfRange)
}

func TestUnsupportedCompressionScheme(t *testing.T) {
	buf := make([]byte, HeaderLength)
	framed := []byte{0, 0, 0, 2, 9, 0xff} // length=2, scheme=9 (unregistered)
	buf[0], buf[1], buf[2], buf[3] = 0, 0, byte(HeaderLength/sectorSize), 1
	data := append(buf, framed...)
	for len(data) < HeaderLength+sectorSize {
		data = append(data, 0)
	}

	r, err := Open(data)
	require.NoError(t, err)

	_, err = r.ReadChunk(0, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedCompression)
}
