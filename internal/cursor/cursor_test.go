// go-nbtsniper
// SPDX-License-Identifier: LGPL-3.0-or-later

package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPrimitives(t *testing.T) {
	data := []byte{0x80, 0x7f, 0x80, 0x00, 0x00, 0x00, 0x01}
	c := New(data)

	b, err := c.ReadUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x80), b)

	i16, err := c.ReadInt16()
	require.NoError(t, err)
	assert.Equal(t, int16(0x7f80), i16)

	i32, err := c.ReadInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(1), i32)

	assert.True(t, c.AtEnd())
}

func TestReadInt8Signed(t *testing.T) {
	c := New([]byte{0xff})
	v, err := c.ReadInt8()
	require.NoError(t, err)
	assert.Equal(t, int8(-1), v)
}

func TestReadFloats(t *testing.T) {
	c := New([]byte{0x3f, 0x80, 0x00, 0x00})
	f, err := c.ReadFloat32()
	require.NoError(t, err)
	assert.InDelta(t, float32(1.0), f, 0)
}

func TestShortReadDoesNotAdvance(t *testing.T) {
	c := New([]byte{0x01, 0x02})
	_, err := c.ReadInt32()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShortRead)
	assert.Equal(t, 0, c.Pos())
}

func TestReadBytesRejectsNegativeLength(t *testing.T) {
	c := New([]byte{1, 2, 3, 4})
	_, err := c.ReadBytes(-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNegativeLength)
	assert.Equal(t, 0, c.Pos())
}

func TestReadBytesReturnsSliceIntoBuffer(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	c := New(data)
	b, err := c.ReadBytes(4)
	require.NoError(t, err)
	assert.Equal(t, data, b)
	assert.Equal(t, 4, c.Pos())
	assert.Equal(t, 0, c.Remaining())
}
