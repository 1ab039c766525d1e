// go-nbtsniper
// SPDX-License-Identifier: LGPL-3.0-or-later

package cursor

import (
	"fmt"
	"math"
)

// Cursor is a forward-only reader over an in-memory byte buffer. It
// never rewinds and never peeks: every Read* method advances the
// position by exactly the number of bytes it consumes, or leaves the
// position unchanged and returns an error.
//
// Cursor holds no heap allocation of its own beyond the struct; the
// backing buffer is owned by the caller and must outlive the Cursor
// (and, by extension, any document built from it) since leaf payloads
// may be returned as length-prefixed slices into it.
type Cursor struct {
	data []byte
	pos  int
}

// New wraps data in a Cursor starting at position 0.
func New(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the total length of the underlying buffer.
func (c *Cursor) Len() int {
	return len(c.data)
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// AtEnd reports whether the cursor has consumed the entire buffer.
func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.data)
}

func (c *Cursor) need(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: requested %d bytes at offset %d", ErrNegativeLength, n, c.pos)
	}
	if c.pos+n > len(c.data) {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrShortRead, n, c.pos, c.Remaining())
	}
	return nil
}

// ReadUint8 reads one unsigned byte.
func (c *Cursor) ReadUint8() (uint8, error) {
	if err := c.need(1); err != nil {
		return 0, err
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

// ReadInt8 reads one signed byte.
func (c *Cursor) ReadInt8() (int8, error) {
	b, err := c.ReadUint8()
	return int8(b), err
}

// ReadInt16 reads a signed 16-bit big-endian integer.
func (c *Cursor) ReadInt16() (int16, error) {
	if err := c.need(2); err != nil {
		return 0, err
	}
	v := int16(c.data[c.pos])<<8 | int16(c.data[c.pos+1])
	c.pos += 2
	return v, nil
}

// ReadInt32 reads a signed 32-bit big-endian integer.
func (c *Cursor) ReadInt32() (int32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}
	v := int32(c.data[c.pos])<<24 | int32(c.data[c.pos+1])<<16 |
		int32(c.data[c.pos+2])<<8 | int32(c.data[c.pos+3])
	c.pos += 4
	return v, nil
}

// ReadInt64 reads a signed 64-bit big-endian integer.
func (c *Cursor) ReadInt64() (int64, error) {
	if err := c.need(8); err != nil {
		return 0, err
	}
	v := int64(c.data[c.pos])<<56 | int64(c.data[c.pos+1])<<48 |
		int64(c.data[c.pos+2])<<40 | int64(c.data[c.pos+3])<<32 |
		int64(c.data[c.pos+4])<<24 | int64(c.data[c.pos+5])<<16 |
		int64(c.data[c.pos+6])<<8 | int64(c.data[c.pos+7])
	c.pos += 8
	return v, nil
}

// ReadFloat32 reads an IEEE-754 32-bit big-endian float.
func (c *Cursor) ReadFloat32() (float32, error) {
	bits, err := c.ReadInt32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(bits)), nil
}

// ReadFloat64 reads an IEEE-754 64-bit big-endian float.
func (c *Cursor) ReadFloat64() (float64, error) {
	bits, err := c.ReadInt64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(uint64(bits)), nil
}

// ReadBytes reads exactly n raw bytes and returns a slice into the
// underlying buffer (not a copy); callers that need to retain the
// slice past the life of the buffer must copy it themselves.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if err := c.need(n); err != nil {
		return nil, err
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}
