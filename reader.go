// go-nbtsniper
// SPDX-License-Identifier: LGPL-3.0-or-later

package nbt

import (
	"fmt"
	"unicode/utf8"

	"github.com/nbtsniper/go-nbtsniper/internal/cursor"
)

// readTagID reads and validates a single tag id byte.
func readTagID(cur *cursor.Cursor) (TagKind, error) {
	b, err := cur.ReadUint8()
	if err != nil {
		return 0, err
	}
	kind := TagKind(b)
	if !kind.Valid() {
		return 0, fmt.Errorf("%w: 0x%02x", ErrInvalidTagID, b)
	}
	return kind, nil
}

// readLengthPrefixedString reads a two-byte big-endian length prefix
// followed by that many raw bytes, used for both tag names and
// String payloads. The bytes are copied verbatim into a string with
// no encoding validation, unless strictUTF8 is set, in which case they
// must be valid standard UTF-8 (see WithStrictUTF8).
func readLengthPrefixedString(cur *cursor.Cursor, cfg parseConfig) (string, error) {
	n, err := cur.ReadInt16()
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "", ErrNegativeLength
	}
	raw, err := cur.ReadBytes(int(n))
	if err != nil {
		return "", err
	}
	if cfg.strictUTF8 && !utf8.Valid(raw) {
		return "", ErrInvalidUTF8
	}
	buf := make([]byte, len(raw))
	copy(buf, raw)
	return string(buf), nil
}

// readListHeader reads a List payload's header: one tag-kind byte
// followed by a four-byte big-endian signed element count. A count
// of zero is accepted and means the list has no elements; a negative
// count is rejected with ErrNegativeLength.
func readListHeader(cur *cursor.Cursor, cfg parseConfig) (ListHeader, error) {
	elemByte, err := cur.ReadUint8()
	if err != nil {
		return ListHeader{}, err
	}
	elemKind := TagKind(elemByte)
	if !elemKind.Valid() {
		return ListHeader{}, fmt.Errorf("%w: 0x%02x", ErrInvalidTagID, elemByte)
	}
	length, err := cur.ReadInt32()
	if err != nil {
		return ListHeader{}, err
	}
	if length < 0 {
		return ListHeader{}, fmt.Errorf("%w: declared list length %d", ErrNegativeLength, length)
	}
	if length > 0 && cfg.maxListLength > 0 && int(length) > cfg.maxListLength {
		return ListHeader{}, fmt.Errorf("%w: declared %d, max %d", ErrListTooLong, length, cfg.maxListLength)
	}
	return ListHeader{ElementKind: elemKind, Length: length}, nil
}

func readArrayLength(cur *cursor.Cursor, cfg parseConfig) (int32, error) {
	n, err := cur.ReadInt32()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, ErrNegativeLength
	}
	if cfg.maxArrayLength > 0 && int(n) > cfg.maxArrayLength {
		return 0, fmt.Errorf("%w: declared %d, max %d", ErrArrayTooLong, n, cfg.maxArrayLength)
	}
	return n, nil
}

// readLeafPayload reads the payload for any non-composite tag kind
// (everything but List and Compound, which carry no single payload
// value of their own). kind must already be validated.
func readLeafPayload(cur *cursor.Cursor, kind TagKind, cfg parseConfig) (TagPayload, error) {
	payload := TagPayload{Kind: kind}
	var err error

	switch kind {
	case KindByte:
		payload.Byte, err = cur.ReadInt8()
	case KindShort:
		payload.Short, err = cur.ReadInt16()
	case KindInt:
		payload.Int, err = cur.ReadInt32()
	case KindLong:
		payload.Long, err = cur.ReadInt64()
	case KindFloat:
		payload.Float, err = cur.ReadFloat32()
	case KindDouble:
		payload.Double, err = cur.ReadFloat64()
	case KindString:
		payload.String, err = readLengthPrefixedString(cur, cfg)
	case KindByteArray:
		var n int32
		n, err = readArrayLength(cur, cfg)
		if err == nil {
			payload.ByteArray, err = readInt8Array(cur, int(n))
		}
	case KindIntArray:
		var n int32
		n, err = readArrayLength(cur, cfg)
		if err == nil {
			payload.IntArray, err = readInt32Array(cur, int(n))
		}
	case KindLongArray:
		var n int32
		n, err = readArrayLength(cur, cfg)
		if err == nil {
			payload.LongArray, err = readInt64Array(cur, int(n))
		}
	case KindEnd, KindList, KindCompound:
		// handled by the parse driver, never dispatched here
		return payload, fmt.Errorf("%w: %v is not a leaf kind", ErrInvalidTagID, kind)
	default:
		return payload, fmt.Errorf("%w: 0x%02x", ErrInvalidTagID, uint8(kind))
	}

	return payload, err
}

func readInt8Array(cur *cursor.Cursor, n int) ([]int8, error) {
	raw, err := cur.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	out := make([]int8, n)
	for i, b := range raw {
		out[i] = int8(b)
	}
	return out, nil
}

func readInt32Array(cur *cursor.Cursor, n int) ([]int32, error) {
	out := make([]int32, n)
	for i := range out {
		v, err := cur.ReadInt32()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func readInt64Array(cur *cursor.Cursor, n int) ([]int64, error) {
	out := make([]int64, n)
	for i := range out {
		v, err := cur.ReadInt64()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
