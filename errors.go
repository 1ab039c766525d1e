// go-nbtsniper
// SPDX-License-Identifier: LGPL-3.0-or-later

package nbt

import (
	"errors"
	"fmt"

	"github.com/nbtsniper/go-nbtsniper/internal/cursor"
)

var (
	// ErrEmptyInput is returned when Parse is called with a zero-length
	// buffer.
	ErrEmptyInput = errors.New("nbt: empty input")
	// ErrInvalidRoot is returned when the document's outermost tag is
	// not a Compound, or carries an End id where a real root was
	// expected.
	ErrInvalidRoot = errors.New("nbt: root tag must be a Compound")
	// ErrInvalidTagID is returned when a tag id byte falls outside the
	// 0..12 range the format defines.
	ErrInvalidTagID = errors.New("nbt: invalid tag id")
	// ErrArrayTooLong is returned when a ByteArray, IntArray, or
	// LongArray declares a length beyond the configured maximum.
	ErrArrayTooLong = errors.New("nbt: array length exceeds maximum")
	// ErrListTooLong is returned when a List header declares an
	// element count beyond the configured maximum.
	ErrListTooLong = errors.New("nbt: list length exceeds maximum")
	// ErrNegativeLength is returned when a string, array, or list
	// length prefix is negative.
	ErrNegativeLength = errors.New("nbt: negative length")
	// ErrUnexpectedEOF is returned when the buffer ends mid-tag, the
	// Io category of failure: the bytes that are present are well
	// formed, there just aren't enough of them.
	ErrUnexpectedEOF = errors.New("nbt: unexpected end of buffer")
	// ErrInvalidUTF8 is returned when WithStrictUTF8 is enabled and a
	// name or String payload is not valid (standard) UTF-8.
	ErrInvalidUTF8 = errors.New("nbt: invalid UTF-8")
)

// ParseError wraps a parse failure with the byte offset at which it
// was detected, so callers can locate the problem in the source
// buffer without re-deriving cursor state.
type ParseError struct {
	// Offset is the cursor position in the input buffer when the
	// failure was detected: the start of a read that ran short, or,
	// for a value that was read but rejected (an invalid tag id, a
	// negative or oversized length), the byte just after that value.
	Offset int
	// Err is the underlying sentinel error, always one of the Err*
	// values in this package (or a wrapped *cursor* error for
	// short-read conditions).
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("nbt: parse error at offset %d: %v", e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(offset int, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, cursor.ErrShortRead) {
		err = fmt.Errorf("%w: %w", ErrUnexpectedEOF, err)
	}
	return &ParseError{Offset: offset, Err: err}
}
