// go-nbtsniper
// SPDX-License-Identifier: LGPL-3.0-or-later

package cursor

import "errors"

// ErrShortRead is returned whenever a read would run past the end of
// the underlying buffer. Callers wrap this with the byte offset at
// which the read was attempted.
var ErrShortRead = errors.New("cursor: short read")

// ErrNegativeLength is returned when a read is asked for a negative
// number of bytes (ReadBytes with n < 0).
var ErrNegativeLength = errors.New("cursor: negative length")
