// go-nbtsniper
// SPDX-License-Identifier: LGPL-3.0-or-later

// Package cursor provides a forward-only big-endian byte reader over an
// in-memory buffer, the primitive layer the NBT parse driver is built on.
package cursor

// MaxArrayLength bounds the declared length of ByteArray, IntArray, and
// LongArray payloads. Declared lengths above this are rejected rather
// than trusted, since a corrupt or adversarial length prefix would
// otherwise drive an unbounded allocation.
const MaxArrayLength = 32767

// MaxListLength bounds the declared element count of a List header, for
// the same reason MaxArrayLength bounds array payloads.
const MaxListLength = 32767
