// go-nbtsniper
// SPDX-License-Identifier: LGPL-3.0-or-later

package nbt

import "fmt"

// TagKind is the closed set of NBT tag ids. The numeric values are
// fixed by the wire format; do not reorder them.
type TagKind uint8

const (
	KindEnd       TagKind = 0
	KindByte      TagKind = 1
	KindShort     TagKind = 2
	KindInt       TagKind = 3
	KindLong      TagKind = 4
	KindFloat     TagKind = 5
	KindDouble    TagKind = 6
	KindByteArray TagKind = 7
	KindString    TagKind = 8
	KindList      TagKind = 9
	KindCompound  TagKind = 10
	KindIntArray  TagKind = 11
	KindLongArray TagKind = 12
)

var tagKindNames = map[TagKind]string{
	KindEnd:       "End",
	KindByte:      "Byte",
	KindShort:     "Short",
	KindInt:       "Int",
	KindLong:      "Long",
	KindFloat:     "Float",
	KindDouble:    "Double",
	KindByteArray: "ByteArray",
	KindString:    "String",
	KindList:      "List",
	KindCompound:  "Compound",
	KindIntArray:  "IntArray",
	KindLongArray: "LongArray",
}

// String implements fmt.Stringer.
func (k TagKind) String() string {
	if name, ok := tagKindNames[k]; ok {
		return fmt.Sprintf("%s (0x%02x)", name, uint8(k))
	}
	return fmt.Sprintf("Unknown (0x%02x)", uint8(k))
}

// Valid reports whether k is one of the 13 wire-defined tag kinds.
func (k TagKind) Valid() bool {
	return k <= KindLongArray
}

// IsComposite reports whether k opens a body whose children are parsed
// by the driver rather than decoded as a single leaf payload.
func (k TagKind) IsComposite() bool {
	return k == KindList || k == KindCompound
}
