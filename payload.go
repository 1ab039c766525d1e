// go-nbtsniper
// SPDX-License-Identifier: LGPL-3.0-or-later

package nbt

// ListHeader carries the declared element kind and element count of a
// List tag. The elements themselves are sibling Tags in the
// Document's flat slice, not stored here.
type ListHeader struct {
	ElementKind TagKind
	Length      int32
}

// TagPayload carries the decoded value of a tag. Only the field(s)
// matching Kind are meaningful; the rest are zero. End carries
// nothing, Compound carries nothing beyond Kind (its children are
// sibling Tags in the Document), and List carries only its header.
//
// ByteArray is []int8, not []byte: NBT defines the array element type
// as a signed byte, and callers that need the wire bytes can convert
// element by element (byte(v)) or slice the Document's RawBytes at the
// tag's value span.
type TagPayload struct {
	Kind TagKind

	Byte   int8
	Short  int16
	Int    int32
	Long   int64
	Float  float32
	Double float64
	String string

	ByteArray []int8
	IntArray  []int32
	LongArray []int64

	List ListHeader
}
