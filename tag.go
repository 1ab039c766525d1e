// go-nbtsniper
// SPDX-License-Identifier: LGPL-3.0-or-later

package nbt

// Tag is one entry in a Document's flat, pre-order tag list. Name is
// empty for list elements and for End tags, neither of which carries
// a name field on the wire.
type Tag struct {
	Name     string
	Payload  TagPayload
	Position Position
}

// Kind is a convenience accessor for Payload.Kind.
func (t Tag) Kind() TagKind {
	return t.Payload.Kind
}
