// go-nbtsniper
// SPDX-License-Identifier: LGPL-3.0-or-later

package nbt

// absent is the sentinel stored in a Position's optional offset
// fields when that span does not apply to the tag's kind (for
// example value spans on a Compound, which has no value of its own).
const absent = -1

// Position records the byte-range provenance of a single tag within
// the document's raw buffer, plus its place in the tree. All offsets
// are inclusive on both ends: a span [start, end] covers end-start+1
// bytes.
type Position struct {
	// ByteStartAll is the offset of the tag's first byte (its id byte
	// for a named tag, or the first payload byte for a list element).
	ByteStartAll int
	// ByteEndAll is the offset of the last byte belonging to the tag
	// itself, excluding any children (so a Compound's ByteEndAll
	// covers only its id+name, and a List's covers its id+name+header).
	ByteEndAll int
	// ByteEndAllWithChildren is the offset of the last byte belonging
	// to the tag and everything nested beneath it. For a leaf this
	// equals ByteEndAll.
	ByteEndAllWithChildren int

	// ByteStartID and ByteEndID bound the id byte. Absent for list
	// elements, which carry no id byte of their own.
	ByteStartID int
	ByteEndID   int
	// ByteStartName and ByteEndName bound the name string, length
	// prefix included. Absent for list elements and for End tags,
	// neither of which has a name field on the wire.
	ByteStartName int
	ByteEndName   int
	// ByteStartValue and ByteEndValue bound the leaf payload or, for
	// a List, its header (element kind byte + length). Absent for End
	// and for Compound.
	ByteStartValue int
	ByteEndValue   int

	// Index is this tag's position in the document's flat, pre-order
	// tag slice.
	Index int
	// Depth is the tag's nesting depth; the root tag is depth 0.
	Depth int
	// Parent is the Index of this tag's parent, or absent for the
	// root.
	Parent int
	// Children holds the Index of each direct child, in document
	// order.
	Children []int
}

// HasID reports whether ByteStartID/ByteEndID are meaningful.
func (p Position) HasID() bool { return p.ByteStartID != absent }

// HasName reports whether ByteStartName/ByteEndName are meaningful.
func (p Position) HasName() bool { return p.ByteStartName != absent }

// HasValue reports whether ByteStartValue/ByteEndValue are meaningful.
func (p Position) HasValue() bool { return p.ByteStartValue != absent }

// HasParent reports whether Parent refers to a real tag.
func (p Position) HasParent() bool { return p.Parent != absent }

func newPosition() Position {
	return Position{
		ByteStartID:    absent,
		ByteEndID:      absent,
		ByteStartName:  absent,
		ByteEndName:    absent,
		ByteStartValue: absent,
		ByteEndValue:   absent,
		Parent:         absent,
	}
}
