// go-nbtsniper
// SPDX-License-Identifier: LGPL-3.0-or-later

package nbt

// Document is the result of a single Parse call: the complete set of
// tags found in one NBT buffer, flattened into pre-order and indexed
// by both position and name.
type Document struct {
	tags []Tag
	raw  []byte

	// nameIndex maps each non-empty tag name to every tag index
	// carrying that name, across the whole document. Built once, on
	// first use.
	nameIndex map[string][]int
}

// Tags returns the document's tags in pre-order (parent before
// children, children in wire order). The returned slice must not be
// mutated by callers.
func (d *Document) Tags() []Tag {
	return d.tags
}

// RawBytes returns the buffer the document was parsed from. The
// buffer is the same slice passed to Parse; mutating it after parsing
// invalidates any byte offsets recorded in the document's Positions.
func (d *Document) RawBytes() []byte {
	return d.raw
}

// Root returns the document's outermost tag, which Parse guarantees
// is a Compound.
func (d *Document) Root() Tag {
	return d.tags[0]
}

// At returns the tag at the given flat index and reports whether the
// index was in range.
func (d *Document) At(index int) (Tag, bool) {
	if index < 0 || index >= len(d.tags) {
		return Tag{}, false
	}
	return d.tags[index], true
}

// ByName returns every tag index carrying the given name, searched
// across the entire document (names are unique only within a single
// Compound's direct children, not document-wide). This is a superset
// of name_index() as the spec defines it; for the spec's exact
// last-occurrence contract, use NameIndex. Tags with an empty name
// (list elements, End tags, an unnamed root) are not indexed, so
// ByName("") returns nil.
func (d *Document) ByName(name string) []int {
	if d.nameIndex == nil {
		d.buildNameIndex()
	}
	return d.nameIndex[name]
}

// NameIndex returns the index of the last tag carrying the given
// name, and reports whether any tag does. It implements name_index()
// exactly as the spec defines it: one index per name, overwriting on
// collision rather than accumulating every occurrence. Empty names are
// not indexed (see ByName).
func (d *Document) NameIndex(name string) (int, bool) {
	indices := d.ByName(name)
	if len(indices) == 0 {
		return 0, false
	}
	return indices[len(indices)-1], true
}

func (d *Document) buildNameIndex() {
	d.nameIndex = make(map[string][]int, len(d.tags))
	for i, t := range d.tags {
		if t.Name == "" {
			continue
		}
		d.nameIndex[t.Name] = append(d.nameIndex[t.Name], i)
	}
}

// Children returns the tag indices directly nested under the tag at
// parent, in document order.
func (d *Document) Children(parent int) []int {
	tag, ok := d.At(parent)
	if !ok {
		return nil
	}
	return tag.Position.Children
}
