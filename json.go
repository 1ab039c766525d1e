// go-nbtsniper
// SPDX-License-Identifier: LGPL-3.0-or-later

package nbt

import (
	"encoding/json"
	"io"
)

// jsonPosition mirrors Position, replacing the absent sentinel with
// omitted fields so a reader can tell "no id span" from "id span
// starts at byte 0".
type jsonPosition struct {
	ByteStartAll           int  `json:"byte_start_all"`
	ByteEndAll             int  `json:"byte_end_all"`
	ByteEndAllWithChildren int  `json:"byte_end_all_with_children"`
	ByteStartID            *int `json:"byte_start_id,omitempty"`
	ByteEndID              *int `json:"byte_end_id,omitempty"`
	ByteStartName          *int `json:"byte_start_name,omitempty"`
	ByteEndName            *int `json:"byte_end_name,omitempty"`
	ByteStartValue         *int `json:"byte_start_value,omitempty"`
	ByteEndValue           *int `json:"byte_end_value,omitempty"`
}

// jsonTag is one entry of the flat array ToJSON emits: a tag's name,
// kind, value, and its full Position, so a reader can reconstruct the
// tree (via index/parent/children) or locate any tag's bytes in the
// original buffer without re-parsing.
type jsonTag struct {
	Index    int          `json:"index"`
	Name     string       `json:"name,omitempty"`
	Kind     string       `json:"kind"`
	KindID   uint8        `json:"kind_id"`
	Value    any          `json:"value,omitempty"`
	Depth    int          `json:"depth"`
	Parent   *int         `json:"parent,omitempty"`
	Children []int        `json:"children,omitempty"`
	Position jsonPosition `json:"position"`
}

// ToJSON renders the document as a flat array of tags, one object per
// entry in Tags(), each carrying its name, kind, value, and complete
// byte-range Position. Unlike a collapsed Compound/List value tree,
// this shape round-trips everything Position records — including the
// End tags that close a Compound — which is what makes it possible
// for an external tool to reconstruct the tree or jump straight to a
// tag's bytes in the source buffer.
func (d *Document) ToJSON(w io.Writer) error {
	tags := make([]jsonTag, len(d.tags))
	for i, tag := range d.tags {
		tags[i] = toJSONTag(i, tag)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tags)
}

func toJSONTag(index int, tag Tag) jsonTag {
	jt := jsonTag{
		Index:    index,
		Name:     tag.Name,
		Kind:     tagKindNames[tag.Kind()],
		KindID:   uint8(tag.Kind()),
		Value:    leafJSONValue(tag.Payload),
		Depth:    tag.Position.Depth,
		Children: tag.Position.Children,
		Position: toJSONPosition(tag.Position),
	}
	if tag.Position.HasParent() {
		parent := tag.Position.Parent
		jt.Parent = &parent
	}
	return jt
}

func toJSONPosition(p Position) jsonPosition {
	jp := jsonPosition{
		ByteStartAll:           p.ByteStartAll,
		ByteEndAll:             p.ByteEndAll,
		ByteEndAllWithChildren: p.ByteEndAllWithChildren,
	}
	if p.HasID() {
		jp.ByteStartID, jp.ByteEndID = &p.ByteStartID, &p.ByteEndID
	}
	if p.HasName() {
		jp.ByteStartName, jp.ByteEndName = &p.ByteStartName, &p.ByteEndName
	}
	if p.HasValue() {
		jp.ByteStartValue, jp.ByteEndValue = &p.ByteStartValue, &p.ByteEndValue
	}
	return jp
}

func leafJSONValue(p TagPayload) any {
	switch p.Kind {
	case KindByte:
		return p.Byte
	case KindShort:
		return p.Short
	case KindInt:
		return p.Int
	case KindLong:
		return p.Long
	case KindFloat:
		return p.Float
	case KindDouble:
		return p.Double
	case KindString:
		return p.String
	case KindByteArray:
		return p.ByteArray
	case KindIntArray:
		return p.IntArray
	case KindLongArray:
		return p.LongArray
	case KindList:
		return map[string]any{
			"element_kind": tagKindNames[p.List.ElementKind],
			"length":       p.List.Length,
		}
	default: // KindEnd, KindCompound carry no value of their own
		return nil
	}
}
