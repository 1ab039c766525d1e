// go-nbtsniper
// SPDX-License-Identifier: LGPL-3.0-or-later

package nbt

import "github.com/nbtsniper/go-nbtsniper/internal/cursor"

// frameKind distinguishes the two ways a tag can open nested state:
// a Compound, whose body is a run of named tags terminated by an End
// tag, or a List, whose body is a fixed count of unnamed elements.
type frameKind int

const (
	frameCompound frameKind = iota
	frameList
)

// frame is one entry in the parse driver's open-context stack. Each
// push corresponds to a +1 depth_delta, each pop to a -1 (when closing
// a Compound leaves its enclosing List fully consumed, the List's frame
// is popped on the very next step, and the two pops together make the
// -2 case).
type frame struct {
	kind     frameKind
	tagIndex int
	depth    int

	// list-specific fields; zero value for frameCompound.
	elementKind TagKind
	length      int32
	consumed    int32
}

// Parse decodes a complete in-memory NBT buffer into a Document. It
// makes a single forward pass over data with an iterative state
// machine — no recursion — and returns as soon as the root Compound's
// closing End tag is consumed; trailing bytes after that point are
// ignored.
func Parse(data []byte, opts ...ParseOption) (*Document, error) {
	if len(data) == 0 {
		return nil, newParseError(0, ErrEmptyInput)
	}

	cfg := defaultParseConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	cur := cursor.New(data)
	doc := &Document{raw: data}

	rootStart := cur.Pos()
	rootKind, err := readTagID(cur)
	if err != nil {
		return nil, newParseError(rootStart, err)
	}
	if rootKind != KindCompound {
		return nil, newParseError(rootStart, ErrInvalidRoot)
	}
	idEnd := cur.Pos() - 1

	nameStart := cur.Pos()
	rootName, err := readLengthPrefixedString(cur, cfg)
	if err != nil {
		return nil, newParseError(nameStart, err)
	}
	nameEnd := cur.Pos() - 1

	pos := newPosition()
	pos.ByteStartAll = rootStart
	pos.ByteStartID, pos.ByteEndID = rootStart, idEnd
	pos.ByteStartName, pos.ByteEndName = nameStart, nameEnd
	pos.ByteEndAll = nameEnd
	pos.Index = 0
	pos.Depth = 0
	pos.Parent = absent
	doc.tags = append(doc.tags, Tag{Name: rootName, Payload: TagPayload{Kind: KindCompound}, Position: pos})

	frames := []frame{{kind: frameCompound, tagIndex: 0, depth: 1}}
	debugf(cfg, "root compound %q at offset %d", rootName, rootStart)

	for len(frames) > 0 {
		top := frames[len(frames)-1]
		emitted := len(doc.tags)

		switch top.kind {
		case frameCompound:
			frames, err = stepCompound(doc, cur, cfg, frames, top)
		case frameList:
			frames, err = stepList(doc, cur, cfg, frames, top)
		}
		if err != nil {
			return nil, newParseError(cur.Pos(), err)
		}
		if len(doc.tags) > emitted {
			t := doc.tags[emitted]
			debugf(cfg, "tag %d: %s %q at offset %d, depth %d, parent %d",
				emitted, t.Kind(), t.Name, t.Position.ByteStartAll, t.Position.Depth, t.Position.Parent)
		}
	}

	return doc, nil
}

// stepCompound reads one named tag (or the End tag that closes the
// compound) from the current position and returns the updated frame
// stack.
func stepCompound(doc *Document, cur *cursor.Cursor, cfg parseConfig, frames []frame, top frame) ([]frame, error) {
	idStart := cur.Pos()
	kind, err := readTagID(cur)
	if err != nil {
		return frames, err
	}
	idEnd := cur.Pos() - 1

	if kind == KindEnd {
		idx := len(doc.tags)
		pos := newPosition()
		pos.ByteStartAll, pos.ByteEndAll, pos.ByteEndAllWithChildren = idStart, idEnd, idEnd
		pos.ByteStartID, pos.ByteEndID = idStart, idEnd
		pos.Index, pos.Depth, pos.Parent = idx, top.depth, top.tagIndex
		doc.tags = append(doc.tags, Tag{Payload: TagPayload{Kind: KindEnd}, Position: pos})
		attachChild(doc, top.tagIndex, idx)
		return closeFrame(doc, cur, frames), nil
	}

	nameStart := cur.Pos()
	name, err := readLengthPrefixedString(cur, cfg)
	if err != nil {
		return frames, err
	}
	nameEnd := cur.Pos() - 1
	idx := len(doc.tags)

	switch kind {
	case KindCompound:
		pos := newPosition()
		pos.ByteStartAll = idStart
		pos.ByteStartID, pos.ByteEndID = idStart, idEnd
		pos.ByteStartName, pos.ByteEndName = nameStart, nameEnd
		pos.ByteEndAll = nameEnd
		pos.Index, pos.Depth, pos.Parent = idx, top.depth, top.tagIndex
		doc.tags = append(doc.tags, Tag{Name: name, Payload: TagPayload{Kind: KindCompound}, Position: pos})
		attachChild(doc, top.tagIndex, idx)
		frames = append(frames, frame{kind: frameCompound, tagIndex: idx, depth: top.depth + 1})

	case KindList:
		valueStart := cur.Pos()
		header, err := readListHeader(cur, cfg)
		if err != nil {
			return frames, err
		}
		valueEnd := cur.Pos() - 1
		pos := newPosition()
		pos.ByteStartAll = idStart
		pos.ByteStartID, pos.ByteEndID = idStart, idEnd
		pos.ByteStartName, pos.ByteEndName = nameStart, nameEnd
		pos.ByteStartValue, pos.ByteEndValue = valueStart, valueEnd
		pos.ByteEndAll = valueEnd
		pos.ByteEndAllWithChildren = valueEnd
		pos.Index, pos.Depth, pos.Parent = idx, top.depth, top.tagIndex
		doc.tags = append(doc.tags, Tag{Name: name, Payload: TagPayload{Kind: KindList, List: header}, Position: pos})
		attachChild(doc, top.tagIndex, idx)
		if header.Length > 0 {
			frames = append(frames, frame{
				kind: frameList, tagIndex: idx, depth: top.depth + 1,
				elementKind: header.ElementKind, length: header.Length,
			})
		}

	default:
		valueStart := cur.Pos()
		payload, err := readLeafPayload(cur, kind, cfg)
		if err != nil {
			return frames, err
		}
		valueEnd := cur.Pos() - 1
		pos := newPosition()
		pos.ByteStartAll = idStart
		pos.ByteStartID, pos.ByteEndID = idStart, idEnd
		pos.ByteStartName, pos.ByteEndName = nameStart, nameEnd
		pos.ByteStartValue, pos.ByteEndValue = valueStart, valueEnd
		pos.ByteEndAll = valueEnd
		pos.ByteEndAllWithChildren = valueEnd
		pos.Index, pos.Depth, pos.Parent = idx, top.depth, top.tagIndex
		doc.tags = append(doc.tags, Tag{Name: name, Payload: payload, Position: pos})
		attachChild(doc, top.tagIndex, idx)
	}

	return frames, nil
}

// stepList advances the innermost open List frame by one element, or
// closes it once its declared length has been consumed.
func stepList(doc *Document, cur *cursor.Cursor, cfg parseConfig, frames []frame, top frame) ([]frame, error) {
	if top.consumed >= top.length {
		return closeFrame(doc, cur, frames), nil
	}

	switch top.elementKind {
	case KindCompound:
		elemStart := cur.Pos()
		idx := len(doc.tags)
		pos := newPosition()
		pos.ByteStartAll = elemStart
		pos.ByteEndAll = elemStart - 1
		pos.Index, pos.Depth, pos.Parent = idx, top.depth, top.tagIndex
		doc.tags = append(doc.tags, Tag{Payload: TagPayload{Kind: KindCompound}, Position: pos})
		attachChild(doc, top.tagIndex, idx)
		frames = append(frames, frame{kind: frameCompound, tagIndex: idx, depth: top.depth + 1})
		return frames, nil

	case KindList:
		elemStart := cur.Pos()
		header, err := readListHeader(cur, cfg)
		if err != nil {
			return frames, err
		}
		valueEnd := cur.Pos() - 1
		idx := len(doc.tags)
		pos := newPosition()
		pos.ByteStartAll = elemStart
		pos.ByteStartValue, pos.ByteEndValue = elemStart, valueEnd
		pos.ByteEndAll = valueEnd
		pos.ByteEndAllWithChildren = valueEnd
		pos.Index, pos.Depth, pos.Parent = idx, top.depth, top.tagIndex
		doc.tags = append(doc.tags, Tag{Payload: TagPayload{Kind: KindList, List: header}, Position: pos})
		attachChild(doc, top.tagIndex, idx)
		if header.Length > 0 {
			frames = append(frames, frame{
				kind: frameList, tagIndex: idx, depth: top.depth + 1,
				elementKind: header.ElementKind, length: header.Length,
			})
		} else {
			// A zero-length nested list closes with nothing to pop
			// later, so credit the outer list's count immediately.
			frames[len(frames)-1].consumed++
		}
		return frames, nil

	default:
		elemStart := cur.Pos()
		payload, err := readLeafPayload(cur, top.elementKind, cfg)
		if err != nil {
			return frames, err
		}
		valueEnd := cur.Pos() - 1
		idx := len(doc.tags)
		pos := newPosition()
		pos.ByteStartAll = elemStart
		pos.ByteStartValue, pos.ByteEndValue = elemStart, valueEnd
		pos.ByteEndAll = valueEnd
		pos.ByteEndAllWithChildren = valueEnd
		pos.Index, pos.Depth, pos.Parent = idx, top.depth, top.tagIndex
		doc.tags = append(doc.tags, Tag{Payload: payload, Position: pos})
		attachChild(doc, top.tagIndex, idx)
		frames[len(frames)-1].consumed++
		return frames, nil
	}
}

// closeFrame pops the innermost frame, backfills the byte range of
// the tag it belongs to now that its children are known in full, and
// credits an enclosing List one element if that's what the closed
// frame was an element of.
func closeFrame(doc *Document, cur *cursor.Cursor, frames []frame) []frame {
	closed := frames[len(frames)-1]
	frames = frames[:len(frames)-1]

	endOffset := cur.Pos() - 1
	doc.tags[closed.tagIndex].Position.ByteEndAllWithChildren = endOffset

	if len(frames) > 0 && frames[len(frames)-1].kind == frameList {
		frames[len(frames)-1].consumed++
	}
	return frames
}

func attachChild(doc *Document, parent, child int) {
	doc.tags[parent].Position.Children = append(doc.tags[parent].Position.Children, child)
}
