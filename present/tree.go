// go-nbtsniper
// SPDX-License-Identifier: LGPL-3.0-or-later

package present

import (
	"fmt"
	"strings"

	nbt "github.com/nbtsniper/go-nbtsniper"
)

// Tree renders doc as an indented, human-readable tree starting at
// its root tag, one line per tag with its kind and (for leaf kinds) a
// short rendering of its value.
func Tree(doc *nbt.Document) string {
	var b strings.Builder
	writeTag(&b, doc, 0, 0)
	return b.String()
}

func writeTag(b *strings.Builder, doc *nbt.Document, index, depth int) {
	tag, ok := doc.At(index)
	if !ok {
		return
	}

	b.WriteString(strings.Repeat("  ", depth))
	if tag.Name != "" {
		fmt.Fprintf(b, "%s: %s", tag.Name, tag.Kind())
	} else {
		fmt.Fprintf(b, "%s", tag.Kind())
	}
	if v := leafValue(tag); v != "" {
		fmt.Fprintf(b, " = %s", v)
	}
	b.WriteByte('\n')

	for _, child := range tag.Position.Children {
		writeTag(b, doc, child, depth+1)
	}
}

func leafValue(tag nbt.Tag) string {
	p := tag.Payload
	switch p.Kind {
	case nbt.KindByte:
		return fmt.Sprintf("%d", p.Byte)
	case nbt.KindShort:
		return fmt.Sprintf("%d", p.Short)
	case nbt.KindInt:
		return fmt.Sprintf("%d", p.Int)
	case nbt.KindLong:
		return fmt.Sprintf("%d", p.Long)
	case nbt.KindFloat:
		return fmt.Sprintf("%g", p.Float)
	case nbt.KindDouble:
		return fmt.Sprintf("%g", p.Double)
	case nbt.KindString:
		return fmt.Sprintf("%q", p.String)
	case nbt.KindByteArray:
		return fmt.Sprintf("[%d bytes]", len(p.ByteArray))
	case nbt.KindIntArray:
		return fmt.Sprintf("[%d ints]", len(p.IntArray))
	case nbt.KindLongArray:
		return fmt.Sprintf("[%d longs]", len(p.LongArray))
	case nbt.KindList:
		return fmt.Sprintf("%d x %s", p.List.Length, p.List.ElementKind)
	default:
		return ""
	}
}
