// go-nbtsniper
// SPDX-License-Identifier: LGPL-3.0-or-later

package nbt

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentByNameAndChildren(t *testing.T) {
	data := newFixture().
		header(KindCompound, "").
		header(KindInt, "a").i32(1).
		header(KindInt, "a").i32(2).
		end().
		bytes()

	doc, err := Parse(data)
	require.NoError(t, err)

	indices := doc.ByName("a")
	require.Len(t, indices, 2)
	assert.Equal(t, int32(1), doc.Tags()[indices[0]].Payload.Int)
	assert.Equal(t, int32(2), doc.Tags()[indices[1]].Payload.Int)

	assert.Equal(t, indices, doc.Children(0)[:2])

	last, ok := doc.NameIndex("a")
	require.True(t, ok)
	assert.Equal(t, indices[1], last)
	assert.Equal(t, int32(2), doc.Tags()[last].Payload.Int)

	_, ok = doc.NameIndex("missing")
	assert.False(t, ok)
}

func TestDocumentToJSON(t *testing.T) {
	data := newFixture().
		header(KindCompound, "").
		header(KindInt, "a").i32(1).
		header(KindList, "nums").listHeader(KindLong, 2).i64(1).i64(2).
		end().
		bytes()

	doc, err := Parse(data)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, doc.ToJSON(&buf))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, len(doc.Tags()))

	// Every tag round-trips as its own entry, full Position included,
	// rather than collapsing into a value tree.
	a := decoded[1]
	assert.Equal(t, "a", a["name"])
	assert.Equal(t, "Int", a["kind"])
	assert.InDelta(t, 1, a["value"].(float64), 0)
	aPos, ok := a["position"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, aPos, "byte_start_all")
	assert.Contains(t, aPos, "byte_start_value")

	list := decoded[2]
	assert.Equal(t, "nums", list["name"])
	assert.Equal(t, "List", list["kind"])
	listValue, ok := list["value"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Long", listValue["element_kind"])
	assert.InDelta(t, 2, listValue["length"].(float64), 0)
	assert.Equal(t, []any{float64(3), float64(4)}, list["children"])

	endTag := decoded[len(decoded)-1]
	assert.Equal(t, "End", endTag["kind"])
	assert.NotContains(t, endTag, "name")
}
