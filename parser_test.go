// go-nbtsniper
// SPDX-License-Identifier: LGPL-3.0-or-later

package nbt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmptyInput(t *testing.T) {
	_, err := Parse(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyInput)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 0, pe.Offset)
}

func TestParseTruncatedBufferIsUnexpectedEOF(t *testing.T) {
	data := newFixture().header(KindCompound, "").header(KindInt, "a").i32(1).bytes()
	data = data[:len(data)-2] // cut the Int payload short

	_, err := Parse(data)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestParseRootMustBeCompound(t *testing.T) {
	data := newFixture().header(KindInt, "").i32(1).bytes()

	_, err := Parse(data)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRoot)
}

func TestParseEmptyCompound(t *testing.T) {
	data := newFixture().header(KindCompound, "").end().bytes()

	doc, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, doc.Tags(), 2)

	root := doc.Tags()[0]
	assert.Equal(t, KindCompound, root.Kind())
	assert.Equal(t, 0, root.Position.Depth)
	assert.False(t, root.Position.HasParent())
	assert.Equal(t, []int{1}, root.Position.Children)

	endTag := doc.Tags()[1]
	assert.Equal(t, KindEnd, endTag.Kind())
	assert.Equal(t, 1, endTag.Position.Depth)
	assert.Equal(t, 0, endTag.Position.Parent)
}

func TestParseScalarChild(t *testing.T) {
	data := newFixture().
		header(KindCompound, "").
		header(KindInt, "foo").i32(42).
		end().
		bytes()

	doc, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, doc.Tags(), 3)

	foo := doc.Tags()[1]
	assert.Equal(t, "foo", foo.Name)
	assert.Equal(t, KindInt, foo.Kind())
	assert.Equal(t, int32(42), foo.Payload.Int)
	assert.Equal(t, []int{1, 2}, doc.Tags()[0].Position.Children)
}

func TestParseListOfLong(t *testing.T) {
	data := newFixture().
		header(KindCompound, "").
		header(KindList, "nums").listHeader(KindLong, 3).
		i64(1).i64(2).i64(3).
		end().
		bytes()

	doc, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, doc.Tags(), 6)

	list := doc.Tags()[1]
	assert.Equal(t, KindList, list.Kind())
	assert.Equal(t, KindLong, list.Payload.List.ElementKind)
	assert.Equal(t, int32(3), list.Payload.List.Length)
	assert.Equal(t, []int{2, 3, 4}, list.Position.Children)

	for i, want := range []int64{1, 2, 3} {
		elem := doc.Tags()[2+i]
		assert.Equal(t, KindLong, elem.Kind())
		assert.Equal(t, want, elem.Payload.Long)
		assert.Equal(t, "", elem.Name)
		assert.False(t, elem.Position.HasName())
	}
}

func TestParseNegativeListLengthIsRejected(t *testing.T) {
	data := newFixture().
		header(KindCompound, "").
		header(KindList, "nums").listHeader(KindLong, -1).
		end().
		bytes()

	_, err := Parse(data)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNegativeLength)
}

func TestParseListOfCompound(t *testing.T) {
	data := newFixture().
		header(KindCompound, "").
		header(KindList, "items").listHeader(KindCompound, 2).
		header(KindInt, "a").i32(1).end().
		header(KindInt, "a").i32(2).end().
		end().
		bytes()

	doc, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, doc.Tags(), 9)

	list := doc.Tags()[1]
	require.Len(t, list.Position.Children, 2)

	first := doc.Tags()[list.Position.Children[0]]
	assert.Equal(t, KindCompound, first.Kind())
	require.Len(t, first.Position.Children, 2)
	firstA := doc.Tags()[first.Position.Children[0]]
	assert.Equal(t, int32(1), firstA.Payload.Int)

	second := doc.Tags()[list.Position.Children[1]]
	secondA := doc.Tags()[second.Position.Children[0]]
	assert.Equal(t, int32(2), secondA.Payload.Int)

	root := doc.Tags()[0]
	assert.Equal(t, []int{1, 8}, root.Position.Children)
}

func TestParseListOfList(t *testing.T) {
	data := newFixture().
		header(KindCompound, "").
		header(KindList, "outer").listHeader(KindList, 2).
		listHeader(KindInt, 2).i32(10).i32(20).
		listHeader(KindByte, 0).
		end().
		bytes()

	doc, err := Parse(data)
	require.NoError(t, err)

	outer := doc.Tags()[1]
	require.Len(t, outer.Position.Children, 2)

	inner1 := doc.Tags()[outer.Position.Children[0]]
	assert.Equal(t, KindList, inner1.Kind())
	require.Len(t, inner1.Position.Children, 2)
	assert.Equal(t, int32(10), doc.Tags()[inner1.Position.Children[0]].Payload.Int)
	assert.Equal(t, int32(20), doc.Tags()[inner1.Position.Children[1]].Payload.Int)

	inner2 := doc.Tags()[outer.Position.Children[1]]
	assert.Equal(t, KindList, inner2.Kind())
	assert.Empty(t, inner2.Position.Children)
}

func TestParseArrayTooLong(t *testing.T) {
	data := newFixture().
		header(KindCompound, "").
		header(KindByteArray, "big").i32(5).
		bytes()
	data = append(data, make([]byte, 5)...)
	data = append(data, byte(KindEnd))

	_, err := Parse(data, WithMaxArrayLength(2))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrArrayTooLong)
}

func TestParseByteArrayIsSigned(t *testing.T) {
	data := newFixture().
		header(KindCompound, "").
		header(KindByteArray, "b").i32(2).u8(0xff).u8(0x01).
		end().
		bytes()

	doc, err := Parse(data)
	require.NoError(t, err)

	arr := doc.Tags()[1]
	require.Equal(t, []int8{-1, 1}, arr.Payload.ByteArray)
}

func TestParseErrorCarriesOffset(t *testing.T) {
	data := newFixture().header(KindCompound, "").bytes()

	_, err := Parse(data)
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, len(data), pe.Offset)
}
