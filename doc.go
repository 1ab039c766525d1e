// go-nbtsniper
// SPDX-License-Identifier: LGPL-3.0-or-later

/*
Package nbt provides a pure Go reader for the NBT (Named Binary Tag)
binary format used by Minecraft for world, chunk, and item data.

NBT is a closed set of 13 tag kinds (End, Byte, Short, Int, Long,
Float, Double, ByteArray, String, List, Compound, IntArray,
LongArray), big-endian on the wire, nested through List and Compound
openers. This package parses a complete in-memory buffer in a single
pass and returns a flat, pre-order Document: every tag, byte-range
provenance included, indexable by position or by name.

Basic Usage:

	import "github.com/nbtsniper/go-nbtsniper"

	doc, err := nbt.Parse(data)
	if err != nil {
		// err may be *nbt.ParseError, carrying the byte offset of the failure
	}
	for _, tag := range doc.Tags() {
		fmt.Println(tag.Name, tag.Kind())
	}

Parse never mutates its input, never retries, and never recurses: the
parse driver is an iterative state machine (see ParseOption for the
knobs available to control it). Nothing in this package writes NBT
back out, validates against a schema, or streams incrementally — it
reads one complete buffer and returns one complete Document.
*/
package nbt
