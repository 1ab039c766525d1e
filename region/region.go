// go-nbtsniper
// SPDX-License-Identifier: LGPL-3.0-or-later

// Package region decodes Minecraft Anvil (.mca) region files: the
// 8KiB sector header describing where each of a region's 1024 chunks
// lives, and the per-chunk framing and compression wrapping the NBT
// payload beneath.
package region

import (
	"fmt"

	"github.com/nbtsniper/go-nbtsniper/internal/cursor"
)

const (
	sectorSize = 4096
	// HeaderLength is the combined size of the locations table and the
	// timestamps table at the start of a region file. Only the
	// locations table (the first half) is used for decoding; the
	// timestamps table is skipped.
	HeaderLength = sectorSize * 2
	chunkGridDim = 32
)

// ChunkDescriptor is one entry of a region file's locations table: the
// sector where a chunk's data begins and how many 4KiB sectors it
// occupies. A zero-value descriptor means the chunk was never
// generated.
type ChunkDescriptor struct {
	X, Z         int
	SectorOffset int32
	SectorCount  uint8
}

// Present reports whether this descriptor refers to an actual chunk,
// as opposed to an ungenerated grid cell.
func (d ChunkDescriptor) Present() bool {
	return d.SectorOffset != 0 || d.SectorCount != 0
}

// Region is a parsed region file's header; chunk payloads are decoded
// lazily by ReadChunk.
type Region struct {
	raw         []byte
	descriptors [chunkGridDim * chunkGridDim]ChunkDescriptor
}

// Open reads a region file's 8KiB header from data. data is retained
// by the returned Region, not copied; ReadChunk reads chunk payloads
// out of it on demand.
func Open(data []byte) (*Region, error) {
	if len(data) < HeaderLength {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrHeaderLength, HeaderLength, len(data))
	}

	r := &Region{raw: data}
	cur := cursor.New(data[:sectorSize])
	for i := 0; i < chunkGridDim*chunkGridDim; i++ {
		b0, err := cur.ReadUint8()
		if err != nil {
			return nil, err
		}
		b1, err := cur.ReadUint8()
		if err != nil {
			return nil, err
		}
		b2, err := cur.ReadUint8()
		if err != nil {
			return nil, err
		}
		count, err := cur.ReadUint8()
		if err != nil {
			return nil, err
		}
		offset := int32(b0)<<16 | int32(b1)<<8 | int32(b2)
		r.descriptors[i] = ChunkDescriptor{
			X: i % chunkGridDim, Z: i / chunkGridDim,
			SectorOffset: offset, SectorCount: count,
		}
	}
	return r, nil
}

// Descriptor returns the locations-table entry for chunk (x, z),
// relative to this region's origin (0..31 on each axis).
func (r *Region) Descriptor(x, z int) (ChunkDescriptor, error) {
	if x < 0 || x >= chunkGridDim || z < 0 || z >= chunkGridDim {
		return ChunkDescriptor{}, fmt.Errorf("%w: (%d, %d)", ErrChunkOutOfRange, x, z)
	}
	return r.descriptors[z*chunkGridDim+x], nil
}

// Chunks returns every descriptor that refers to a generated chunk.
func (r *Region) Chunks() []ChunkDescriptor {
	present := make([]ChunkDescriptor, 0, len(r.descriptors))
	for _, d := range r.descriptors {
		if d.Present() {
			present = append(present, d)
		}
	}
	return present
}

// ReadChunk returns the decompressed NBT buffer for chunk (x, z), or
// nil if that grid cell has never been generated. The compression
// scheme the chunk declares must have a Decompressor registered (see
// RegisterCompressor); the region/compression/* subpackages register
// the three schemes Minecraft writes.
func (r *Region) ReadChunk(x, z int) ([]byte, error) {
	scheme, compressed, err := r.chunkFrame(x, z)
	if err != nil || compressed == nil {
		return nil, err
	}

	decompress, ok := lookupCompressor(scheme)
	if !ok {
		return nil, fmt.Errorf("%w: scheme %d on chunk (%d, %d)", ErrUnsupportedCompression, scheme, x, z)
	}
	return decompress(compressed)
}

// ChunkScheme returns the compression scheme byte a chunk declares,
// without decompressing its payload, or 0 if that grid cell has never
// been generated.
func (r *Region) ChunkScheme(x, z int) (uint8, error) {
	scheme, _, err := r.chunkFrame(x, z)
	return scheme, err
}

// chunkFrame reads a chunk's 5-byte frame (length + scheme byte) and
// returns the scheme and the still-compressed payload bytes beneath
// it. compressed is nil if the grid cell has never been generated.
func (r *Region) chunkFrame(x, z int) (scheme uint8, compressed []byte, err error) {
	desc, err := r.Descriptor(x, z)
	if err != nil {
		return 0, nil, err
	}
	if !desc.Present() {
		return 0, nil, nil
	}

	byteOffset := int(desc.SectorOffset) * sectorSize
	if byteOffset+5 > len(r.raw) {
		return 0, nil, fmt.Errorf("%w: chunk (%d, %d) framing runs past end of file", ErrInvalidChunkHeader, x, z)
	}

	cur := cursor.New(r.raw[byteOffset:])
	length, err := cur.ReadInt32()
	if err != nil {
		return 0, nil, err
	}
	if length <= 0 {
		return 0, nil, fmt.Errorf("%w: chunk (%d, %d) declares length %d", ErrInvalidChunkHeader, x, z, length)
	}
	scheme, err = cur.ReadUint8()
	if err != nil {
		return 0, nil, err
	}

	// length includes the scheme byte already consumed above.
	compressed, err = cur.ReadBytes(int(length) - 1)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: chunk (%d, %d): %v", ErrInvalidChunkHeader, x, z, err)
	}
	return scheme, compressed, nil
}
