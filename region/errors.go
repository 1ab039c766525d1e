// go-nbtsniper
// SPDX-License-Identifier: LGPL-3.0-or-later

package region

import "errors"

var (
	// ErrHeaderLength is returned when a region file is shorter than
	// the fixed 8KiB location-and-timestamp header.
	ErrHeaderLength = errors.New("region: file shorter than header")
	// ErrChunkOutOfRange is returned when a requested chunk coordinate
	// falls outside the 0..31 range a region file covers.
	ErrChunkOutOfRange = errors.New("region: chunk coordinate out of range")
	// ErrInvalidChunkHeader is returned when a chunk's 5-byte framing
	// (length + compression scheme) cannot be read or declares a
	// length that runs past the end of the file.
	ErrInvalidChunkHeader = errors.New("region: invalid chunk header")
	// ErrUnsupportedCompression is returned when a chunk declares a
	// compression scheme byte with no registered decompressor. Import
	// the region/compression/* subpackage for the scheme you need.
	ErrUnsupportedCompression = errors.New("region: unsupported compression scheme")
)
