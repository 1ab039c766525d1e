// go-nbtsniper
// SPDX-License-Identifier: LGPL-3.0-or-later

// Package zlib registers scheme 2 (Zlib) with the region package's
// compression registry. Import it for its side effect:
//
//	import _ "github.com/nbtsniper/go-nbtsniper/region/compression/zlib"
package zlib

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/nbtsniper/go-nbtsniper/region"
)

const scheme = 2

func init() {
	region.RegisterCompressor(scheme, decompress)
}

func decompress(compressed []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}
