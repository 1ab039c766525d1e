// go-nbtsniper
// SPDX-License-Identifier: LGPL-3.0-or-later

// Package gzip registers scheme 1 (Gzip) with the region package's
// compression registry. Import it for its side effect:
//
//	import _ "github.com/nbtsniper/go-nbtsniper/region/compression/gzip"
package gzip

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/nbtsniper/go-nbtsniper/region"
)

const scheme = 1

func init() {
	region.RegisterCompressor(scheme, decompress)
}

func decompress(compressed []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}
