// go-nbtsniper
// SPDX-License-Identifier: LGPL-3.0-or-later

// Package uncompressed registers scheme 3 (no compression) with the
// region package's compression registry. Import it for its side
// effect:
//
//	import _ "github.com/nbtsniper/go-nbtsniper/region/compression/uncompressed"
package uncompressed

import "github.com/nbtsniper/go-nbtsniper/region"

const scheme = 3

func init() {
	region.RegisterCompressor(scheme, decompress)
}

func decompress(compressed []byte) ([]byte, error) {
	out := make([]byte, len(compressed))
	copy(out, compressed)
	return out, nil
}
