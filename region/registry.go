// go-nbtsniper
// SPDX-License-Identifier: LGPL-3.0-or-later

package region

import "sync"

// Decompressor turns the compressed bytes of a chunk's payload into
// the raw NBT buffer underneath. Implementations are registered by
// scheme byte from a subpackage's init(), mirroring the rest of this
// module's plugin packages: blank-import region/compression/gzip,
// region/compression/zlib, and region/compression/uncompressed for
// the three schemes Minecraft actually writes.
type Decompressor func(compressed []byte) ([]byte, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[uint8]Decompressor)
)

// RegisterCompressor registers fn as the Decompressor for scheme.
// Called from the init() of a region/compression/* subpackage; a
// second registration for the same scheme replaces the first.
func RegisterCompressor(scheme uint8, fn Decompressor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[scheme] = fn
}

func lookupCompressor(scheme uint8) (Decompressor, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	fn, ok := registry[scheme]
	return fn, ok
}
