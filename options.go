// go-nbtsniper
// SPDX-License-Identifier: LGPL-3.0-or-later

package nbt

import "github.com/nbtsniper/go-nbtsniper/internal/cursor"

// parseConfig holds the resolved settings for a single Parse call,
// built up by applying a caller's ParseOptions over the defaults.
type parseConfig struct {
	maxArrayLength int
	maxListLength  int
	strictUTF8     bool
	debug          bool
}

func defaultParseConfig() parseConfig {
	return parseConfig{
		maxArrayLength: cursor.MaxArrayLength,
		maxListLength:  cursor.MaxListLength,
		strictUTF8:     false,
		debug:          false,
	}
}

// ParseOption configures a single call to Parse.
type ParseOption func(*parseConfig)

// WithMaxArrayLength overrides the default bound on declared
// ByteArray/IntArray/LongArray lengths. A non-positive value disables
// the bound entirely, trusting the declared length as-is.
func WithMaxArrayLength(n int) ParseOption {
	return func(c *parseConfig) {
		c.maxArrayLength = n
	}
}

// WithMaxListLength overrides the default bound on a List header's
// declared element count.
func WithMaxListLength(n int) ParseOption {
	return func(c *parseConfig) {
		c.maxListLength = n
	}
}

// WithStrictUTF8 enables validation of String and tag-name payloads
// as standard UTF-8 (utf8.Valid). Modified UTF-8 is not recognised:
// its two-byte encoding of NUL and its surrogate-pair encoding of
// supplementary characters are rejected as invalid. By default the
// reader copies name and string bytes verbatim without validating
// their encoding.
func WithStrictUTF8(enabled bool) ParseOption {
	return func(c *parseConfig) {
		c.strictUTF8 = enabled
	}
}

// WithDebug enables per-tag tracing to the package's debug sink; see
// SetDebugEnabled.
func WithDebug(enabled bool) ParseOption {
	return func(c *parseConfig) {
		c.debug = enabled
	}
}
