// go-nbtsniper
// SPDX-License-Identifier: LGPL-3.0-or-later

package present

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nbt "github.com/nbtsniper/go-nbtsniper"
)

func TestHexDump(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HexDump(&buf, []byte("hello, nbt!")))

	out := buf.String()
	assert.Contains(t, out, "00000000")
	assert.Contains(t, out, "|hello, nbt!|")
}

func TestTree(t *testing.T) {
	data := append([]byte{0x0a, 0x00, 0x00}, // Compound, name ""
		0x03, 0x00, 0x03, 'f', 'o', 'o', 0, 0, 0, 42, // Int "foo" = 42
		0x00, // End
	)

	doc, err := nbt.Parse(data)
	require.NoError(t, err)

	out := Tree(doc)
	assert.True(t, strings.Contains(out, "foo: Int"))
	assert.True(t, strings.Contains(out, "= 42"))
}
