// go-nbtsniper
// SPDX-License-Identifier: LGPL-3.0-or-later

package world

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanFindsRegionFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"r.0.0.mca", "r.-1.2.mca", "ignore.txt", "r.bad.mca"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)

	byPath := make(map[string]RegionFile, len(files))
	for _, f := range files {
		byPath[filepath.Base(f.Path)] = f
	}

	assert.Equal(t, 0, byPath["r.0.0.mca"].X)
	assert.Equal(t, 0, byPath["r.0.0.mca"].Z)
	assert.Equal(t, -1, byPath["r.-1.2.mca"].X)
	assert.Equal(t, 2, byPath["r.-1.2.mca"].Z)
}

func TestScanMissingDirectory(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
}
