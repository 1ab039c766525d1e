// go-nbtsniper
// SPDX-License-Identifier: LGPL-3.0-or-later

// Package world locates the region files inside a Minecraft world
// save directory.
package world

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
)

var regionFilePattern = regexp.MustCompile(`^r\.(-?\d+)\.(-?\d+)\.mca$`)

// RegionFile identifies one region file on disk by its region-grid
// coordinates, parsed out of the "r.X.Z.mca" filename convention.
type RegionFile struct {
	X, Z int
	Path string
}

// Scan lists the region files directly inside dir (a world save's
// "region" subdirectory), in no particular order. Files whose name
// doesn't match the "r.X.Z.mca" convention are skipped.
func Scan(dir string) ([]RegionFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("world: reading %s: %w", dir, err)
	}

	var files []RegionFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := regionFilePattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		x, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		z, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		files = append(files, RegionFile{X: x, Z: z, Path: filepath.Join(dir, entry.Name())})
	}
	return files, nil
}
