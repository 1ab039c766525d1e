// go-nbtsniper
// SPDX-License-Identifier: LGPL-3.0-or-later

// Command mcascan scans a Minecraft world's region directory and
// checks every present chunk of every region file: whether its framing
// decodes and whether its NBT payload parses. It prints each region
// file's name and a line for every chunk that fails (with -verbose,
// also for every chunk that parses), then totals across all region
// files: chunks present, decode and parse failures, and how many
// chunks declared each compression scheme.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	nbt "github.com/nbtsniper/go-nbtsniper"
	"github.com/nbtsniper/go-nbtsniper/region"
	"github.com/nbtsniper/go-nbtsniper/world"

	_ "github.com/nbtsniper/go-nbtsniper/region/compression/gzip"
	_ "github.com/nbtsniper/go-nbtsniper/region/compression/uncompressed"
	_ "github.com/nbtsniper/go-nbtsniper/region/compression/zlib"
)

type config struct {
	dir     *string
	verbose *bool
}

func parseFlags() *config {
	cfg := &config{
		dir:     flag.String("dir", "", "path to a world save's region directory"),
		verbose: flag.Bool("verbose", false, "print a line per chunk, not just per region file"),
	}
	flag.Parse()
	return cfg
}

// scanStats accumulates results across every chunk a region file
// scan touches: how many decode-failed outright, how many decoded
// but failed NBT parsing, and how many chunks used each compression
// scheme byte.
type scanStats struct {
	present, decodeFailed, parseFailed int
	schemeCounts                       map[uint8]int
}

func schemeName(scheme uint8) string {
	switch scheme {
	case 1:
		return "gzip"
	case 2:
		return "zlib"
	case 3:
		return "uncompressed"
	default:
		return fmt.Sprintf("scheme %d", scheme)
	}
}

func scanRegionFile(path string, verbose bool) scanStats {
	stats := scanStats{schemeCounts: make(map[uint8]int)}

	raw, err := os.ReadFile(path)
	if err != nil {
		_, _ = fmt.Printf("  %s: %v\n", path, err)
		return stats
	}

	r, err := region.Open(raw)
	if err != nil {
		_, _ = fmt.Printf("  %s: %v\n", path, err)
		return stats
	}

	for _, desc := range r.Chunks() {
		stats.present++

		scheme, err := r.ChunkScheme(desc.X, desc.Z)
		if err == nil {
			stats.schemeCounts[scheme]++
		}

		data, err := r.ReadChunk(desc.X, desc.Z)
		if err != nil {
			stats.decodeFailed++
			_, _ = fmt.Printf("    chunk (%d,%d): %v\n", desc.X, desc.Z, err)
			continue
		}

		doc, err := nbt.Parse(data)
		switch {
		case err != nil:
			stats.parseFailed++
			_, _ = fmt.Printf("    chunk (%d,%d): %s, parse failed: %v\n", desc.X, desc.Z, schemeName(scheme), err)
		case verbose:
			_, _ = fmt.Printf("    chunk (%d,%d): %s, %d tag(s)\n", desc.X, desc.Z, schemeName(scheme), len(doc.Tags()))
		}
	}
	return stats
}

func main() {
	cfg := parseFlags()
	if *cfg.dir == "" {
		_, _ = fmt.Fprintln(os.Stderr, "missing -dir")
		os.Exit(1)
	}

	files, err := world.Scan(*cfg.dir)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	sort.Slice(files, func(i, j int) bool {
		if files[i].X != files[j].X {
			return files[i].X < files[j].X
		}
		return files[i].Z < files[j].Z
	})

	total := scanStats{schemeCounts: make(map[uint8]int)}
	for _, f := range files {
		_, _ = fmt.Printf("r.%d.%d.mca\n", f.X, f.Z)
		stats := scanRegionFile(f.Path, *cfg.verbose)
		total.present += stats.present
		total.decodeFailed += stats.decodeFailed
		total.parseFailed += stats.parseFailed
		for scheme, n := range stats.schemeCounts {
			total.schemeCounts[scheme] += n
		}
	}

	_, _ = fmt.Printf("\n%d region file(s), %d chunk(s) present, %d chunk(s) failed to decode, %d chunk(s) failed to parse\n",
		len(files), total.present, total.decodeFailed, total.parseFailed)

	schemes := make([]uint8, 0, len(total.schemeCounts))
	for scheme := range total.schemeCounts {
		schemes = append(schemes, scheme)
	}
	sort.Slice(schemes, func(i, j int) bool { return schemes[i] < schemes[j] })
	for _, scheme := range schemes {
		_, _ = fmt.Printf("  %s: %d chunk(s)\n", schemeName(scheme), total.schemeCounts[scheme])
	}

	if total.decodeFailed > 0 || total.parseFailed > 0 {
		os.Exit(1)
	}
}
