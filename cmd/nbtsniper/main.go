// go-nbtsniper
// SPDX-License-Identifier: LGPL-3.0-or-later

// Command nbtsniper parses a single NBT file, or one chunk out of an
// Anvil region file, and prints it as a tree, a hex dump, or JSON.
package main

import (
	"flag"
	"fmt"
	"os"

	nbt "github.com/nbtsniper/go-nbtsniper"
	"github.com/nbtsniper/go-nbtsniper/present"
	"github.com/nbtsniper/go-nbtsniper/region"

	_ "github.com/nbtsniper/go-nbtsniper/region/compression/gzip"
	_ "github.com/nbtsniper/go-nbtsniper/region/compression/uncompressed"
	_ "github.com/nbtsniper/go-nbtsniper/region/compression/zlib"
)

type config struct {
	file      *string
	chunkX    *int
	chunkZ    *int
	region    *bool
	format    *string
	debug     *bool
	maxArray  *int
	strictLen *bool
}

func parseFlags() *config {
	cfg := &config{
		file:      flag.String("file", "", "path to an NBT file or an Anvil .mca region file"),
		chunkX:    flag.Int("x", -1, "chunk X coordinate within the region (0-31), required with -region"),
		chunkZ:    flag.Int("z", -1, "chunk Z coordinate within the region (0-31), required with -region"),
		region:    flag.Bool("region", false, "treat -file as an Anvil region file and extract a chunk"),
		format:    flag.String("format", "tree", "output format: tree, hex, or json"),
		debug:     flag.Bool("debug", false, "enable parse tracing to stderr"),
		maxArray:  flag.Int("max-array-length", 0, "override the maximum declared array length (0 keeps the default)"),
		strictLen: flag.Bool("strict-utf8", false, "validate names and strings as standard UTF-8 (not Modified UTF-8)"),
	}
	flag.Parse()

	if *cfg.debug {
		nbt.SetDebugEnabled(true)
	}
	return cfg
}

func loadNBTBytes(cfg *config) ([]byte, error) {
	raw, err := os.ReadFile(*cfg.file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", *cfg.file, err)
	}

	if !*cfg.region {
		return raw, nil
	}

	if *cfg.chunkX < 0 || *cfg.chunkZ < 0 {
		return nil, fmt.Errorf("-region requires -x and -z in 0..31")
	}
	r, err := region.Open(raw)
	if err != nil {
		return nil, fmt.Errorf("opening region file: %w", err)
	}
	chunk, err := r.ReadChunk(*cfg.chunkX, *cfg.chunkZ)
	if err != nil {
		return nil, fmt.Errorf("reading chunk (%d, %d): %w", *cfg.chunkX, *cfg.chunkZ, err)
	}
	if chunk == nil {
		return nil, fmt.Errorf("chunk (%d, %d) has never been generated", *cfg.chunkX, *cfg.chunkZ)
	}
	return chunk, nil
}

func parseOptions(cfg *config) []nbt.ParseOption {
	var opts []nbt.ParseOption
	if *cfg.maxArray > 0 {
		opts = append(opts, nbt.WithMaxArrayLength(*cfg.maxArray))
	}
	if *cfg.strictLen {
		opts = append(opts, nbt.WithStrictUTF8(true))
	}
	if *cfg.debug {
		opts = append(opts, nbt.WithDebug(true))
	}
	return opts
}

func render(doc *nbt.Document, raw []byte, format string) error {
	switch format {
	case "tree":
		_, _ = fmt.Print(present.Tree(doc))
		return nil
	case "hex":
		return present.HexDump(os.Stdout, raw)
	case "json":
		return doc.ToJSON(os.Stdout)
	default:
		return fmt.Errorf("unknown format %q (want tree, hex, or json)", format)
	}
}

func main() {
	cfg := parseFlags()
	if *cfg.file == "" {
		_, _ = fmt.Fprintln(os.Stderr, "missing -file")
		os.Exit(1)
	}

	raw, err := loadNBTBytes(cfg)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if *cfg.format == "hex" {
		if err := render(nil, raw, "hex"); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	doc, err := nbt.Parse(raw, parseOptions(cfg)...)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "parse failed: %v\n", err)
		os.Exit(1)
	}

	if err := render(doc, raw, *cfg.format); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
