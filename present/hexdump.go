// go-nbtsniper
// SPDX-License-Identifier: LGPL-3.0-or-later

// Package present renders a parsed nbt.Document for a human: a
// hex dump of the raw buffer, and an indented tree view of the tag
// structure.
package present

import (
	"fmt"
	"io"
)

const bytesPerLine = 16

// HexDump writes data to w in the conventional offset/hex/ASCII
// three-column layout, bytesPerLine bytes to a line.
func HexDump(w io.Writer, data []byte) error {
	for offset := 0; offset < len(data); offset += bytesPerLine {
		end := offset + bytesPerLine
		if end > len(data) {
			end = len(data)
		}
		line := data[offset:end]

		if _, err := fmt.Fprintf(w, "%08x  ", offset); err != nil {
			return err
		}
		for i := 0; i < bytesPerLine; i++ {
			if i < len(line) {
				if _, err := fmt.Fprintf(w, "%02x ", line[i]); err != nil {
					return err
				}
			} else if _, err := fmt.Fprint(w, "   "); err != nil {
				return err
			}
			if i == bytesPerLine/2-1 {
				if _, err := fmt.Fprint(w, " "); err != nil {
					return err
				}
			}
		}
		if _, err := fmt.Fprint(w, " |"); err != nil {
			return err
		}
		for _, b := range line {
			if b >= 0x20 && b < 0x7f {
				if _, err := fmt.Fprintf(w, "%c", b); err != nil {
					return err
				}
			} else if _, err := fmt.Fprint(w, "."); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "|"); err != nil {
			return err
		}
	}
	return nil
}
