// go-nbtsniper
// SPDX-License-Identifier: LGPL-3.0-or-later

package nbt

import (
	"fmt"
	"os"
	"sync/atomic"
)

var debugEnabled atomic.Bool

// SetDebugEnabled turns per-tag parse tracing on or off for the
// process. Tracing writes to stderr; it is off by default and is
// independent of the per-call WithDebug option, which additionally
// gates whether a given Parse call emits traces at all.
func SetDebugEnabled(enabled bool) {
	debugEnabled.Store(enabled)
}

func debugf(cfg parseConfig, format string, args ...any) {
	if !cfg.debug || !debugEnabled.Load() {
		return
	}
	fmt.Fprintf(os.Stderr, "nbt: "+format+"\n", args...)
}
