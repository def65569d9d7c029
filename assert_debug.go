//go:build debug

package ark

import (
	"fmt"
	"runtime"
	"sync/atomic"
)

// dropSite records where a handle was dropped (debug only).
type dropSite struct {
	frame string
}

func (d *dropSite) record() {
	// Caller 2 is the caller of Drop.
	if _, file, line, ok := runtime.Caller(2); ok {
		d.frame = fmt.Sprintf("%s:%d", file, line)
	}
}

func (d *dropSite) String() string {
	if d.frame == "" {
		return ""
	}

	return fmt.Sprintf(" (dropped at %s)", d.frame)
}

var liveCells atomic.Int64

func trackCell()   { liveCells.Add(1) }
func untrackCell() { liveCells.Add(-1) }

// LiveCells reports the number of cells not yet reclaimed (debug only;
// always 0 in release builds).
func LiveCells() int64 { return liveCells.Load() }
