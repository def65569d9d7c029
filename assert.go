//go:build !debug

package ark

// dropSite records where a handle was dropped (debug only).
type dropSite struct{}

func (*dropSite) record() {}

func (*dropSite) String() string { return "" }

func trackCell()   {}
func untrackCell() {}

// LiveCells reports the number of cells not yet reclaimed (debug only;
// always 0 in release builds).
func LiveCells() int64 { return 0 }
