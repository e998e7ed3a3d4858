package dialog

import "github.com/kk-code-lab/filedlg/internal/fs"

// LoadState describes the outcome of the most recent directory load.
type LoadState int

const (
	Loading LoadState = iota
	Loaded
	Errored
)

func (s LoadState) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Errored:
		return "errored"
	}
	return "unknown"
}

// Snapshot is one generation of a directory's contents. Snapshots are
// replaced whole, never merged, so a reader holding one for the duration of
// a frame cannot observe entries from two different loads.
//
// An Errored snapshot carries the entries of the last successful load so
// the dialog keeps showing something navigable while the error is visible.
type Snapshot struct {
	Dir     string
	Entries []fs.Entry
	Gen     uint64
	State   LoadState
	Err     error
}
