package dialog

import (
	"path/filepath"
	"strings"

	"github.com/kk-code-lab/filedlg/internal/fs"
)

// Crumb is one breadcrumb segment of the current path. Path is the full
// ancestor path, usable directly with Session.Open.
type Crumb struct {
	Name string
	Path string
}

// View is the immutable per-frame read of a session. Poll returns a fresh
// one; slices are copies, so a renderer can hold a View for the duration of
// a frame while the session keeps mutating.
type View struct {
	Dir         string
	Breadcrumbs []Crumb
	Entries     []fs.Entry

	Loading   bool
	LoadState LoadState
	LoadErr   error

	Selected   []string // in visible order
	FileName   string
	Query      string
	TypeFilter *TypeFilter

	Phase      Phase
	CanBack    bool
	CanForward bool

	Pinned []string
	Disks  []fs.Disk

	Result []string // set once Phase is PhaseCommitted
}

// breadcrumbs splits a canonical path into one segment per ancestor,
// starting at the volume root.
func breadcrumbs(path string) []Crumb {
	if path == "" {
		return nil
	}

	sep := string(filepath.Separator)
	vol := filepath.VolumeName(path)
	root := vol + sep
	crumbs := []Crumb{{Name: root, Path: root}}

	rest := strings.TrimPrefix(path[len(vol):], sep)
	if rest == "" {
		return crumbs
	}

	acc := root
	for _, seg := range strings.Split(rest, sep) {
		if seg == "" {
			continue
		}
		acc = filepath.Join(acc, seg)
		crumbs = append(crumbs, Crumb{Name: seg, Path: acc})
	}
	return crumbs
}
