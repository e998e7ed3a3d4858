package dialog

import (
	"path/filepath"
	"strings"

	"github.com/kk-code-lab/filedlg/internal/fs"
)

// TypeFilter classifies files by extension. Directories always pass so
// navigation stays possible while a filter is active.
type TypeFilter struct {
	ID         string
	Name       string
	Extensions []string
}

func (f TypeFilter) matches(e fs.Entry) bool {
	if e.IsDir {
		return true
	}
	ext := strings.ToLower(filepath.Ext(e.Name))
	for _, want := range f.Extensions {
		if ext == normalizeExt(want) {
			return true
		}
	}
	return false
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// FilterState is the user's current search query and type-filter choice.
type FilterState struct {
	Query      string
	TypeFilter *TypeFilter
}

// Visible returns the entries of snap that pass f, in snapshot order. It is
// a pure function of its inputs and never touches disk; an empty query and
// nil type filter pass everything.
func Visible(snap *Snapshot, f FilterState) []fs.Entry {
	if snap == nil {
		return nil
	}

	query := strings.ToLower(f.Query)
	out := make([]fs.Entry, 0, len(snap.Entries))
	for _, e := range snap.Entries {
		if query != "" && !strings.Contains(strings.ToLower(e.Name), query) {
			continue
		}
		if f.TypeFilter != nil && !f.TypeFilter.matches(e) {
			continue
		}
		out = append(out, e)
	}
	return out
}
