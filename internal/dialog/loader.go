package dialog

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/kk-code-lab/filedlg/internal/fs"
)

// loadOptions control which enumerated entries a load keeps.
type loadOptions struct {
	showHidden bool
	showSystem bool
	dirsOnly   bool
}

type loadResult struct {
	gen     uint64
	dir     string
	entries []fs.Entry
	err     error
}

// loader issues directory reads and reports them on a channel the session
// drains during Poll. Generations increase monotonically per issued load;
// the session applies a result only if it belongs to the newest issued
// generation, so a slow stale read can never clobber a newer snapshot.
type loader struct {
	fsys    fs.FileSystem
	inline  bool
	results chan loadResult

	mu   sync.Mutex
	jobs map[uint64]context.CancelFunc
	gen  uint64
}

func newLoader(fsys fs.FileSystem, syncLoad bool) *loader {
	return &loader{
		fsys:    fsys,
		inline:  syncLoad,
		results: make(chan loadResult, 16),
		jobs:    make(map[uint64]context.CancelFunc),
	}
}

// start issues a read of dir and returns its generation. In sync mode the
// read happens inline and the result is queued before start returns.
func (l *loader) start(dir string, opts loadOptions) uint64 {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	l.mu.Unlock()

	if l.inline {
		entries, err := readDir(l.fsys, dir, opts)
		l.results <- loadResult{gen: gen, dir: dir, entries: entries, err: err}
		return gen
	}

	ctx, cancel := context.WithCancel(context.Background())
	l.mu.Lock()
	l.jobs[gen] = cancel
	l.mu.Unlock()

	go func() {
		defer func() {
			l.mu.Lock()
			delete(l.jobs, gen)
			l.mu.Unlock()
		}()

		entries, err := readDir(l.fsys, dir, opts)

		select {
		case l.results <- loadResult{gen: gen, dir: dir, entries: entries, err: err}:
		case <-ctx.Done():
		}
	}()
	return gen
}

// cancel abandons the job for gen. The result, if the read already
// finished, is still discarded by the generation check on apply.
func (l *loader) cancel(gen uint64) {
	l.mu.Lock()
	if cancelJob, ok := l.jobs[gen]; ok {
		cancelJob()
		delete(l.jobs, gen)
	}
	l.mu.Unlock()
}

// readDir enumerates the direct children of dir and applies the visibility
// options. Entries are deduplicated by canonical path, then sorted
// directories first and case-insensitively by display name within each
// group.
func readDir(fsys fs.FileSystem, dir string, opts loadOptions) ([]fs.Entry, error) {
	raw, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, mapFSError(err)
	}

	seen := make(map[string]struct{}, len(raw))
	entries := make([]fs.Entry, 0, len(raw))
	for _, e := range raw {
		if _, dup := seen[e.Path]; dup {
			continue
		}
		seen[e.Path] = struct{}{}

		if !opts.showHidden && e.IsHidden {
			continue
		}
		if !opts.showSystem && e.IsSystem {
			continue
		}
		if opts.dirsOnly && !e.IsDir {
			continue
		}
		entries = append(entries, e)
	}

	sortEntries(entries)
	return entries, nil
}

func sortEntries(entries []fs.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
}
