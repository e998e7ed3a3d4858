package fs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"syscall"
	"time"
)

// MemFS is an in-memory FileSystem for tests. It satisfies the same
// contract as OSFS: direct-children enumeration, the os error values for
// missing/existing paths, and dotfile hiding.
//
// Gate/Release let a test hold a ReadDir open to exercise how the core
// handles slow loads that get superseded.
type MemFS struct {
	mu    sync.Mutex
	nodes map[string]*memNode
	disks []Disk
	home  string
	gates map[string]chan struct{}
}

type memNode struct {
	isDir    bool
	isSystem bool
	size     int64
	modified time.Time
}

// NewMemFS creates an in-memory filesystem containing only the root
// directory.
func NewMemFS() *MemFS {
	return &MemFS{
		nodes: map[string]*memNode{"/": {isDir: true}},
		disks: []Disk{{MountPath: "/", DisplayName: "/"}},
		home:  "/",
		gates: make(map[string]chan struct{}),
	}
}

func memClean(p string) string {
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return filepath.Clean(p)
}

// MkdirAll creates a directory and any missing parents. Test setup helper.
func (m *MemFS) MkdirAll(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := memClean(path)
	for p != "/" {
		if _, ok := m.nodes[p]; !ok {
			m.nodes[p] = &memNode{isDir: true, modified: time.Now()}
		}
		p = filepath.Dir(p)
	}
}

// WriteFile creates a file of the given size, creating parents as needed.
func (m *MemFS) WriteFile(path string, size int64) {
	m.MkdirAll(filepath.Dir(memClean(path)))
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nodes[memClean(path)] = &memNode{size: size, modified: time.Now()}
}

// Remove deletes a path and everything under it.
func (m *MemFS) Remove(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := memClean(path)
	for key := range m.nodes {
		if key == p || strings.HasPrefix(key, p+"/") {
			delete(m.nodes, key)
		}
	}
}

// MarkSystem flags an existing path as a system file.
func (m *MemFS) MarkSystem(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n, ok := m.nodes[memClean(path)]; ok {
		n.isSystem = true
	}
}

// SetDisks replaces the disk list reported by Disks.
func (m *MemFS) SetDisks(disks []Disk) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.disks = append([]Disk(nil), disks...)
}

// SetHome sets the path returned by HomeDir.
func (m *MemFS) SetHome(path string) {
	m.MkdirAll(path)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.home = memClean(path)
}

// Gate makes the next ReadDir of dir block until Release is called.
func (m *MemFS) Gate(dir string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gates[memClean(dir)] = make(chan struct{})
}

// Release unblocks a gated ReadDir.
func (m *MemFS) Release(dir string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if gate, ok := m.gates[memClean(dir)]; ok {
		close(gate)
		delete(m.gates, memClean(dir))
	}
}

func (m *MemFS) ReadDir(dir string) ([]Entry, error) {
	p := memClean(dir)

	m.mu.Lock()
	gate := m.gates[p]
	m.mu.Unlock()
	if gate != nil {
		<-gate
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	node, ok := m.nodes[p]
	if !ok {
		return nil, os.ErrNotExist
	}
	if !node.isDir {
		return nil, syscall.ENOTDIR
	}

	var out []Entry
	for key, n := range m.nodes {
		if key == "/" || filepath.Dir(key) != p {
			continue
		}
		out = append(out, m.entryLocked(key, n))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

func (m *MemFS) entryLocked(path string, n *memNode) Entry {
	name := filepath.Base(path)
	return Entry{
		Name:     name,
		Path:     path,
		IsDir:    n.isDir,
		IsHidden: strings.HasPrefix(name, "."),
		IsSystem: n.isSystem,
		Size:     n.size,
		Modified: n.modified,
	}
}

func (m *MemFS) Stat(path string) (Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := memClean(path)
	n, ok := m.nodes[p]
	if !ok {
		return Entry{}, os.ErrNotExist
	}
	return m.entryLocked(p, n), nil
}

func (m *MemFS) IsDir(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.nodes[memClean(path)]
	return ok && n.isDir
}

func (m *MemFS) Exists(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.nodes[memClean(path)]
	return ok
}

func (m *MemFS) CreateDir(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := memClean(path)
	if _, ok := m.nodes[p]; ok {
		return os.ErrExist
	}
	parent, ok := m.nodes[filepath.Dir(p)]
	if !ok || !parent.isDir {
		return os.ErrNotExist
	}
	m.nodes[p] = &memNode{isDir: true, modified: time.Now()}
	return nil
}

func (m *MemFS) Canonicalize(path string) (string, error) {
	return memClean(path), nil
}

func (m *MemFS) Disks() []Disk {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Disk(nil), m.disks...)
}

func (m *MemFS) HomeDir() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.home, nil
}
