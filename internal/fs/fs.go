package fs

// FileSystem is the capability the dialog core consumes instead of touching
// the operating system directly. The production backend (OSFS) and the
// in-memory backend (MemFS) satisfy the same contract, so the core can be
// tested without a real disk.
type FileSystem interface {
	// ReadDir enumerates the direct children of dir. Children that cannot
	// be stat'ed are skipped; only the overall read can fail.
	ReadDir(dir string) ([]Entry, error)

	// Stat returns the entry for a single path.
	Stat(path string) (Entry, error)

	// IsDir reports whether path exists and is a directory.
	IsDir(path string) bool

	// Exists reports whether path exists at all.
	Exists(path string) bool

	// CreateDir creates a single new directory (non-recursive).
	CreateDir(path string) error

	// Canonicalize resolves path to the absolute, symlink-free form used
	// for identity comparisons.
	Canonicalize(path string) (string, error)

	// Disks lists the platform-reported mount points and removable devices.
	Disks() []Disk

	// HomeDir returns the user's home directory.
	HomeDir() (string, error)
}
