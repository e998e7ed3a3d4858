package fs

import (
	"os"
	"path/filepath"

	"golang.org/x/text/unicode/norm"
)

// OSFS is the production FileSystem backed by the host operating system.
type OSFS struct{}

// OS returns the operating-system-backed FileSystem.
func OS() FileSystem {
	return OSFS{}
}

func (OSFS) ReadDir(dir string) ([]Entry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			// Vanished or unreadable between enumeration and stat.
			continue
		}
		out = append(out, entryFromInfo(filepath.Join(dir, e.Name()), e.Name(), info))
	}
	return out, nil
}

func (OSFS) Stat(path string) (Entry, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return Entry{}, err
	}
	return entryFromInfo(path, filepath.Base(path), info), nil
}

func entryFromInfo(fullPath, rawName string, info os.FileInfo) Entry {
	isDir := info.IsDir()
	isSymlink := info.Mode()&os.ModeSymlink != 0

	// For symlinks, the target decides whether the entry navigates.
	if isSymlink {
		if target, err := os.Stat(fullPath); err == nil {
			isDir = target.IsDir()
		}
	}

	return Entry{
		Name:      norm.NFC.String(rawName),
		Path:      fullPath,
		IsDir:     isDir,
		IsSymlink: isSymlink,
		IsHidden:  isHidden(fullPath, rawName),
		IsSystem:  isSystem(fullPath, info.Mode()),
		Size:      info.Size(),
		Modified:  info.ModTime(),
	}
}

func (OSFS) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (OSFS) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

func (OSFS) CreateDir(path string) error {
	return os.Mkdir(path, 0o755)
}

// Canonicalize resolves path to an absolute, symlink-free form. If symlink
// resolution fails (dangling target, permission), the cleaned absolute path
// is returned so identity comparisons stay stable.
func (OSFS) Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return filepath.Clean(abs), nil
}

func (OSFS) Disks() []Disk {
	return DedupeDisks(loadDisks())
}

func (OSFS) HomeDir() (string, error) {
	return os.UserHomeDir()
}
