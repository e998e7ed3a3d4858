package fs

import "time"

// Entry represents a single directory child as seen by the dialog.
// Identity is the Path; entries are immutable once loaded and a reload
// always produces fresh ones.
type Entry struct {
	Name      string // display name, NFC-normalized
	Path      string
	IsDir     bool
	IsSymlink bool
	IsHidden  bool
	IsSystem  bool
	Size      int64
	Modified  time.Time
}

// Disk is a platform-reported mount point or removable device.
type Disk struct {
	MountPath   string
	DisplayName string
	Removable   bool
}

// DedupeDisks collapses duplicate device identities (the same location seen
// through multiple mount aliases) by mount path, keeping the first listing.
func DedupeDisks(disks []Disk) []Disk {
	seen := make(map[string]struct{}, len(disks))
	out := make([]Disk, 0, len(disks))
	for _, d := range disks {
		if _, dup := seen[d.MountPath]; dup {
			continue
		}
		seen[d.MountPath] = struct{}{}
		out = append(out, d)
	}
	return out
}
