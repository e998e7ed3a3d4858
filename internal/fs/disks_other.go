//go:build !linux && !darwin

package fs

import "path/filepath"

// loadDisks falls back to the filesystem root on platforms without a
// dedicated mount enumerator.
func loadDisks() []Disk {
	root := filepath.VolumeName("/") + string(filepath.Separator)
	return []Disk{{MountPath: root, DisplayName: root}}
}
