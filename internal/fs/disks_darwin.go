//go:build darwin

package fs

import (
	"os"
	"path/filepath"
	"strings"
)

// loadDisks lists the root volume plus everything mounted under /Volumes.
// Whether a /Volumes entry is removable is not reliably knowable without
// IOKit, so external volumes are reported as removable.
func loadDisks() []Disk {
	disks := []Disk{{MountPath: "/", DisplayName: "Macintosh HD"}}

	entries, err := os.ReadDir("/Volumes")
	if err != nil {
		return disks
	}

	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") || !e.IsDir() {
			continue
		}
		mount := filepath.Join("/Volumes", name)
		if resolved, err := filepath.EvalSymlinks(mount); err == nil && resolved == "/" {
			// The boot volume appears under /Volumes as a symlink to /.
			continue
		}
		disks = append(disks, Disk{
			MountPath:   mount,
			DisplayName: name,
			Removable:   true,
		})
	}
	return disks
}
