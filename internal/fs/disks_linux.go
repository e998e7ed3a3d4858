//go:build linux

package fs

import (
	"bufio"
	"os"
	"strings"
)

// loadDisks reads /proc/mounts and keeps mounts a user would navigate to:
// the root filesystem plus block and fuse-backed mounts. Pseudo filesystems
// (proc, sysfs, cgroup, ...) are skipped.
func loadDisks() []Disk {
	f, err := os.Open("/proc/mounts")
	if err != nil {
		return []Disk{{MountPath: "/", DisplayName: "/"}}
	}
	defer f.Close()

	var disks []Disk
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			continue
		}
		device, mount, fstype := fields[0], fields[1], fields[2]
		if !navigableMount(device, mount, fstype) {
			continue
		}
		disks = append(disks, Disk{
			MountPath:   unescapeMount(mount),
			DisplayName: displayNameFor(unescapeMount(mount)),
			Removable:   removableMount(mount),
		})
	}

	if len(disks) == 0 {
		disks = []Disk{{MountPath: "/", DisplayName: "/"}}
	}
	return disks
}

func navigableMount(device, mount, fstype string) bool {
	if mount == "/" {
		return true
	}
	switch {
	case strings.HasPrefix(device, "/dev/loop"):
		return false
	case strings.HasPrefix(device, "/dev/"):
		// Skip EFI/boot partitions; they are noise in a picker.
		return !strings.HasPrefix(mount, "/boot") && !strings.HasPrefix(mount, "/efi")
	case strings.HasPrefix(fstype, "fuse"):
		return !strings.HasPrefix(mount, "/run/user") || strings.Contains(mount, "/gvfs")
	}
	return false
}

func removableMount(mount string) bool {
	return strings.HasPrefix(mount, "/media/") ||
		strings.HasPrefix(mount, "/run/media/") ||
		strings.HasPrefix(mount, "/mnt/")
}

func displayNameFor(mount string) string {
	if mount == "/" {
		return "/"
	}
	idx := strings.LastIndexByte(mount, '/')
	if idx < 0 || idx == len(mount)-1 {
		return mount
	}
	return mount[idx+1:]
}

// unescapeMount decodes the octal escapes /proc/mounts uses for spaces,
// tabs, newlines and backslashes.
func unescapeMount(mount string) string {
	if !strings.ContainsRune(mount, '\\') {
		return mount
	}
	var b strings.Builder
	b.Grow(len(mount))
	for i := 0; i < len(mount); i++ {
		c := mount[i]
		if c == '\\' && i+3 < len(mount) {
			oct := mount[i+1 : i+4]
			if decoded, ok := octalByte(oct); ok {
				b.WriteByte(decoded)
				i += 3
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

func octalByte(s string) (byte, bool) {
	var v int
	for i := 0; i < 3; i++ {
		if s[i] < '0' || s[i] > '7' {
			return 0, false
		}
		v = v*8 + int(s[i]-'0')
	}
	return byte(v), true
}
