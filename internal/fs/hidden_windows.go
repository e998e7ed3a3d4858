//go:build windows

package fs

import (
	"os"
	"syscall"
)

const (
	fileAttributeHidden = 0x02
	fileAttributeSystem = 0x04
)

func fileAttributes(path string) (uint32, bool) {
	if path == "" {
		return 0, false
	}

	ptr, err := syscall.UTF16PtrFromString(path)
	if err != nil {
		return 0, false
	}

	attrs, err := syscall.GetFileAttributes(ptr)
	if err != nil {
		return 0, false
	}
	return attrs, true
}

// isHidden checks if a file is hidden on this platform (Windows)
func isHidden(fullPath string, name string) bool {
	target := fullPath
	if target == "" {
		target = name
	}
	if attrs, ok := fileAttributes(target); ok {
		return attrs&fileAttributeHidden != 0
	}
	return len(name) > 0 && name[0] == '.'
}

// isSystem reports whether the FILE_ATTRIBUTE_SYSTEM flag is set.
func isSystem(fullPath string, _ os.FileMode) bool {
	attrs, ok := fileAttributes(fullPath)
	return ok && attrs&fileAttributeSystem != 0
}
