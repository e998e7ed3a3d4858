//go:build !windows

package fs

import "os"

// isHidden checks if a file is hidden on this platform (Unix-like)
func isHidden(_ string, name string) bool {
	return len(name) > 0 && name[0] == '.'
}

// isSystem reports whether the entry is a non-regular object (device,
// socket, pipe) that a picker should treat as a system file.
func isSystem(_ string, mode os.FileMode) bool {
	return mode&(os.ModeDevice|os.ModeSocket|os.ModeNamedPipe|os.ModeCharDevice) != 0
}
