package dialog

import (
	"errors"
	"os"
	"syscall"
)

// Command failures are reported through these sentinels; callers test with
// errors.Is. A failed command never changes session state.
var (
	ErrPathNotFound     = errors.New("path not found")
	ErrNotADirectory    = errors.New("not a directory")
	ErrPermissionDenied = errors.New("permission denied")
	ErrAlreadyExists    = errors.New("already exists")
	ErrInvalidName      = errors.New("invalid name")
	ErrNoParent         = errors.New("no parent directory")
	ErrNotAvailable     = errors.New("not available")
	ErrWrongEntryType   = errors.New("wrong entry type")
)

// mapFSError folds operating system errors into the dialog's taxonomy.
// Errors with no mapping pass through unchanged.
func mapFSError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, os.ErrNotExist):
		return ErrPathNotFound
	case errors.Is(err, os.ErrPermission):
		return ErrPermissionDenied
	case errors.Is(err, os.ErrExist):
		return ErrAlreadyExists
	case errors.Is(err, syscall.ENOTDIR):
		return ErrNotADirectory
	}
	return err
}
