package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFSReadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "file.txt"), []byte("x"), 0o644))

	entries, err := OS().ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byName := map[string]Entry{}
	for _, e := range entries {
		byName[e.Name] = e
	}
	assert.True(t, byName["sub"].IsDir)
	assert.False(t, byName["file.txt"].IsDir)
	assert.Equal(t, int64(1), byName["file.txt"].Size)
	assert.Equal(t, filepath.Join(dir, "file.txt"), byName["file.txt"].Path)
}

func TestOSFSReadDirMissing(t *testing.T) {
	_, err := OS().ReadDir(filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOSFSHiddenDotfile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("dotfiles are not the hidden convention on windows")
	}
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), nil, 0o644))

	entry, err := OS().Stat(filepath.Join(dir, ".hidden"))
	require.NoError(t, err)
	assert.True(t, entry.IsHidden)
}

func TestOSFSSymlinkToDirReportsDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation needs privileges on windows")
	}
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	require.NoError(t, os.Mkdir(target, 0o755))
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(target, link))

	entries, err := OS().ReadDir(dir)
	require.NoError(t, err)

	var linkEntry *Entry
	for i := range entries {
		if entries[i].Name == "link" {
			linkEntry = &entries[i]
		}
	}
	require.NotNil(t, linkEntry)
	assert.True(t, linkEntry.IsSymlink)
	assert.True(t, linkEntry.IsDir)
}

func TestOSFSCreateDirAndExists(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "made")

	fsys := OS()
	require.NoError(t, fsys.CreateDir(target))
	assert.True(t, fsys.IsDir(target))
	assert.True(t, fsys.Exists(target))
	assert.ErrorIs(t, fsys.CreateDir(target), os.ErrExist)
}

func TestOSFSCanonicalizeResolvesSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation needs privileges on windows")
	}
	dir := t.TempDir()
	real := filepath.Join(dir, "real")
	require.NoError(t, os.Mkdir(real, 0o755))
	alias := filepath.Join(dir, "alias")
	require.NoError(t, os.Symlink(real, alias))

	fsys := OS()
	canonReal, err := fsys.Canonicalize(real)
	require.NoError(t, err)
	canonAlias, err := fsys.Canonicalize(alias)
	require.NoError(t, err)
	assert.Equal(t, canonReal, canonAlias)
}

func TestDedupeDisks(t *testing.T) {
	disks := DedupeDisks([]Disk{
		{MountPath: "/", DisplayName: "root"},
		{MountPath: "/mnt/usb", DisplayName: "usb", Removable: true},
		{MountPath: "/", DisplayName: "root-again"},
	})
	require.Len(t, disks, 2)
	assert.Equal(t, "root", disks[0].DisplayName)
}
