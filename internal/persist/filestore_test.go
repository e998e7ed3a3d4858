package persist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreMissingFileLoadsZero(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "settings.yaml"))

	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, Settings{}, settings)
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	store := NewFileStore(path)

	want := Settings{
		PinnedFolders:     []string{"/home/user/docs", "/mnt/usb"},
		ShowHidden:        true,
		DefaultTypeFilter: "txt",
	}
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Save replaces via rename; no temp file may linger.
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileStoreOverwrite(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "settings.yaml"))

	require.NoError(t, store.Save(Settings{ShowHidden: true}))
	require.NoError(t, store.Save(Settings{ShowSystem: true}))

	got, err := store.Load()
	require.NoError(t, err)
	assert.False(t, got.ShowHidden)
	assert.True(t, got.ShowSystem)
}

func TestFileStoreRejectsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o644))

	_, err := NewFileStore(path).Load()
	assert.Error(t, err)
}

func TestMemStoreIsolatesCopies(t *testing.T) {
	store := NewMemStore()
	saved := Settings{PinnedFolders: []string{"/a"}}
	require.NoError(t, store.Save(saved))

	got, err := store.Load()
	require.NoError(t, err)
	got.PinnedFolders[0] = "/mutated"

	again, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"/a"}, again.PinnedFolders)
	assert.Equal(t, 1, store.Saves)
}
