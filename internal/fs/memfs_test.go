package fs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemFSListsDirectChildrenOnly(t *testing.T) {
	m := NewMemFS()
	m.MkdirAll("/a/b/c")
	m.WriteFile("/a/top.txt", 3)

	entries, err := m.ReadDir("/a")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "b", entries[0].Name)
	assert.True(t, entries[0].IsDir)
	assert.Equal(t, "top.txt", entries[1].Name)
	assert.False(t, entries[1].IsDir)
}

func TestMemFSErrorValues(t *testing.T) {
	m := NewMemFS()
	m.WriteFile("/f", 1)

	_, err := m.ReadDir("/missing")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = m.ReadDir("/f")
	assert.Error(t, err)

	assert.ErrorIs(t, m.CreateDir("/f"), os.ErrExist)
	assert.ErrorIs(t, m.CreateDir("/no/parent"), os.ErrNotExist)
}

func TestMemFSCreateDir(t *testing.T) {
	m := NewMemFS()
	require.NoError(t, m.CreateDir("/sub"))
	assert.True(t, m.IsDir("/sub"))
	assert.True(t, m.Exists("/sub"))
}

func TestMemFSHiddenByDotPrefix(t *testing.T) {
	m := NewMemFS()
	m.WriteFile("/.rc", 1)
	m.WriteFile("/plain", 1)

	entry, err := m.Stat("/.rc")
	require.NoError(t, err)
	assert.True(t, entry.IsHidden)

	entry, err = m.Stat("/plain")
	require.NoError(t, err)
	assert.False(t, entry.IsHidden)
}

func TestMemFSGateBlocksUntilRelease(t *testing.T) {
	m := NewMemFS()
	m.MkdirAll("/slow")
	m.Gate("/slow")

	done := make(chan struct{})
	go func() {
		_, _ = m.ReadDir("/slow")
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("gated ReadDir returned before Release")
	default:
	}

	m.Release("/slow")
	<-done
}

func TestMemFSRemoveIsRecursive(t *testing.T) {
	m := NewMemFS()
	m.MkdirAll("/a/b")
	m.WriteFile("/a/b/f", 1)

	m.Remove("/a")
	assert.False(t, m.Exists("/a"))
	assert.False(t, m.Exists("/a/b/f"))
}
