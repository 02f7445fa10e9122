package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewFileStore(path)

	_, ok, err := store.Get(SessionKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(SessionKey, "token-1"))
	require.NoError(t, store.Set("other", "value"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	reopened := NewFileStore(path)
	value, ok, err := reopened.Get(SessionKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "token-1", value)

	require.NoError(t, reopened.Delete(SessionKey))
	require.NoError(t, reopened.Delete(SessionKey))

	_, ok, err = store.Get(SessionKey)
	require.NoError(t, err)
	assert.False(t, ok)

	value, ok, err = store.Get("other")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "value", value)
}

func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, _, err := NewFileStore(path).Get(SessionKey)
	assert.Error(t, err)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Set(SessionKey, "abc"))
	value, ok, err := store.Get(SessionKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", value)

	require.NoError(t, store.Delete(SessionKey))
	_, ok, _ = store.Get(SessionKey)
	assert.False(t, ok)
}
