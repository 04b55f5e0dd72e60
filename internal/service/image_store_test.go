package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageStoreSave(t *testing.T) {
	dir := t.TempDir()
	store, err := NewImageStore(dir)
	require.NoError(t, err)

	filename, err := store.Save(strings.NewReader("fake jpeg bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(filename, ".jpg"))

	content, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	assert.Equal(t, "fake jpeg bytes", string(content))
}

func TestImageStoreUniqueFilenames(t *testing.T) {
	store, err := NewImageStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.Save(strings.NewReader("one"))
	require.NoError(t, err)
	second, err := store.Save(strings.NewReader("two"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestImageStoreCreatesNestedDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "app", "storage")
	_, err := NewImageStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
