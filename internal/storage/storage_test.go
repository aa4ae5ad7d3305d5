package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CreatesAreas(t *testing.T) {
	dir := t.TempDir()
	_, err := New(dir)
	require.NoError(t, err)

	for _, area := range areas {
		info, err := os.Stat(filepath.Join(dir, area))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestSaveExistsOpenRemove(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	name := StoredName("clip.mp4")
	require.NoError(t, store.Save(AreaVideoOriginal, name, strings.NewReader("payload")))
	assert.True(t, store.Exists(AreaVideoOriginal, name))
	assert.False(t, store.Exists(AreaVideoTranscoded, name))

	f, err := store.Open(AreaVideoOriginal, name)
	require.NoError(t, err)
	defer f.Close()
	buf := make([]byte, 16)
	n, _ := f.Read(buf)
	assert.Equal(t, "payload", string(buf[:n]))

	require.NoError(t, store.Remove(AreaVideoOriginal, name))
	assert.False(t, store.Exists(AreaVideoOriginal, name))
}

func TestPath_StripsTraversal(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	p := store.Path(AreaImageOriginal, "../../etc/passwd")
	assert.Equal(t, filepath.Join(dir, AreaImageOriginal, "passwd"), p)
}

func TestStoredName(t *testing.T) {
	a := StoredName("clip.mp4")
	b := StoredName("clip.mp4")
	assert.NotEqual(t, a, b, "stored names must not collide for identical inputs")
	assert.True(t, strings.HasSuffix(a, ".mp4"))
	assert.Contains(t, a, "clip")

	weird := StoredName("../we ird/$(name).PNG")
	assert.True(t, strings.HasSuffix(weird, ".png"))
	assert.NotContains(t, weird, "/")
	assert.NotContains(t, weird, "$")

	assert.True(t, strings.Contains(StoredName(""), "file"))
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "abc_clip", BaseName("abc_clip.mp4"))
	assert.Equal(t, "noext", BaseName("noext"))
}
