package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathBasename(t *testing.T) {
	assert.Equal(t, "file.txt", Path("a/b/file.txt").Basename())
	assert.Equal(t, "b", Path("a/b/").Basename())
	assert.Equal(t, "file", Path("file").Basename())
	assert.Equal(t, "/", Path("/").Basename())
}

func TestPathParent(t *testing.T) {
	assert.Equal(t, Path("/foo/bar"), Path("/foo/bar/baz").Parent())
	assert.Equal(t, Path("/"), Path("/foo").Parent())
}

func TestPathExists(t *testing.T) {
	dir := Path(t.TempDir())

	file := dir.Join("file")
	require.NoError(t, file.WriteFile([]byte("x"), 0o644))

	exists, err := file.Exists()
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = dir.Join("missing").Exists()
	require.NoError(t, err)
	assert.False(t, exists)

	// A dangling symlink is still a directory entry.
	dangling := dir.Join("dangling")
	require.NoError(t, dangling.Symlink(dir.Join("missing")))

	exists, err = dangling.Exists()
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestPathReadlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))

	link := Path(dir).Join("link")
	require.NoError(t, link.Symlink(Path(target)))

	got, err := link.Readlink()
	require.NoError(t, err)
	assert.Equal(t, Path(target), got)
}
