// Package testutil builds throwaway filesystem trees for link tests. A
// tree is described in TOML so fixtures read as data:
//
//	dirs = ["target"]
//
//	[files]
//	"a.txt" = "hello"
//
//	[links]
//	"broken" = "missing"
//
// Relative link targets are resolved against the tree root before the
// symlink is created.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jamesbehr/relink/filesystem"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/require"
)

// Tree describes a fixture: directories to create, files with contents,
// and symlinks pointing at targets.
type Tree struct {
	Dirs  []string          `toml:"dirs"`
	Files map[string]string `toml:"files"`
	Links map[string]string `toml:"links"`
}

// MkTree creates a temp directory populated from the TOML description and
// returns its path. Cleanup is handled by t.
func MkTree(t *testing.T, spec string) filesystem.Path {
	t.Helper()

	var tree Tree
	require.NoError(t, toml.Unmarshal([]byte(spec), &tree))

	root := filesystem.Path(t.TempDir())

	for _, dir := range tree.Dirs {
		require.NoError(t, root.Join(dir).MkdirAll(0o755))
	}

	for name, contents := range tree.Files {
		path := root.Join(name)
		require.NoError(t, path.Parent().MkdirAll(0o755))
		require.NoError(t, path.WriteFile([]byte(contents), 0o644))
	}

	for name, target := range tree.Links {
		link := root.Join(name)
		require.NoError(t, link.Parent().MkdirAll(0o755))

		if !filepath.IsAbs(target) {
			target = root.Join(target).String()
		}

		require.NoError(t, link.Symlink(filesystem.Path(target)))
	}

	return root
}

// AssertLink fails the test unless path is a symlink storing exactly
// target.
func AssertLink(t *testing.T, path, target string) {
	t.Helper()

	got, err := os.Readlink(path)
	require.NoError(t, err)
	require.Equal(t, target, got)
}

// AssertSameFile fails the test unless both paths resolve to the same
// device and inode.
func AssertSameFile(t *testing.T, a, b string) {
	t.Helper()

	ia, err := os.Stat(a)
	require.NoError(t, err)

	ib, err := os.Stat(b)
	require.NoError(t, err)

	require.True(t, filesystem.SameFile(ia, ib), "%s and %s are different files", a, b)
}

// LinkCount returns the hard link count of the file path resolves to.
func LinkCount(t *testing.T, path string) uint64 {
	t.Helper()

	info, err := os.Stat(path)
	require.NoError(t, err)

	n, err := filesystem.LinkCount(info)
	require.NoError(t, err)

	return n
}
