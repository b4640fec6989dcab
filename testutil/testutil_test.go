package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMkTree(t *testing.T) {
	root := MkTree(t, `
dirs = ["sub"]

[files]
"a.txt" = "hello"
"sub/b.txt" = "world"

[links]
"link" = "a.txt"
`)

	contents, err := root.Join("a.txt").ReadFile()
	require.NoError(t, err)
	require.Equal(t, "hello", string(contents))

	info, err := os.Stat(root.Join("sub").String())
	require.NoError(t, err)
	require.True(t, info.IsDir())

	AssertLink(t, root.Join("link").String(), root.Join("a.txt").String())
	AssertSameFile(t, root.Join("link").String(), root.Join("a.txt").String())
	require.EqualValues(t, 1, LinkCount(t, root.Join("a.txt").String()))
}
