package cmd

import (
	"path/filepath"
	"testing"

	"github.com/jamesbehr/relink/testutil"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestLinkOperandCount(t *testing.T) {
	require.EqualError(t, execute(t, "link", "a"), "must have exactly two file operands")
	require.EqualError(t, execute(t, "link", "a", "b", "c"), "must have exactly two file operands")
}

func TestLinkCreatesHardLink(t *testing.T) {
	root := testutil.MkTree(t, `
[files]
"a" = "A"
`)

	source := root.Join("a").String()
	dest := root.Join("b").String()

	require.NoError(t, execute(t, "link", source, dest))
	testutil.AssertSameFile(t, source, dest)
}

func TestLinkFailure(t *testing.T) {
	dir := t.TempDir()
	err := execute(t, "link", filepath.Join(dir, "missing"), filepath.Join(dir, "out"))
	require.ErrorContains(t, err, "failed to create link")
}

func TestUnlinkOperandCount(t *testing.T) {
	require.EqualError(t, execute(t, "unlink"), "must have exactly one file operand")
	require.EqualError(t, execute(t, "unlink", "a", "b"), "must have exactly one file operand")
}

func TestUnlinkRemovesEntry(t *testing.T) {
	root := testutil.MkTree(t, `
[files]
"a" = "A"
`)

	require.NoError(t, execute(t, "unlink", root.Join("a").String()))

	exists, err := root.Join("a").Exists()
	require.NoError(t, err)
	require.False(t, exists)
}

func TestUnlinkMissing(t *testing.T) {
	dir := t.TempDir()
	err := execute(t, "unlink", filepath.Join(dir, "missing"))
	require.ErrorContains(t, err, "failed to unlink")
}

func TestLnTwoOperands(t *testing.T) {
	root := testutil.MkTree(t, `
[files]
"a" = "A"
`)

	source := root.Join("a").String()
	dest := root.Join("b").String()

	require.NoError(t, execute(t, "ln", source, dest))
	testutil.AssertSameFile(t, source, dest)
}

func TestLnTooFewOperands(t *testing.T) {
	require.EqualError(t, execute(t, "ln", "only"), "must have >=2 file operands")
}
