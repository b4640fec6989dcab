package linker

import (
	"path/filepath"
	"strings"
)

// addSize adds two unsigned sizes, reporting whether the result is valid.
// A wrapped sum is always smaller than either operand.
func addSize(a, b uint64) (uint64, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}

	return sum, true
}

// TargetPath composes the destination path for linking sourceFile into
// targetDir: targetDir joined with basename(sourceFile), the separator
// omitted when targetDir already ends in one. The only failure mode is
// ErrPathOverflow, when the combined length cannot be represented. An
// empty targetDir is accepted and yields a leading separator.
func TargetPath(targetDir, sourceFile string) (string, error) {
	base := filepath.Base(sourceFile)

	// len(targetDir) + separator + len(base) + terminator
	size, ok := addSize(uint64(len(targetDir)), uint64(len(base)))
	if ok {
		size, ok = addSize(size, 2)
	}
	if !ok {
		return "", ErrPathOverflow
	}

	var sb strings.Builder
	sb.Grow(int(size))
	sb.WriteString(targetDir)
	if !strings.HasSuffix(targetDir, "/") {
		sb.WriteByte('/')
	}
	sb.WriteString(base)

	return sb.String(), nil
}
