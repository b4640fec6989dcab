package filesystem

import (
	"os"
	"path/filepath"
)

// Path is a filesystem path with helpers for the small set of operations
// the fixtures and tests need.
type Path string

func (p Path) Join(names ...string) Path {
	args := []string{string(p)}
	args = append(args, names...)
	return Path(filepath.Join(args...))
}

func (p Path) Parent() Path {
	return Path(filepath.Dir(string(p)))
}

// Basename returns the final component of the path with trailing
// separators stripped, matching POSIX basename(3).
func (p Path) Basename() string {
	return filepath.Base(string(p))
}

func (p Path) MkdirAll(perm os.FileMode) error {
	return os.MkdirAll(string(p), perm)
}

func (p Path) WriteFile(data []byte, perm os.FileMode) error {
	return os.WriteFile(string(p), data, perm)
}

func (p Path) ReadFile() ([]byte, error) {
	return os.ReadFile(string(p))
}

func (p Path) Symlink(target Path) error {
	return os.Symlink(string(target), string(p))
}

func (p Path) Readlink() (Path, error) {
	target, err := os.Readlink(string(p))
	if err != nil {
		return Path(""), err
	}

	return Path(target), nil
}

// Exists reports whether a directory entry is present at p. It does not
// follow symbolic links, so a dangling symlink exists.
func (p Path) Exists() (bool, error) {
	_, err := os.Lstat(string(p))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (p Path) String() string {
	return string(p)
}
