package filesystem

import (
	"io/fs"
	"os"

	"golang.org/x/sys/unix"
)

// osSystem implements System using the operating system's filesystem.
type osSystem struct{}

// NewOS returns a System backed by the real filesystem.
func NewOS() System {
	return osSystem{}
}

func (osSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (osSystem) Lstat(name string) (fs.FileInfo, error) {
	return os.Lstat(name)
}

func (osSystem) Link(oldname, newname string) error {
	return os.Link(oldname, newname)
}

// LinkEntry uses linkat(2) because plain link(2) cannot choose between a
// symlink entry and its target.
func (osSystem) LinkEntry(oldname, newname string, follow bool) error {
	var flags int
	if follow {
		flags = unix.AT_SYMLINK_FOLLOW
	}

	err := unix.Linkat(unix.AT_FDCWD, oldname, unix.AT_FDCWD, newname, flags)
	if err != nil {
		return &os.LinkError{Op: "linkat", Old: oldname, New: newname, Err: err}
	}

	return nil
}

func (osSystem) Symlink(oldname, newname string) error {
	return os.Symlink(oldname, newname)
}

func (osSystem) Readlink(name string) (string, error) {
	return os.Readlink(name)
}

func (osSystem) Remove(name string) error {
	return os.Remove(name)
}
