//go:build !windows

package filesystem

import (
	"errors"
	"io/fs"
	"syscall"
)

// FileID identifies a file by device and inode number. Two directory
// entries with equal FileIDs name the same underlying file.
type FileID struct {
	Dev uint64
	Ino uint64
}

// ID extracts the FileID from a FileInfo produced by Stat or Lstat.
func ID(fi fs.FileInfo) (FileID, error) {
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return FileID{}, errors.New("filesystem: no stat information")
	}

	return FileID{Dev: uint64(st.Dev), Ino: uint64(st.Ino)}, nil
}

// SameFile reports whether a and b describe the same directory entry,
// using the POSIX device and inode test. It returns false when either
// FileInfo carries no stat information.
func SameFile(a, b fs.FileInfo) bool {
	ida, err := ID(a)
	if err != nil {
		return false
	}

	idb, err := ID(b)
	if err != nil {
		return false
	}

	return ida == idb
}

// LinkCount returns the number of hard links to the file described by fi.
func LinkCount(fi fs.FileInfo) (uint64, error) {
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, errors.New("filesystem: no stat information")
	}

	return uint64(st.Nlink), nil
}
