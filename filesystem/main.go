package filesystem

import "io/fs"

// System is the set of filesystem calls relink performs. It mirrors the os
// package signatures so that the default implementation is a thin
// passthrough, while tests can substitute an implementation that fails on
// demand. Implementations must only resolve symbolic links where the
// corresponding syscall does: Stat follows them, Lstat does not, and the
// link-creating calls operate on the names exactly as given.
type System interface {
	// Stat returns metadata for the file name resolves to, following
	// symbolic links.
	Stat(name string) (fs.FileInfo, error)

	// Lstat returns metadata for name itself. If name is a symbolic
	// link, the result describes the link entry, not its target.
	Lstat(name string) (fs.FileInfo, error)

	// Link creates newname as a hard link to oldname.
	Link(oldname, newname string) error

	// LinkEntry creates newname as a hard link to the directory entry at
	// oldname, which is expected to be a symbolic link. When follow is
	// true the new link points at the file the symlink resolves to
	// instead of the symlink entry itself.
	LinkEntry(oldname, newname string, follow bool) error

	// Symlink creates newname as a symbolic link storing the literal
	// text oldname. oldname is not checked for existence or resolvability.
	Symlink(oldname, newname string) error

	// Readlink returns the target text stored in the symbolic link name.
	Readlink(name string) (string, error)

	// Remove deletes the directory entry at name.
	Remove(name string) error
}
