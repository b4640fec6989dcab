package filesystem

import (
	"errors"
	"io/fs"
)

// ErrInjected is returned by a FaultSystem operation once its configured
// call budget is used up.
var ErrInjected = errors.New("filesystem: injected fault")

// Op names a System operation for fault injection.
type Op string

const (
	OpStat      Op = "stat"
	OpLstat     Op = "lstat"
	OpLink      Op = "link"
	OpLinkEntry Op = "linkentry"
	OpSymlink   Op = "symlink"
	OpReadlink  Op = "readlink"
	OpRemove    Op = "remove"
)

// FaultSystem wraps a System and fails selected operations after a
// configured number of successful calls. Construct one per test case with
// the exact failure point needed.
type FaultSystem struct {
	System
	remaining map[Op]int
}

// NewFaultSystem returns a FaultSystem that passes every call through to
// next until FailAfter arms an operation.
func NewFaultSystem(next System) *FaultSystem {
	return &FaultSystem{System: next, remaining: make(map[Op]int)}
}

// FailAfter arranges for op to succeed n more times and return ErrInjected
// on every call after that. It returns the receiver for chaining.
func (f *FaultSystem) FailAfter(op Op, n int) *FaultSystem {
	f.remaining[op] = n
	return f
}

func (f *FaultSystem) fire(op Op) bool {
	n, armed := f.remaining[op]
	if !armed {
		return false
	}

	if n > 0 {
		f.remaining[op] = n - 1
		return false
	}

	return true
}

func (f *FaultSystem) Stat(name string) (fs.FileInfo, error) {
	if f.fire(OpStat) {
		return nil, ErrInjected
	}

	return f.System.Stat(name)
}

func (f *FaultSystem) Lstat(name string) (fs.FileInfo, error) {
	if f.fire(OpLstat) {
		return nil, ErrInjected
	}

	return f.System.Lstat(name)
}

func (f *FaultSystem) Link(oldname, newname string) error {
	if f.fire(OpLink) {
		return ErrInjected
	}

	return f.System.Link(oldname, newname)
}

func (f *FaultSystem) LinkEntry(oldname, newname string, follow bool) error {
	if f.fire(OpLinkEntry) {
		return ErrInjected
	}

	return f.System.LinkEntry(oldname, newname, follow)
}

func (f *FaultSystem) Symlink(oldname, newname string) error {
	if f.fire(OpSymlink) {
		return ErrInjected
	}

	return f.System.Symlink(oldname, newname)
}

func (f *FaultSystem) Readlink(name string) (string, error) {
	if f.fire(OpReadlink) {
		return "", ErrInjected
	}

	return f.System.Readlink(name)
}

func (f *FaultSystem) Remove(name string) error {
	if f.fire(OpRemove) {
		return ErrInjected
	}

	return f.System.Remove(name)
}
