// Package linker creates hard and symbolic links the way ln does: one
// source into one destination, or a batch of sources into a target
// directory, with collision handling around existing destinations.
package linker

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/jamesbehr/relink/filesystem"
	"github.com/jamesbehr/relink/logging"
	"github.com/rs/zerolog"
)

var (
	// ErrDestinationExists reports a destination that is already present
	// when removal was not requested.
	ErrDestinationExists = errors.New("destination already exists")

	// ErrSameFile reports a destination naming the same directory entry
	// as the source; removing it would destroy the source.
	ErrSameFile = errors.New("source and destination same")

	// ErrPathOverflow reports that the combined length of a target
	// directory and basename cannot be represented.
	ErrPathOverflow = errors.New("target path length overflow")
)

// errDeclined marks an operand skipped at the user's request. It never
// escapes CreateLink.
var errDeclined = errors.New("linker: replacement declined")

// Options selects how links are created, mirroring the ln flags.
type Options struct {
	// RemoveDestination unlinks an existing destination first (-f).
	RemoveDestination bool

	// Interactive asks for confirmation before unlinking an existing
	// destination (-i). Ignored when RemoveDestination is set.
	Interactive bool

	// FollowSource makes hard links of a symlink source point at the
	// file the symlink resolves to (-L) instead of the symlink entry
	// itself (-P).
	FollowSource bool

	// Symbolic creates symbolic links instead of hard links (-s).
	Symbolic bool
}

// Linker creates links through a filesystem.System according to its
// Options. The zero value is not usable; construct with New.
type Linker struct {
	sys     filesystem.System
	opts    Options
	confirm func(prompt string) (bool, error)
	log     zerolog.Logger
}

// New returns a Linker operating through sys. confirm backs the
// Interactive option and may be nil when that option is unset; a nil
// confirm declines every replacement.
func New(sys filesystem.System, opts Options, confirm func(string) (bool, error)) *Linker {
	return &Linker{
		sys:     sys,
		opts:    opts,
		confirm: confirm,
		log:     logging.GetLogger("linker"),
	}
}

// resolveDestination decides what to do about an existing destination
// before a link is created there. It returns nil when the destination is
// absent or was removed, and an error when the operand must be skipped.
// The destination is stat'd following symlinks; a dangling symlink counts
// as absent here and surfaces as a creation error instead.
func (l *Linker) resolveDestination(sourceInfo fs.FileInfo, dest string) error {
	destInfo, err := l.sys.Stat(dest)
	if err != nil {
		return nil
	}

	if !l.opts.RemoveDestination && !l.opts.Interactive {
		return fmt.Errorf("%w: %s", ErrDestinationExists, dest)
	}

	// The device and inode test guards against a forced self-link
	// unlinking the source.
	if filesystem.SameFile(sourceInfo, destInfo) {
		return fmt.Errorf("%w: %s", ErrSameFile, dest)
	}

	if l.opts.Interactive && !l.opts.RemoveDestination {
		ok, err := l.confirmReplace(dest)
		if err != nil {
			return fmt.Errorf("prompt for %s: %w", dest, err)
		}

		if !ok {
			return errDeclined
		}
	}

	if err := l.sys.Remove(dest); err != nil {
		return fmt.Errorf("failed to unlink destination: %s: %w", dest, err)
	}

	l.log.Debug().Str("dest", dest).Msg("removed existing destination")
	return nil
}

func (l *Linker) confirmReplace(dest string) (bool, error) {
	if l.confirm == nil {
		return false, nil
	}

	return l.confirm(fmt.Sprintf("replace %s?", dest))
}

// CreateLink links dest to source using the configured mode. A nil return
// means the link was created, or the user declined an interactive
// replacement.
func (l *Linker) CreateLink(source, dest string) error {
	sourceInfo, err := l.sys.Lstat(source)
	if err != nil {
		return fmt.Errorf("lstat %s: %w", source, err)
	}

	if err := l.resolveDestination(sourceInfo, dest); err != nil {
		if errors.Is(err, errDeclined) {
			l.log.Info().Str("dest", dest).Msg("not replaced")
			return nil
		}

		return err
	}

	switch {
	case l.opts.Symbolic:
		err = l.sys.Symlink(source, dest)
	case sourceInfo.Mode()&fs.ModeSymlink != 0:
		err = l.sys.LinkEntry(source, dest, l.opts.FollowSource)
	default:
		err = l.sys.Link(source, dest)
	}
	if err != nil {
		return fmt.Errorf("failed to create link: %s - %s: %w", source, dest, err)
	}

	l.log.Debug().
		Str("source", source).
		Str("dest", dest).
		Bool("symbolic", l.opts.Symbolic).
		Msg("created link")
	return nil
}

// linkIntoDir composes the destination path for source inside targetDir
// and creates the link there.
func (l *Linker) linkIntoDir(source, targetDir string) error {
	dest, err := TargetPath(targetDir, source)
	if err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}

	return l.CreateLink(source, dest)
}

// Run drives one invocation over its file operands. The final operand
// selects the mode: a directory collects a link to every other operand,
// anything else is the destination of a single two-operand link. Operands
// are processed independently; the returned error joins every per-operand
// failure and is nil only when all of them succeeded.
func (l *Linker) Run(operands []string) error {
	if len(operands) < 2 {
		return errors.New("must have >=2 file operands")
	}

	var errs []error
	target := operands[len(operands)-1]

	targetIsDir := false
	if info, err := l.sys.Stat(target); err == nil {
		if info.IsDir() {
			targetIsDir = true
			for _, source := range operands[:len(operands)-1] {
				if err := l.linkIntoDir(source, target); err != nil {
					errs = append(errs, err)
				}
			}
		} else if len(operands) > 2 {
			errs = append(errs, errors.New("final operand must be directory if > 2 operands"))
		}
	}

	if !targetIsDir && len(errs) == 0 {
		if len(operands) != 2 {
			errs = append(errs, errors.New("only 2 operands allowed if final operand not a directory"))
		} else if err := l.CreateLink(operands[0], operands[1]); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
