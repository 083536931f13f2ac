// Package materialize copies a staged template into the project directory.
package materialize

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/conn-castle/create-littlejs/internal/messages"
	"github.com/conn-castle/create-littlejs/internal/project"
)

// CopyError reports a file that could not be read or written. The destination
// may be partially populated when it is returned.
type CopyError struct {
	Path string
	Err  error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf(messages.CopyErrorFmt, e.Path, e.Err)
}

func (e *CopyError) Unwrap() error {
	return e.Err
}

// Copy recursively copies src into dst, preserving relative structure, file
// contents, permission bits, and symlinks. dst is created exclusively: an
// existing dst yields *project.TargetExistsError and nothing is written.
func Copy(sys System, src string, dst string) error {
	if sys == nil {
		sys = RealSystem{}
	}
	info, err := sys.Lstat(src)
	if err != nil {
		return &CopyError{Path: src, Err: err}
	}
	if !info.IsDir() {
		return &CopyError{Path: src, Err: fmt.Errorf(messages.CopySourceNotDirFmt, src)}
	}
	if err := sys.Mkdir(dst, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return &project.TargetExistsError{Path: dst}
		}
		return &CopyError{Path: dst, Err: err}
	}

	return sys.WalkDir(src, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return &CopyError{Path: path, Err: walkErr}
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return &CopyError{Path: path, Err: err}
		}
		if rel == "." {
			return nil
		}
		target := filepath.Join(dst, rel)
		info, err := d.Info()
		if err != nil {
			return &CopyError{Path: path, Err: err}
		}

		switch mode := info.Mode(); {
		case mode.IsDir():
			if err := sys.MkdirAll(target, mode.Perm()|0o700); err != nil {
				return &CopyError{Path: target, Err: err}
			}
		case mode.IsRegular():
			if err := copyFile(sys, path, target, mode.Perm()); err != nil {
				return err
			}
		case mode&fs.ModeSymlink != 0:
			link, err := sys.Readlink(path)
			if err != nil {
				return &CopyError{Path: path, Err: err}
			}
			if err := sys.Symlink(link, target); err != nil {
				return &CopyError{Path: target, Err: err}
			}
		default:
			return &CopyError{Path: path, Err: fmt.Errorf(messages.CopyUnsupportedFileFmt, mode.Type(), path)}
		}
		return nil
	})
}

func copyFile(sys System, src string, dst string, perm os.FileMode) error {
	in, err := sys.Open(src)
	if err != nil {
		return &CopyError{Path: src, Err: err}
	}
	defer func() { _ = in.Close() }()

	out, err := sys.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_EXCL, perm)
	if err != nil {
		return &CopyError{Path: dst, Err: err}
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return &CopyError{Path: dst, Err: err}
	}
	if err := out.Close(); err != nil {
		return &CopyError{Path: dst, Err: err}
	}
	return nil
}
