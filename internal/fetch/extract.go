package fetch

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/conn-castle/create-littlejs/internal/messages"
)

// extract writes the entries of tr below dest, dropping the first path
// component of every entry. It returns the number of regular files written.
// All writes go through an os.Root, so no entry can land outside dest.
func extract(tr *tar.Reader, dest string, progress func(string)) (int, error) {
	root, err := os.OpenRoot(dest)
	if err != nil {
		return 0, fmt.Errorf(messages.FetchWriteEntryFmt, dest, err)
	}
	defer func() { _ = root.Close() }()

	files := 0
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return files, nil
		}
		if err != nil {
			return files, fmt.Errorf(messages.FetchTarFmt, err)
		}
		if hdr.Typeflag == tar.TypeXGlobalHeader || hdr.Typeflag == tar.TypeXHeader {
			continue
		}
		rel, ok := stripTopLevel(hdr.Name)
		if !ok {
			continue
		}
		name, err := safeRel(rel)
		if err != nil {
			return files, err
		}
		if err := rejectSymlinkParents(root, name); err != nil {
			return files, err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := root.MkdirAll(name, 0o755); err != nil {
				return files, fmt.Errorf(messages.FetchWriteEntryFmt, rel, err)
			}
		case tar.TypeReg:
			if err := writeEntry(root, name, tr, hdr.FileInfo().Mode().Perm()); err != nil {
				return files, fmt.Errorf(messages.FetchWriteEntryFmt, rel, err)
			}
			files++
		case tar.TypeSymlink:
			if !linkStaysInside(dest, filepath.Join(dest, name), hdr.Linkname) {
				progress(fmt.Sprintf(messages.FetchSkippedSymlinkFmt, rel, hdr.Linkname))
				continue
			}
			if err := mkdirParent(root, name); err != nil {
				return files, fmt.Errorf(messages.FetchWriteEntryFmt, rel, err)
			}
			if err := root.Symlink(hdr.Linkname, name); err != nil {
				return files, fmt.Errorf(messages.FetchWriteEntryFmt, rel, err)
			}
		default:
			progress(fmt.Sprintf(messages.FetchUnsupportedEntryFmt, rel, string(hdr.Typeflag)))
		}
	}
}

// stripTopLevel removes the archive's leading directory ("repo-<sha>/").
// Entries at or above that level are reported as not ok.
func stripTopLevel(name string) (string, bool) {
	name = strings.TrimPrefix(name, "./")
	_, rest, found := strings.Cut(name, "/")
	if !found {
		return "", false
	}
	rest = strings.TrimSuffix(rest, "/")
	if rest == "" {
		return "", false
	}
	return rest, true
}

// safeRel cleans a slash-separated archive path into an OS-relative path,
// rejecting paths that would land outside the extraction root.
func safeRel(rel string) (string, error) {
	cleaned := path.Clean(rel)
	if path.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, "../") || filepath.VolumeName(cleaned) != "" {
		return "", fmt.Errorf(messages.FetchUnsafePathFmt, rel)
	}
	return filepath.FromSlash(cleaned), nil
}

// rejectSymlinkParents fails when any parent directory of name inside root is
// a symlink. Template files never live below a link, so such an entry is an
// attempt to write through one.
func rejectSymlinkParents(root *os.Root, name string) error {
	parts := strings.Split(name, string(filepath.Separator))
	for i := 1; i < len(parts); i++ {
		prefix := filepath.Join(parts[:i]...)
		info, err := root.Lstat(prefix)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		if err != nil {
			return fmt.Errorf(messages.FetchWriteEntryFmt, filepath.ToSlash(name), err)
		}
		if info.Mode()&fs.ModeSymlink != 0 {
			return fmt.Errorf(messages.FetchThroughSymlinkFmt, filepath.ToSlash(name), filepath.ToSlash(prefix))
		}
	}
	return nil
}

// linkStaysInside reports whether a symlink at target pointing at linkname
// resolves within dest. Only a leading run of ".." is accepted; a ".." after a
// named component could climb out through a link that does not exist yet. The
// climb starts from the resolved parent of target, since the OS resolves a
// relative link against the directory that physically contains it.
func linkStaysInside(dest string, target string, linkname string) bool {
	if linkname == "" || filepath.IsAbs(linkname) || path.IsAbs(linkname) || filepath.VolumeName(linkname) != "" {
		return false
	}
	up := 0
	named := false
	for _, part := range strings.Split(filepath.ToSlash(linkname), "/") {
		switch part {
		case "", ".":
		case "..":
			if named {
				return false
			}
			up++
		default:
			named = true
		}
	}

	realDest, err := filepath.EvalSymlinks(dest)
	if err != nil {
		return false
	}
	base, err := resolveExisting(filepath.Dir(target))
	if err != nil {
		return false
	}
	for range up {
		base = filepath.Dir(base)
	}
	rel, err := filepath.Rel(realDest, base)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// resolveExisting resolves symlinks in the longest existing prefix of dir and
// appends the parts that do not exist yet.
func resolveExisting(dir string) (string, error) {
	var missing []string
	for {
		resolved, err := filepath.EvalSymlinks(dir)
		if err == nil {
			return filepath.Join(append([]string{resolved}, missing...)...), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", err
		}
		missing = append([]string{filepath.Base(dir)}, missing...)
		dir = parent
	}
}

func mkdirParent(root *os.Root, name string) error {
	parent := filepath.Dir(name)
	if parent == "." {
		return nil
	}
	return root.MkdirAll(parent, 0o755)
}

func writeEntry(root *os.Root, name string, r io.Reader, perm os.FileMode) error {
	if err := mkdirParent(root, name); err != nil {
		return err
	}
	f, err := root.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm|0o600)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil { //nolint:gosec // archive size is bounded by the template repository
		_ = f.Close()
		return err
	}
	return f.Close()
}
