package folder

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/xolan/rfext/internal/osutil"
)

// removeTree deletes the folder at root. A root that is a symbolic link is
// left alone, along with whatever it points to.
func removeTree(fsys osutil.FileSystem, root string) error {
	if info, err := fsys.Lstat(root); err == nil && info.Mode()&fs.ModeSymlink != 0 {
		return fmt.Errorf("%w: '%s'", ErrSymlinkRoot, root)
	}
	return removeAll(fsys, root)
}

// removeAll deletes name and its contents through fsys. Symbolic links are
// removed, never followed. A removal refused by the OS is retried once after
// the entry and its parent directory are made writable by the owner.
//
// It keeps going after a failing entry so one locked file does not leave the
// rest of the tree in place. All errors are returned joined.
func removeAll(fsys osutil.FileSystem, name string) error {
	info, err := fsys.Lstat(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if !info.IsDir() {
		return removeEntry(fsys, name, info)
	}

	entries, err := fsys.ReadDir(name)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		repair(fsys, name, info)
		entries, err = fsys.ReadDir(name)
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	var errs []error
	for _, e := range entries {
		if err := removeAll(fsys, filepath.Join(name, e.Name())); err != nil {
			errs = append(errs, err)
		}
	}
	if err := removeEntry(fsys, name, info); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// removeEntry removes a single file, link or empty directory.
func removeEntry(fsys osutil.FileSystem, name string, info fs.FileInfo) error {
	err := fsys.Remove(name)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	repair(fsys, name, info)
	err = fsys.Remove(name)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// repair clears write protection on name and its parent directory. Errors are
// ignored; the retried call reports whatever is still wrong.
func repair(fsys osutil.FileSystem, name string, info fs.FileInfo) {
	if info.Mode()&fs.ModeSymlink == 0 {
		mode := info.Mode().Perm() | 0o200
		if info.IsDir() {
			mode |= 0o700
		}
		_ = fsys.Chmod(name, mode)
	}

	parent := filepath.Dir(name)
	if pinfo, err := fsys.Lstat(parent); err == nil && pinfo.IsDir() {
		_ = fsys.Chmod(parent, pinfo.Mode().Perm()|0o700)
	}
}
