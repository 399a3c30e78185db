package buffer

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FS is the file-system capability the document reads from and writes to.
type FS interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte) error
}

// OSFS is FS on the local disk.
type OSFS struct{}

func (OSFS) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

// WriteFile replaces name atomically: data is written to a temporary file in
// the same directory, synced, and renamed over the target. The target keeps
// its permission bits; new files get 0644. On failure the target is untouched.
func (OSFS) WriteFile(name string, data []byte) (err error) {
	if resolved, rerr := filepath.EvalSymlinks(name); rerr == nil {
		name = resolved
	}

	perm := fs.FileMode(0o644)
	if fi, serr := os.Stat(name); serr == nil {
		if !fi.Mode().IsRegular() {
			return &fs.PathError{Op: "write", Path: name, Err: errors.New("not a regular file")}
		}
		perm = fi.Mode().Perm()
	}

	f, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".jot-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp, perm); err != nil {
		return err
	}
	return os.Rename(tmp, name)
}
