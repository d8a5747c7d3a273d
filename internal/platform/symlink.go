package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// ErrNotSymlink is returned when an operation expects a symlink but finds
// some other kind of filesystem entry.
var ErrNotSymlink = errors.New("not a symlink")

// ReadSymlinkTarget returns the raw target of the symlink at path.
func ReadSymlinkTarget(path string) (string, error) {
	return os.Readlink(path)
}

// IsSymlink reports whether path is a symlink. A missing path is not an error.
func IsSymlink(path string) (bool, error) {
	info, err := os.Lstat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.Mode()&os.ModeSymlink != 0, nil
}

// ForceSymlink makes link a symlink to target, replacing any file or symlink
// already at link. The new link is created under a temporary name in the
// same directory and renamed into place, so link is never left half-written.
func ForceSymlink(target, link string) error {
	dir := filepath.Dir(link)
	tmp := filepath.Join(dir, "."+filepath.Base(link)+".tmp-"+
		strconv.Itoa(os.Getpid())+"-"+strconv.FormatInt(time.Now().UnixNano(), 36))

	if err := os.Symlink(target, tmp); err != nil {
		return fmt.Errorf("creating temporary symlink in %s: %w", dir, err)
	}
	if err := os.Rename(tmp, link); err != nil {
		os.Remove(tmp) // best-effort
		return fmt.Errorf("replacing %s: %w", link, err)
	}
	return nil
}

// RemoveSymlink removes the symlink at path. A missing path is a no-op.
// Regular files and directories are refused with ErrNotSymlink.
func RemoveSymlink(path string) error {
	ok, err := IsSymlink(path)
	if err != nil {
		return err
	}
	if !ok {
		if _, statErr := os.Lstat(path); errors.Is(statErr, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("removing %s: %w", path, ErrNotSymlink)
	}
	return os.Remove(path)
}
