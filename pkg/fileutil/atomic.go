// Package fileutil provides file helpers that work on any afero.Fs,
// including atomic whole-file replacement.
package fileutil

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/thoreinstein/dotcli/internal/errors"
)

// AtomicWriteFile replaces path with data using a temp file in the same
// directory followed by a rename, so an interrupted write leaves the
// original file intact.
//
// The parent directory must exist. perm is applied to the final file.
func AtomicWriteFile(fs afero.Fs, path string, data []byte, perm os.FileMode) error {
	tmp, err := afero.TempFile(fs, filepath.Dir(path), ".dotcli-atomic-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}

	tmpName := tmp.Name()
	renamed := false
	defer func() {
		if !renamed {
			_ = fs.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}
	if err := fs.Chmod(tmpName, perm); err != nil {
		return errors.Wrap(err, "setting file permissions")
	}
	if err := fs.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "renaming temp file")
	}
	renamed = true

	return nil
}

// FileMode returns the permission bits of path, or fallback when it does
// not exist yet.
func FileMode(fs afero.Fs, path string, fallback os.FileMode) os.FileMode {
	info, err := fs.Stat(path)
	if err != nil {
		return fallback
	}
	return info.Mode().Perm()
}
