package shellrc

import (
	"context"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/thoreinstein/dotcli/internal/errors"
	"github.com/thoreinstein/dotcli/internal/logging"
	"github.com/thoreinstein/dotcli/pkg/fileutil"
)

// Backuper copies a file aside before it is rewritten.
type Backuper interface {
	Backup(ctx context.Context, path string) (string, error)
}

// File is a shell config file that is read and written as a whole.
type File struct {
	fs     afero.Fs
	path   string
	backup Backuper
}

// FileOption configures a File.
type FileOption func(*File)

// WithBackup takes a backup through b before every write.
func WithBackup(b Backuper) FileOption {
	return func(f *File) {
		f.backup = b
	}
}

// NewFile returns a File for path on fs.
func NewFile(fs afero.Fs, path string, opts ...FileOption) *File {
	f := &File{fs: fs, path: path}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Path returns the file's path.
func (f *File) Path() string {
	return f.path
}

// Read returns the full text of the file.
func (f *File) Read() (string, error) {
	data, err := fileutil.ReadFileWithLimit(f.fs, f.path)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", f.path)
	}
	return string(data), nil
}

// Append reads the file, appends block and writes the whole file back.
// The original permission bits are preserved.
func (f *File) Append(ctx context.Context, block string) error {
	text, err := f.Read()
	if err != nil {
		return err
	}

	if f.backup != nil {
		dst, err := f.backup.Backup(ctx, f.path)
		if err != nil {
			return errors.Wrapf(err, "backing up %s", f.path)
		}
		logging.FromContext(ctx).Debug("backed up shell config", "path", f.path, "backup", dst)
	}

	target, err := f.target()
	if err != nil {
		return err
	}

	perm := fileutil.FileMode(f.fs, target, 0o644)
	if err := fileutil.AtomicWriteFile(f.fs, target, []byte(text+block), perm); err != nil {
		return errors.Wrapf(err, "writing %s", target)
	}

	logging.FromContext(ctx).Debug("wrote shell config", "path", f.path, "target", target, "bytes", len(text)+len(block))
	return nil
}

// target is the file a write must replace. A symlinked config (e.g. into a
// dotfiles repo) is written through to the file it points at so the link
// survives the rename.
func (f *File) target() (string, error) {
	if _, ok := f.fs.(*afero.OsFs); !ok {
		return f.path, nil
	}
	resolved, err := filepath.EvalSymlinks(f.path)
	if err != nil {
		return "", errors.Wrapf(err, "resolving %s", f.path)
	}
	return resolved, nil
}
