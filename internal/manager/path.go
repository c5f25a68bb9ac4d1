package manager

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/thoreinstein/dotcli/internal/entry"
	"github.com/thoreinstein/dotcli/internal/errors"
	"github.com/thoreinstein/dotcli/internal/logging"
)

// PathCategory manages `export PATH="$PATH:<dir>"` lines.
//
// Unlike aliases, paths are not checked for duplicates, and only relative
// paths are checked for existence.
type PathCategory struct{}

func (PathCategory) Name() string { return "path" }
func (PathCategory) Noun() string { return "path" }

func (PathCategory) Parse(text string) ([]fmt.Stringer, error) {
	paths := entry.ParsePaths(text)
	out := make([]fmt.Stringer, len(paths))
	for i, p := range paths {
		out[i] = p
	}
	return out, nil
}

// Add appends a PATH export and then re-sources the shell config.
func (PathCategory) Add(ctx context.Context, s *Session, args []string) error {
	if len(args) < 1 {
		return missingArgs("please provide a path to add")
	}

	dir, err := ResolvePath(s.Env, args[0])
	if err != nil {
		return err
	}

	if err := s.File.Append(ctx, entry.FormatPath(dir)); err != nil {
		return err
	}
	logging.FromContext(ctx).Info("added path", "dir", dir, "path", s.File.Path())

	color.New(color.FgGreen).Fprintf(s.Notice, "Added path to %s\n", s.File.Path())

	if s.Sourcer == nil {
		fmt.Fprintf(s.Notice, "Note: Please run `source %s` to apply the changes\n", s.File.Path())
		return nil
	}

	fmt.Fprintf(s.Notice, "Executing `source %s`\n", s.File.Path())
	if err := s.Sourcer.Source(ctx, s.File.Path()); err != nil {
		return err
	}
	fmt.Fprintln(s.Notice, "Done")
	return nil
}

// ResolvePath turns raw into the directory written to the config.
//
// Absolute paths are returned unchanged without touching the filesystem.
// Relative paths are taken from env.WorkDir and must exist. On the real
// filesystem symlinks are resolved before ".." is applied, so "link/.."
// is the parent of the link's target; other filesystems have no links and
// the path is only cleaned.
func ResolvePath(env Env, raw string) (string, error) {
	if filepath.IsAbs(raw) {
		return raw, nil
	}
	if env.WorkDir == "" {
		return "", errors.Newf("cannot resolve %s: working directory unknown", raw)
	}

	// not filepath.Join: it would collapse ".." lexically
	joined := env.WorkDir + string(filepath.Separator) + raw

	fs := env.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}

	if _, ok := fs.(*afero.OsFs); ok {
		resolved, err := filepath.EvalSymlinks(joined)
		if err != nil {
			return "", notExist(err, raw, joined)
		}
		return resolved, nil
	}

	abs := filepath.Clean(joined)
	if _, err := fs.Stat(abs); err != nil {
		return "", notExist(err, raw, abs)
	}
	return abs, nil
}

func notExist(err error, raw, checked string) error {
	if os.IsNotExist(err) {
		return errors.Mark(errors.Newf("path %s does not exist", raw), errors.ErrNotFound)
	}
	return errors.Wrapf(err, "checking %s", checked)
}
