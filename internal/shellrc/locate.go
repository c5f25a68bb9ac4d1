// Package shellrc finds and edits the user's shell configuration file.
package shellrc

import (
	"context"
	"os"

	"github.com/spf13/afero"

	"github.com/thoreinstein/dotcli/internal/errors"
	"github.com/thoreinstein/dotcli/internal/logging"
	"github.com/thoreinstein/dotcli/internal/paths"
)

// ErrNoShellConfig is returned when none of the candidates exist.
var ErrNoShellConfig = errors.Mark(errors.New("no shell config found"), errors.ErrNotFound)

// Locator picks the shell config file to edit.
type Locator struct {
	// FS is the filesystem candidates are checked against.
	FS afero.Fs
	// Home replaces a leading "~" in candidates.
	Home string
	// Candidates are tried in order; the first that exists wins.
	Candidates []string
	// Override, when set, is used instead of searching. It must exist.
	Override string
}

// Locate returns the absolute path of the shell config file.
func (l *Locator) Locate(ctx context.Context) (string, error) {
	logger := logging.FromContext(ctx)

	if l.Override != "" {
		p, err := paths.ExpandHome(l.Override, l.Home)
		if err != nil {
			return "", err
		}
		ok, err := l.exists(p)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", errors.Mark(errors.Newf("shell config %s does not exist", p), errors.ErrNotFound)
		}
		logger.Debug("using shell config override", "path", p)
		return p, nil
	}

	candidates := l.Candidates
	if len(candidates) == 0 {
		candidates = paths.DefaultShellConfigs
	}

	for _, c := range candidates {
		p, err := paths.ExpandHome(c, l.Home)
		if err != nil {
			return "", err
		}
		ok, err := l.exists(p)
		if err != nil {
			return "", err
		}
		if ok {
			logger.Debug("located shell config", "path", p)
			return p, nil
		}
		logger.Log(ctx, logging.LevelTrace, "shell config candidate missing", "path", p)
	}

	return "", ErrNoShellConfig
}

func (l *Locator) exists(p string) (bool, error) {
	fs := l.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}
	_, err := fs.Stat(p)
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, errors.Wrapf(err, "checking %s", p)
	}
}
