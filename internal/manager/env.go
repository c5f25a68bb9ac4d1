package manager

import (
	"os"

	"github.com/spf13/afero"

	"github.com/thoreinstein/dotcli/internal/errors"
	"github.com/thoreinstein/dotcli/internal/paths"
)

// Env is the environment a run resolves paths against.
type Env struct {
	// Home expands "~" in shell config candidates.
	Home string
	// WorkDir anchors relative paths given to "path add".
	WorkDir string
	// FS is the filesystem holding the shell config.
	FS afero.Fs
}

// EnvFromOS reads $HOME and the current directory and uses the real filesystem.
func EnvFromOS() (Env, error) {
	home, err := paths.HomeFromEnv()
	if err != nil {
		return Env{}, err
	}
	wd, err := os.Getwd()
	if err != nil {
		return Env{}, errors.Wrap(err, "resolving working directory")
	}
	return Env{Home: home, WorkDir: wd, FS: afero.NewOsFs()}, nil
}
