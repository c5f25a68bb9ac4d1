package manager

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/dotcli/internal/errors"
)

func TestResolvePath_AbsoluteUntouched(t *testing.T) {
	got, err := ResolvePath(Env{}, "/opt/missing")
	require.NoError(t, err)
	assert.Equal(t, "/opt/missing", got)
}

func TestResolvePath_NoWorkDir(t *testing.T) {
	_, err := ResolvePath(Env{FS: afero.NewMemMapFs()}, "bin")
	assert.Error(t, err)
}

func TestResolvePath_Symlink(t *testing.T) {
	root := t.TempDir()
	// TempDir itself may sit behind a symlink (macOS /var -> /private/var).
	root, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)

	target := filepath.Join(root, "target-bin")
	require.NoError(t, os.Mkdir(target, 0o755))
	require.NoError(t, os.Symlink(target, filepath.Join(root, "link")))

	got, err := ResolvePath(Env{WorkDir: root, FS: afero.NewOsFs()}, "link")
	require.NoError(t, err)
	assert.Equal(t, target, got)
}

func TestResolvePath_MissingOnDisk(t *testing.T) {
	_, err := ResolvePath(Env{WorkDir: t.TempDir(), FS: afero.NewOsFs()}, "nope")
	assert.True(t, errors.Is(err, errors.ErrNotFound), "got %v", err)
}

func TestResolvePath_DotDotAfterSymlink(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	nested := filepath.Join(root, "real", "sub")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.Symlink(nested, filepath.Join(root, "link")))

	got, err := ResolvePath(Env{WorkDir: root, FS: afero.NewOsFs()}, "link/..")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "real"), got)
}

func TestResolvePath_MemFSCleans(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/w/bin", 0o755))

	got, err := ResolvePath(Env{WorkDir: "/w", FS: fs}, "./x/../bin")
	require.NoError(t, err)
	assert.Equal(t, "/w/bin", got)
}
