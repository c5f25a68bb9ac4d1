package backup

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/dotcli/internal/errors"
)

// tick returns a clock advancing one second per call.
func tick(start time.Time) func() time.Time {
	cur := start
	return func() time.Time {
		cur = cur.Add(time.Second)
		return cur
	}
}

func setup(t *testing.T, opts ...Option) (afero.Fs, *Manager) {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/home/u", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/home/u/.zshrc", []byte("alias g=git\n"), 0o644))

	base := []Option{WithBackupDir("/backups"), WithClock(tick(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)))}
	return fs, NewManager(fs, append(base, opts...)...)
}

func TestManager_Backup(t *testing.T) {
	fs, m := setup(t)

	dst, err := m.Backup(t.Context(), "/home/u/.zshrc")
	require.NoError(t, err)
	assert.Equal(t, "/backups/"+dirName("/home/u/.zshrc")+"/20260102T030406.000000000", dst)

	got, err := afero.ReadFile(fs, dst)
	require.NoError(t, err)
	assert.Equal(t, "alias g=git\n", string(got))
}

func TestManager_ListNewestFirst(t *testing.T) {
	fs, m := setup(t)

	for _, content := range []string{"one\n", "two\n", "three\n"} {
		require.NoError(t, afero.WriteFile(fs, "/home/u/.zshrc", []byte(content), 0o644))
		_, err := m.Backup(t.Context(), "/home/u/.zshrc")
		require.NoError(t, err)
	}

	snaps, err := m.List("/home/u/.zshrc")
	require.NoError(t, err)
	require.Len(t, snaps, 3)
	assert.True(t, snaps[0].CreatedAt.After(snaps[2].CreatedAt))
	assert.Equal(t, int64(len("three\n")), snaps[0].Size)
	assert.Len(t, snaps[0].SHA256, 64)
}

func TestManager_Retention(t *testing.T) {
	_, m := setup(t, WithRetentionCount(2))

	for range 4 {
		_, err := m.Backup(t.Context(), "/home/u/.zshrc")
		require.NoError(t, err)
	}

	snaps, err := m.List("/home/u/.zshrc")
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, "20260102T030409.000000000", snaps[0].ID)
	assert.Equal(t, "20260102T030408.000000000", snaps[1].ID)
}

func TestManager_ZeroRetentionKeepsAll(t *testing.T) {
	_, m := setup(t, WithRetentionCount(0))

	for range 7 {
		_, err := m.Backup(t.Context(), "/home/u/.zshrc")
		require.NoError(t, err)
	}

	snaps, err := m.List("/home/u/.zshrc")
	require.NoError(t, err)
	assert.Len(t, snaps, 7)
}

func TestManager_ListEmpty(t *testing.T) {
	_, m := setup(t)

	_, err := m.List("/home/u/.bashrc")
	assert.True(t, errors.Is(err, ErrNoBackupsFound))
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestManager_BackupMissingSource(t *testing.T) {
	_, m := setup(t)

	_, err := m.Backup(t.Context(), "/home/u/.bash_profile")
	assert.Error(t, err)
}

func TestDirName(t *testing.T) {
	a := dirName("/home/u/.zshrc")
	assert.Regexp(t, `^zshrc-[0-9a-f]{12}$`, a)
	assert.Equal(t, a, dirName("/home/u/../u/.zshrc"))
	assert.NotEqual(t, a, dirName("/etc/zshrc"))
	assert.Regexp(t, `^rc-`, dirName("/"))
}

func TestManager_SameBaseNameKeptApart(t *testing.T) {
	fs, m := setup(t, WithRetentionCount(1))
	require.NoError(t, fs.MkdirAll("/etc", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/etc/zshrc", []byte("system\n"), 0o644))

	_, err := m.Backup(t.Context(), "/home/u/.zshrc")
	require.NoError(t, err)
	_, err = m.Backup(t.Context(), "/etc/zshrc")
	require.NoError(t, err)

	home, err := m.List("/home/u/.zshrc")
	require.NoError(t, err)
	require.Len(t, home, 1)
	got, err := afero.ReadFile(fs, home[0].Path)
	require.NoError(t, err)
	assert.Equal(t, "alias g=git\n", string(got))

	system, err := m.List("/etc/zshrc")
	require.NoError(t, err)
	require.Len(t, system, 1)
	assert.NotEqual(t, home[0].Path, system[0].Path)
}
