package backup

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/thoreinstein/dotcli/internal/errors"
	"github.com/thoreinstein/dotcli/internal/logging"
	"github.com/thoreinstein/dotcli/internal/paths"
	"github.com/thoreinstein/dotcli/pkg/fileutil"
)

// DefaultRetentionCount is the number of backups kept per file.
const DefaultRetentionCount = 5

// idLayout sorts lexically in time order.
const idLayout = "20060102T150405.000000000"

// ErrNoBackupsFound indicates no backups exist for a file.
var ErrNoBackupsFound = errors.Mark(errors.New("no backups found"), errors.ErrNotFound)

// Snapshot describes one stored copy.
type Snapshot struct {
	ID        string    `json:"id"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"created_at"`
	SHA256    string    `json:"sha256"`
	Size      int64     `json:"size"`
}

// Manager creates, lists and prunes backups.
type Manager struct {
	fs        afero.Fs
	rootDir   string
	retention int
	now       func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithBackupDir sets the root backup directory.
func WithBackupDir(dir string) Option {
	return func(m *Manager) {
		m.rootDir = dir
	}
}

// WithRetentionCount sets how many backups to keep per file.
// Zero keeps every backup.
func WithRetentionCount(n int) Option {
	return func(m *Manager) {
		if n >= 0 {
			m.retention = n
		}
	}
}

// WithClock overrides the time source used for backup ids.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager creates a Manager storing backups on fs.
func NewManager(fs afero.Fs, opts ...Option) *Manager {
	m := &Manager{
		fs:        fs,
		rootDir:   paths.BackupDir(),
		retention: DefaultRetentionCount,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Backup copies path into the backup directory and prunes old copies.
// It returns the path of the new copy.
func (m *Manager) Backup(ctx context.Context, path string) (string, error) {
	data, err := fileutil.ReadFileWithLimit(m.fs, path)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}

	dir := m.fileDir(path)
	if err := m.fs.MkdirAll(dir, paths.DefaultDirPerm); err != nil {
		return "", errors.Wrap(err, "creating backup directory")
	}

	dst := filepath.Join(dir, m.now().UTC().Format(idLayout))
	perm := fileutil.FileMode(m.fs, path, 0o600)
	if err := fileutil.AtomicWriteFile(m.fs, dst, data, perm); err != nil {
		return "", errors.Wrap(err, "writing backup")
	}

	if m.retention > 0 {
		if err := m.Prune(ctx, path, m.retention); err != nil {
			return "", err
		}
	}

	return dst, nil
}

// List returns the backups of path, newest first.
func (m *Manager) List(path string) ([]Snapshot, error) {
	dir := m.fileDir(path)
	infos, err := afero.ReadDir(m.fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoBackupsFound
		}
		return nil, errors.Wrap(err, "reading backup directory")
	}

	var snaps []Snapshot
	for _, info := range infos {
		if info.IsDir() || strings.HasPrefix(info.Name(), ".") {
			continue
		}
		created, err := time.Parse(idLayout, info.Name())
		if err != nil {
			continue
		}
		p := filepath.Join(dir, info.Name())
		sum, err := hashFile(m.fs, p)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, Snapshot{
			ID:        info.Name(),
			Path:      p,
			CreatedAt: created,
			SHA256:    sum,
			Size:      info.Size(),
		})
	}

	if len(snaps) == 0 {
		return nil, ErrNoBackupsFound
	}

	sort.Slice(snaps, func(i, j int) bool {
		return snaps[i].ID > snaps[j].ID
	})
	return snaps, nil
}

// Prune removes all but the newest keep backups of path.
func (m *Manager) Prune(ctx context.Context, path string, keep int) error {
	snaps, err := m.List(path)
	if err != nil {
		if errors.Is(err, ErrNoBackupsFound) {
			return nil
		}
		return err
	}
	if len(snaps) <= keep {
		return nil
	}

	for _, s := range snaps[keep:] {
		if err := m.fs.Remove(s.Path); err != nil {
			return errors.Wrapf(err, "removing backup %s", s.ID)
		}
		logging.FromContext(ctx).Debug("pruned backup", "path", s.Path)
	}
	return nil
}

// fileDir is <root>/<dirName(path)>.
func (m *Manager) fileDir(path string) string {
	return filepath.Join(m.rootDir, dirName(path))
}

// dirName is the base name of path without a leading dot, followed by a
// short hash of the absolute path so files sharing a base name
// (~/.zshrc, /etc/zshrc) keep separate backups.
func dirName(path string) string {
	name := strings.TrimPrefix(filepath.Base(path), ".")
	if name == "" {
		name = "rc"
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	sum := sha256.Sum256([]byte(abs))
	return name + "-" + hex.EncodeToString(sum[:])[:12]
}

func hashFile(fs afero.Fs, path string) (string, error) {
	data, err := fileutil.ReadFileWithLimit(fs, path)
	if err != nil {
		return "", errors.Wrapf(err, "hashing %s", path)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
