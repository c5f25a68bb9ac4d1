package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/dotcli/internal/errors"
)

// AppName names the tool's XDG subdirectories.
const AppName = "dotcli"

// DefaultDirPerm is the permission for directories dotcli creates.
const DefaultDirPerm = 0o700

// DefaultShellConfigs is the ordered list of shell config candidates.
// The first one that exists is the file dotcli edits.
var DefaultShellConfigs = []string{
	"~/.zprofile",
	"~/.zshrc",
	"~/.bashrc",
	"~/.bash_profile",
}

// HomeFromEnv returns $HOME, or ErrHomeNotSet when it is unset or empty.
func HomeFromEnv() (string, error) {
	home, ok := os.LookupEnv("HOME")
	if !ok || home == "" {
		return "", errors.ErrHomeNotSet
	}
	return home, nil
}

// ExpandHome replaces a leading "~" in path with home.
// Paths without a leading tilde are returned unchanged.
func ExpandHome(path, home string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	if home == "" {
		return "", errors.Wrapf(errors.ErrHomeNotSet, "expanding %s", path)
	}
	if path == "~" {
		return home, nil
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:]), nil
	}
	// ~user forms are not supported; treat the rest literally.
	return home + path[1:], nil
}

// EnsureDir creates path and its parents. A zero perm uses DefaultDirPerm.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return errors.Wrapf(os.MkdirAll(path, perm), "creating %s", path)
}

// ConfigHome returns the XDG config home directory.
func ConfigHome() string {
	return xdg.ConfigHome
}

// DataHome returns the XDG data home directory.
func DataHome() string {
	return xdg.DataHome
}

// AppConfigDir returns <ConfigHome>/dotcli.
func AppConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// BackupDir returns <DataHome>/dotcli/backups.
func BackupDir() string {
	return filepath.Join(DataHome(), AppName, "backups")
}
